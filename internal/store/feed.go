package store

import "sync"

// historyFeed fans history-set snapshots out to per-user subscribers. Each
// subscriber channel has a buffer of one and holds only the most recent
// snapshot: publish drains a stale pending snapshot before sending, so
// subscribers observe the latest set, not every intermediate one.
type historyFeed struct {
	mu     sync.Mutex
	subs   map[string]map[int]chan []HistoryRecord
	nextID int
	closed bool
}

func newHistoryFeed() *historyFeed {
	return &historyFeed{subs: make(map[string]map[int]chan []HistoryRecord)}
}

func (f *historyFeed) subscribe(userID string) (chan []HistoryRecord, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ch := make(chan []HistoryRecord, 1)
	if f.closed {
		close(ch)
		return ch, func() {}
	}

	id := f.nextID
	f.nextID++
	if f.subs[userID] == nil {
		f.subs[userID] = make(map[int]chan []HistoryRecord)
	}
	f.subs[userID][id] = ch

	cancel := func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if subs, ok := f.subs[userID]; ok {
			if c, ok := subs[id]; ok {
				delete(subs, id)
				if len(subs) == 0 {
					delete(f.subs, userID)
				}
				close(c)
			}
		}
	}
	return ch, cancel
}

func (f *historyFeed) publish(userID string, snapshot []HistoryRecord) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ch := range f.subs[userID] {
		f.send(ch, snapshot)
	}
}

// publishTo delivers the initial snapshot to a fresh subscriber. Unlike
// publish it never displaces a pending snapshot: one queued by an append
// that raced the subscription reflects a state at least as new as the
// listed set, so the initial delivery is skipped instead.
func (f *historyFeed) publishTo(ch chan []HistoryRecord, snapshot []HistoryRecord) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	select {
	case ch <- snapshot:
	default:
	}
}

// send coalesces under f.mu: only publishers write to subscriber channels,
// so after draining the one-slot buffer the send cannot block.
func (f *historyFeed) send(ch chan []HistoryRecord, snapshot []HistoryRecord) {
	select {
	case ch <- snapshot:
	default:
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snapshot:
		default:
		}
	}
}

func (f *historyFeed) closeAll() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	for _, subs := range f.subs {
		for _, ch := range subs {
			close(ch)
		}
	}
	f.subs = make(map[string]map[int]chan []HistoryRecord)
}
