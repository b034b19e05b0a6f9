package core

import "math/rand"

// Verse is a fixed excerpt from the Charak Samhita shown as "Wisdom of the
// Day". Citation here is the bare reference, without the answer-formatting
// marker.
type Verse struct {
	Text     string `json:"text"`
	Citation string `json:"citation"`
}

// SuggestedTopics are the canned starter questions offered to a user.
var SuggestedTopics = []string{
	"What is Tridosha?",
	"Explain the concept of Agni",
	"What are the Pancha Mahabhutas?",
	"Describe the importance of Dinacharya",
}

// Verses is the fixed verse pool for VerseOfTheDay.
var Verses = []Verse{
	{"The body and the mind are the abodes of both disease and happiness. The balanced use of them is the cause of happiness.", "Sutra Sthana 1:55"},
	{"Life (Ayu) is the combination of body, senses, mind and reincarnating soul. Ayurveda is the most sacred science of life, beneficial to humans in both this world and the world beyond.", "Sutra Sthana 1:42-43"},
	{"That which is wholesome and that which is unwholesome for a happy and unhappy life, and the measure of life itself, is explained in Ayurveda.", "Sutra Sthana 1:41"},
	{"Mind, soul and body - these three are like a tripod; the world is sustained by their combination.", "Sutra Sthana 1:46"},
	{"Health is the supreme foundation of virtue, wealth, desire, and liberation. Diseases are the destroyers of this foundation, of well-being, and of life itself.", "Sutra Sthana 1:15"},
	{"The three main causes of disease are the excessive, deficient, and wrongful utilization of time, intellect, and the objects of the senses.", "Sutra Sthana 1:54"},
	{"Vata, Pitta, and Kapha are the three doshas of the body. When they are in a state of equilibrium, they maintain the body; when imbalanced, they afflict it.", "Sutra Sthana 1:57"},
	{"The physician, the medicines, the attendant, and the patient are the four essential pillars of treatment. Successful treatment depends on the proper qualities of all four.", "Sutra Sthana 9:3"},
	{"Everything in the universe is composed of the five great elements (Pancha Mahabhutas): space, air, fire, water, and earth.", "Sharira Sthana 1:16"},
	{"That which brings about equilibrium of the bodily tissues is wholesome; that which causes imbalance is unwholesome.", "Sutra Sthana 25:40"},
	{"One should not suppress the natural urges of the body, such as those for urination, defecation, flatus, sneezing, thirst, hunger, sleep, and breathlessness from exertion.", "Sutra Sthana 7:3-4"},
	{"The digestive fire (Agni) is the root of all health. When Agni is balanced, one experiences long life, strength, health, enthusiasm, and vitality.", "Chikitsa Sthana 15:3-4"},
	{"A wise person should eat only after the previous meal has been digested, in the proper quantity, as this is the key to maintaining health.", "Vimana Sthana 2:4"},
	{"The mind is the controller of the senses. By controlling the mind, one can achieve control over the senses and attain well-being.", "Sharira Sthana 1:135"},
	{"Sleep, when enjoyed at the proper time, brings about happiness, nourishment, strength, virility, knowledge, and life itself.", "Sutra Sthana 21:36"},
	{"A person who always consumes wholesome food and follows a disciplined lifestyle, who acts with foresight, and is detached from the objects of the senses, remains free from diseases.", "Sutra Sthana 10:8"},
	{"The qualities of the physician should include profound knowledge of the science, practical experience, dexterity, and purity of body and mind.", "Sutra Sthana 9:6"},
	{"Just as a chariot cannot move with a single wheel, the body cannot be maintained without both a wholesome diet and a disciplined lifestyle.", "Sutra Sthana 25:35"},
	{"The three supports of life are food, sleep, and a regulated lifestyle (Brahmacharya). By supporting the body with these three, one is endowed with strength, complexion, and growth.", "Sutra Sthana 11:35"},
	{"Intelligence, patience, and self-control - one who possesses these three qualities can conquer any disease.", "Sutra Sthana 11:7"},
	{"The six tastes (sweet, sour, salty, pungent, bitter, astringent) should be used properly. Their balanced use maintains health, while their imbalanced use leads to disorders.", "Sutra Sthana 1:65"},
	{"A wise person should not be ashamed of not knowing something. Not asking questions is the real cause of ignorance.", "Vimana Sthana 8:14"},
	{"The heart is considered the primary seat of consciousness in the body.", "Sutra Sthana 30:4"},
	{"All actions, whether good or bad, are dependent on the ten vessels of life which have their root in the heart.", "Sutra Sthana 30:6"},
	{"The aim of Ayurveda is to maintain the health of the healthy and to cure the disease of the sick.", "Sutra Sthana 30:26"},
	{"Even a potent poison can become an excellent medicine if administered correctly. Similarly, even a good medicine can act as a poison if used improperly.", "Sutra Sthana 1:126"},
	{"One should protect one's health with great care, as it is the means to achieve all objectives in life.", "Sutra Sthana 5:13"},
	{"The body of a person who cleanses their body channels (Srotas) regularly does not get afflicted by diseases easily.", "Sutra Sthana 5:21"},
	{"Compassion for all living beings is a primary quality of a good physician.", "Sutra Sthana 9:26"},
}

// VerseOfTheDay returns a pseudo-randomly chosen verse from the fixed pool.
func VerseOfTheDay() Verse {
	return Verses[rand.Intn(len(Verses))]
}
