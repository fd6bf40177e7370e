package lexicon

import "github.com/bnema/moodline/internal/domain"

var emotionTerms = map[string]map[string]float64{
	domain.EmotionSadness: {
		"sad": 1, "depressed": 1, "down": 0.5, "lonely": 1, "alone": 0.6, "hopeless": 1,
		"miserable": 1, "crying": 0.8, "cry": 0.8, "empty": 0.6, "grief": 1, "heartbroken": 1,
		"worthless": 1, "tired of everything": 1, "can't go on": 1,
	},
	domain.EmotionAnger: {
		"angry": 1, "mad": 0.8, "furious": 1, "frustrated": 0.8, "annoyed": 0.6, "irritated": 0.6,
		"hate": 0.8, "rage": 1, "pissed": 0.8, "fed up": 0.8, "resent": 0.7,
	},
	domain.EmotionFear: {
		"anxious": 1, "anxiety": 1, "worried": 0.8, "scared": 1, "afraid": 1, "fear": 1,
		"panic": 1, "panicking": 1, "terrified": 1, "nervous": 0.7, "frightened": 1, "dread": 0.8,
	},
	domain.EmotionJoy: {
		"happy": 1, "glad": 0.8, "great": 0.6, "excited": 0.8, "joy": 1, "wonderful": 0.8,
		"amazing": 0.7, "proud": 0.7, "relieved": 0.6, "grateful": 0.8, "fantastic": 0.8,
	},
	domain.EmotionLove: {
		"love": 1, "loving": 0.8, "adore": 1, "caring": 0.6, "cherish": 1, "affection": 0.8,
		"in love": 1, "sweetheart": 0.6,
	},
	domain.EmotionSurprise: {
		"surprised": 1, "shocked": 1, "unexpected": 0.8, "astonished": 1, "amazed": 0.7,
		"can't believe": 0.8, "wow": 0.6, "suddenly": 0.5,
	},
}

var positiveTerms = []string{
	"good", "great", "happy", "love", "nice", "better", "calm", "hopeful", "glad", "thankful",
	"grateful", "excited", "wonderful", "fine", "okay", "relaxed", "peaceful",
}

var negativeTerms = []string{
	"bad", "awful", "terrible", "sad", "hate", "worse", "worst", "angry", "scared", "alone",
	"hurt", "pain", "lonely", "hopeless", "tired", "anxious", "afraid", "stressed", "never",
}

var intensifierTerms = []string{"very", "so", "really", "extremely", "totally", "completely"}
