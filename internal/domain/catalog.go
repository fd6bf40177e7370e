package domain

const crisisLine = "Please consider reaching out to a crisis line: call or text 988 (US) or your local emergency number."

var defaultResponses = map[string]map[RiskLevel][]string{
	DefaultEmotion: {
		RiskLow: {
			"Here's a calming exercise to try: breathe in for four counts, hold for four, and breathe out for six.",
			"You might enjoy a short mindfulness activity: notice five things you can see right now.",
		},
		RiskMedium: {
			"I notice you're feeling strong emotions. Would you like to try a grounding exercise?",
			"It might help to talk to someone about this.",
		},
		RiskHigh: {
			"I'm concerned about what you're sharing. Would you like me to connect you with help?",
			crisisLine,
		},
	},
	EmotionSadness: {
		RiskLow: {
			"It sounds like things feel a little heavy today. Be gentle with yourself.",
			"A short walk or a favorite song can lift the weight a little.",
		},
		RiskMedium: {
			"I'm sorry you're going through this. Would writing down what's on your mind help?",
			"Sadness can feel isolating. Is there someone you trust you could reach out to today?",
		},
		RiskHigh: {
			"I'm really sorry you're hurting this much. You don't have to carry it alone; would you like help finding support?",
			crisisLine,
		},
	},
	EmotionAnger: {
		RiskLow: {
			"Frustration is a normal signal. A few slow breaths can take the edge off.",
			"It might help to step away for a moment before responding.",
		},
		RiskMedium: {
			"That sounds really upsetting. Would a quick breathing exercise help you cool down?",
			"Try naming exactly what made you angry; it often makes it easier to handle.",
		},
		RiskHigh: {
			"Your anger sounds intense right now. Please step back from anything that could cause harm and consider talking to someone.",
			crisisLine,
		},
	},
	EmotionFear: {
		RiskLow: {
			"Feeling uneasy is understandable. Let's take this one step at a time.",
			"Try grounding yourself: press your feet into the floor and notice the support beneath you.",
		},
		RiskMedium: {
			"I hear that you're feeling anxious. Would you like to try the 5-4-3-2-1 grounding technique?",
			"Anxiety can make everything feel urgent. Slow breathing can help your body settle.",
		},
		RiskHigh: {
			"It sounds like you're very frightened. If you feel unsafe, please reach out to someone right away.",
			crisisLine,
		},
	},
	EmotionJoy: {
		RiskLow: {
			"It's great to hear you're feeling good!",
			"Moments like this are worth savoring. What made today good?",
		},
		RiskMedium: {
			"You sound really happy. Consider writing down what's going well so you can come back to it.",
			"That's wonderful. Sharing good news with someone can make it last longer.",
		},
	},
	EmotionLove: {
		RiskLow: {
			"Connection matters. It's lovely that you're feeling it.",
		},
		RiskMedium: {
			"Strong feelings for others are meaningful. Have you told them how you feel?",
			"Caring deeply is a strength. Remember to care for yourself too.",
		},
	},
	EmotionSurprise: {
		RiskLow: {
			"Unexpected things can be exciting. How are you feeling about it?",
		},
		RiskMedium: {
			"Surprises can be a lot to take in. Give yourself a moment to process.",
			"When things change suddenly, it helps to focus on what you can control.",
		},
	},
}

var defaultResourceEntries = map[string][]string{
	EmotionSadness:  {"Guided meditation for sadness", "Journaling prompts for difficult emotions"},
	EmotionAnger:    {"Anger management techniques", "Breathing exercises for frustration"},
	EmotionFear:     {"Anxiety reduction strategies", "Grounding techniques for panic"},
	EmotionJoy:      {"Maintaining positive habits", "Gratitude exercises"},
	EmotionLove:     {"Building healthy relationships", "Communication skills"},
	EmotionSurprise: {"Coping with unexpected events", "Adapting to change"},
}

// DefaultResponseTable returns the built-in response catalog.
func DefaultResponseTable() ResponseTable {
	table, err := NewResponseTable(defaultResponses)
	if err != nil {
		panic(err)
	}
	return table
}

// DefaultResourceTable returns the built-in resource catalog.
func DefaultResourceTable() ResourceTable {
	table, err := NewResourceTable(defaultResourceEntries, DefaultResources)
	if err != nil {
		panic(err)
	}
	return table
}
