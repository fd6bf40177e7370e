package domain

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultEmotion is the reserved table entry used for labels without their own entry.
const DefaultEmotion = "default"

// ResponseTable maps emotion label -> risk level -> candidate messages. The
// fallback chain (emotion -> default, level -> medium) is checked when the
// table is built, so lookups never miss.
type ResponseTable struct {
	entries map[string]map[RiskLevel][]string
}

func NewResponseTable(entries map[string]map[RiskLevel][]string) (ResponseTable, error) {
	if _, ok := entries[DefaultEmotion]; !ok {
		return ResponseTable{}, fmt.Errorf("%w: response table has no %q entry", ErrInvalidCatalog, DefaultEmotion)
	}

	cloned := make(map[string]map[RiskLevel][]string, len(entries))
	for emotion, levels := range entries {
		if strings.TrimSpace(emotion) == "" {
			return ResponseTable{}, fmt.Errorf("%w: response table has an empty emotion label", ErrInvalidCatalog)
		}
		if len(levels[RiskMedium]) == 0 {
			return ResponseTable{}, fmt.Errorf("%w: emotion %q must define %q responses", ErrInvalidCatalog, emotion, RiskMedium)
		}

		byLevel := make(map[RiskLevel][]string, len(levels))
		for level, messages := range levels {
			if !level.Valid() {
				return ResponseTable{}, fmt.Errorf("%w: emotion %q uses unknown risk level %q", ErrInvalidCatalog, emotion, level)
			}
			if len(messages) == 0 {
				return ResponseTable{}, fmt.Errorf("%w: emotion %q has no %q responses", ErrInvalidCatalog, emotion, level)
			}
			for _, message := range messages {
				if strings.TrimSpace(message) == "" {
					return ResponseTable{}, fmt.Errorf("%w: emotion %q has a blank %q response", ErrInvalidCatalog, emotion, level)
				}
			}
			byLevel[level] = append([]string(nil), messages...)
		}
		cloned[emotion] = byLevel
	}

	return ResponseTable{entries: cloned}, nil
}

// Candidates resolves the message set for an emotion and level, applying the
// default-entry and medium-level fallbacks.
func (t ResponseTable) Candidates(emotion string, level RiskLevel) []string {
	levels, ok := t.entries[emotion]
	if !ok {
		levels = t.entries[DefaultEmotion]
	}

	messages, ok := levels[level]
	if !ok {
		messages = levels[RiskMedium]
	}

	return append([]string(nil), messages...)
}

// Select samples one candidate uniformly using rng.
func (t ResponseTable) Select(emotion string, level RiskLevel, rng RandomSource) string {
	candidates := t.Candidates(emotion, level)
	if len(candidates) == 0 {
		return ""
	}
	if len(candidates) == 1 || rng == nil {
		return candidates[0]
	}

	return candidates[rng.IntN(len(candidates))]
}

// Emotions returns the table's emotion labels in sorted order.
func (t ResponseTable) Emotions() []string {
	emotions := make([]string, 0, len(t.entries))
	for emotion := range t.entries {
		emotions = append(emotions, emotion)
	}
	sort.Strings(emotions)
	return emotions
}

func (t ResponseTable) IsZero() bool {
	return t.entries == nil
}

// Entries returns a deep copy of the table contents.
func (t ResponseTable) Entries() map[string]map[RiskLevel][]string {
	entries := make(map[string]map[RiskLevel][]string, len(t.entries))
	for emotion, levels := range t.entries {
		byLevel := make(map[RiskLevel][]string, len(levels))
		for level, messages := range levels {
			byLevel[level] = append([]string(nil), messages...)
		}
		entries[emotion] = byLevel
	}
	return entries
}
