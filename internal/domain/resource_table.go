package domain

import (
	"fmt"
	"sort"
	"strings"
)

var DefaultResources = []string{
	"General wellness tips",
	"Mindfulness meditation guide",
	"Daily self-care checklist",
	"Sleep hygiene recommendations",
}

type ResourceTable struct {
	entries  map[string][]string
	defaults []string
}

func NewResourceTable(entries map[string][]string, defaults []string) (ResourceTable, error) {
	if len(defaults) == 0 {
		return ResourceTable{}, fmt.Errorf("%w: resource table has no default resources", ErrInvalidCatalog)
	}
	if err := checkResources("default", defaults); err != nil {
		return ResourceTable{}, err
	}

	cloned := make(map[string][]string, len(entries))
	for emotion, resources := range entries {
		if strings.TrimSpace(emotion) == "" {
			return ResourceTable{}, fmt.Errorf("%w: resource table has an empty emotion label", ErrInvalidCatalog)
		}
		if len(resources) == 0 {
			return ResourceTable{}, fmt.Errorf("%w: emotion %q has no resources", ErrInvalidCatalog, emotion)
		}
		if err := checkResources(emotion, resources); err != nil {
			return ResourceTable{}, err
		}
		cloned[emotion] = append([]string(nil), resources...)
	}

	return ResourceTable{entries: cloned, defaults: append([]string(nil), defaults...)}, nil
}

func checkResources(emotion string, resources []string) error {
	for _, resource := range resources {
		if strings.TrimSpace(resource) == "" {
			return fmt.Errorf("%w: emotion %q has a blank resource", ErrInvalidCatalog, emotion)
		}
	}
	return nil
}

// Recommend returns a copy of the ordered resources for emotion, or the
// default list for unknown labels.
func (t ResourceTable) Recommend(emotion string) []string {
	resources, ok := t.entries[emotion]
	if !ok {
		resources = t.defaults
	}

	return append([]string(nil), resources...)
}

func (t ResourceTable) Emotions() []string {
	emotions := make([]string, 0, len(t.entries))
	for emotion := range t.entries {
		emotions = append(emotions, emotion)
	}
	sort.Strings(emotions)
	return emotions
}

func (t ResourceTable) IsZero() bool {
	return t.entries == nil && t.defaults == nil
}

func (t ResourceTable) Entries() map[string][]string {
	entries := make(map[string][]string, len(t.entries))
	for emotion, resources := range t.entries {
		entries[emotion] = append([]string(nil), resources...)
	}
	return entries
}

func (t ResourceTable) Defaults() []string {
	return append([]string(nil), t.defaults...)
}
