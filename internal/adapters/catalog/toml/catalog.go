package toml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bnema/moodline/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	catalogFileMode = 0o644
	catalogDirMode  = 0o755
	tempFilePattern = ".catalog-*.toml.tmp"
)

// Catalog is a validated pair of decision tables loaded from disk.
type Catalog struct {
	Responses domain.ResponseTable
	Resources domain.ResourceTable
}

func DefaultCatalog() Catalog {
	return Catalog{
		Responses: domain.DefaultResponseTable(),
		Resources: domain.DefaultResourceTable(),
	}
}

// Load reads and validates a catalog file. Missing levels are left absent so
// lookups fall back to medium.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog file: %w", err)
	}

	return Decode(data)
}

func Decode(data []byte) (Catalog, error) {
	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return Catalog{}, err
	}
	file.applyDefaults()

	responses := make(map[string]map[domain.RiskLevel][]string, len(file.Responses))
	for _, entry := range file.Responses {
		if _, dup := responses[entry.Emotion]; dup {
			return Catalog{}, fmt.Errorf("%w: duplicate response entry for %q", domain.ErrInvalidCatalog, entry.Emotion)
		}
		levels := map[domain.RiskLevel][]string{domain.RiskMedium: entry.Medium}
		if entry.Low != nil {
			levels[domain.RiskLow] = entry.Low
		}
		if entry.High != nil {
			levels[domain.RiskHigh] = entry.High
		}
		responses[entry.Emotion] = levels
	}

	resources := make(map[string][]string, len(file.Resources))
	for _, entry := range file.Resources {
		if _, dup := resources[entry.Emotion]; dup {
			return Catalog{}, fmt.Errorf("%w: duplicate resource entry for %q", domain.ErrInvalidCatalog, entry.Emotion)
		}
		resources[entry.Emotion] = entry.Items
	}

	responseTable, err := domain.NewResponseTable(responses)
	if err != nil {
		return Catalog{}, err
	}
	resourceTable, err := domain.NewResourceTable(resources, file.DefaultResources)
	if err != nil {
		return Catalog{}, err
	}

	return Catalog{Responses: responseTable, Resources: resourceTable}, nil
}

func Encode(catalog Catalog) ([]byte, error) {
	file := toSchema(catalog)
	file.applyDefaults()

	data, err := toml.Marshal(file)
	if err != nil {
		return nil, fmt.Errorf("encode catalog file: %w", err)
	}

	return data, nil
}

// Write atomically replaces path with the encoded catalog.
func Write(path string, catalog Catalog) error {
	if path == "" {
		return errors.New("catalog path is empty")
	}

	data, err := Encode(catalog)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), catalogDirMode); err != nil {
		return fmt.Errorf("create catalog directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp catalog file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp catalog file: %w", err)
	}

	if err := tempFile.Chmod(catalogFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp catalog file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp catalog file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace catalog file: %w", err)
	}

	cleanup = false
	return nil
}

func toSchema(catalog Catalog) fileSchema {
	responses := catalog.Responses.Entries()
	emotions := sortedKeys(responses)

	file := fileSchema{
		Version:          currentSchemaVersion,
		DefaultResources: catalog.Resources.Defaults(),
		Responses:        make([]responseSchema, 0, len(emotions)),
	}
	for _, emotion := range emotions {
		levels := responses[emotion]
		file.Responses = append(file.Responses, responseSchema{
			Emotion: emotion,
			Low:     levels[domain.RiskLow],
			Medium:  levels[domain.RiskMedium],
			High:    levels[domain.RiskHigh],
		})
	}

	resources := catalog.Resources.Entries()
	for _, emotion := range sortedKeys(resources) {
		file.Resources = append(file.Resources, resourceSchema{Emotion: emotion, Items: resources[emotion]})
	}

	return file
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
