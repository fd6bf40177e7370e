package cmd

import (
	"fmt"
	"log/slog"
	"os"

	catalogtoml "github.com/bnema/moodline/internal/adapters/catalog/toml"
	lexiconclassifier "github.com/bnema/moodline/internal/adapters/classifier/lexicon"
	openaiclassifier "github.com/bnema/moodline/internal/adapters/classifier/openai"
	memoryhistory "github.com/bnema/moodline/internal/adapters/history/memory"
	reportadapter "github.com/bnema/moodline/internal/adapters/render/report"
	openaitranscriber "github.com/bnema/moodline/internal/adapters/transcriber/openai"
	"github.com/bnema/moodline/internal/application"
	"github.com/bnema/moodline/internal/config"
	"github.com/bnema/moodline/internal/domain"
	"github.com/bnema/moodline/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	cfg            config.Config
	catalog        catalogtoml.Catalog
	classifier     ports.AffectClassifier
	transcriber    ports.Transcriber
	reportRenderer func([]application.AnalysisResult, domain.HistorySummary) (string, error)
	logger         *slog.Logger
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	catalog := catalogtoml.DefaultCatalog()
	if cfg.CatalogPath != "" {
		catalog, err = catalogtoml.Load(cfg.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("wire catalog: %w", err)
		}
	}

	classifier, err := wireClassifier(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire affect classifier: %w", err)
	}

	var transcriber ports.Transcriber
	if cfg.OpenAI.APIKey != "" {
		transcriber, err = openaitranscriber.NewTranscriber(openaitranscriber.Config{
			APIKey:  cfg.OpenAI.APIKey,
			BaseURL: cfg.OpenAI.BaseURL,
			Model:   cfg.OpenAI.TranscriptionModel,
		})
		if err != nil {
			return nil, fmt.Errorf("wire transcriber: %w", err)
		}
	}

	return &app{
		cfg:            cfg,
		catalog:        catalog,
		classifier:     classifier,
		transcriber:    transcriber,
		reportRenderer: reportadapter.Render,
		logger:         slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}, nil
}

func wireClassifier(cfg config.Config) (ports.AffectClassifier, error) {
	switch cfg.Classifier.Provider {
	case config.ProviderOpenAI:
		return openaiclassifier.NewClassifier(openaiclassifier.Config{
			APIKey:  cfg.OpenAI.APIKey,
			BaseURL: cfg.OpenAI.BaseURL,
			Model:   cfg.OpenAI.Model,
		})
	default:
		return lexiconclassifier.NewClassifier(), nil
	}
}

// newService builds a pipeline with its own session history. seed overrides
// the configured responses.seed when non-nil.
func (a *app) newService(seed *uint64) (*application.Service, error) {
	policy := application.Policy{
		Risk:      a.cfg.Risk,
		Responses: a.catalog.Responses,
		Resources: a.catalog.Resources,
	}
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("validate policy: %w", err)
	}

	if seed == nil {
		seed = a.cfg.Seed
	}
	rng := ports.NewRandom()
	if seed != nil {
		rng = ports.NewSeededRandom(*seed)
	}

	var opts []application.ServiceOption
	if a.transcriber != nil {
		opts = append(opts, application.WithTranscriber(a.transcriber))
	}

	return application.NewService(a.classifier, memoryhistory.NewHistory(), ports.SystemClock{}, rng, policy, opts...), nil
}
