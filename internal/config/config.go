package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/moodline/internal/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".config/moodline"
	envPrefix  = "MOODLINE"

	ProviderLexicon = "lexicon"
	ProviderOpenAI  = "openai"

	KeyClassifierProvider  = "classifier.provider"
	KeyOpenAIAPIKey        = "openai.api_key"
	KeyOpenAIBaseURL       = "openai.base_url"
	KeyOpenAIModel         = "openai.model"
	KeyTranscriptionModel  = "openai.transcription_model"
	KeyRiskMediumAbove     = "risk.medium_above"
	KeyRiskHighAbove       = "risk.high_above"
	KeyRiskCrisisKeywords  = "risk.crisis_keywords"
	KeyCatalogPath         = "catalog.path"
	KeyServerListen        = "server.listen"
	KeyResponsesSeed       = "responses.seed"
	defaultListen          = "127.0.0.1:8080"
	defaultOpenAIModel     = "gpt-4o-mini"
	defaultTranscribeModel = "whisper-1"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Classifier ClassifierConfig
	OpenAI     OpenAIConfig
	Risk       domain.RiskPolicy
	// CatalogPath is empty when the built-in catalog should be used.
	CatalogPath string
	Listen      string
	// Seed makes response selection reproducible when non-nil.
	Seed *uint64
}

type ClassifierConfig struct {
	Provider string
}

type OpenAIConfig struct {
	APIKey             string
	BaseURL            string
	Model              string
	TranscriptionModel string
}

// Load reads config.toml from the user's config directory, a .env file in the
// working directory, and MOODLINE_* environment variables, in increasing
// precedence. A missing config file is not an error.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env file: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(filepath.Join(homeDir, configDir))
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		Classifier: ClassifierConfig{Provider: strings.ToLower(strings.TrimSpace(v.GetString(KeyClassifierProvider)))},
		OpenAI: OpenAIConfig{
			APIKey:             v.GetString(KeyOpenAIAPIKey),
			BaseURL:            v.GetString(KeyOpenAIBaseURL),
			Model:              v.GetString(KeyOpenAIModel),
			TranscriptionModel: v.GetString(KeyTranscriptionModel),
		},
		Risk: domain.RiskPolicy{
			MediumAbove:    v.GetFloat64(KeyRiskMediumAbove),
			HighAbove:      v.GetFloat64(KeyRiskHighAbove),
			CrisisKeywords: crisisKeywords(v),
		},
		CatalogPath: v.GetString(KeyCatalogPath),
		Listen:      v.GetString(KeyServerListen),
	}

	if cfg.OpenAI.APIKey == "" {
		cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.Classifier.Provider == "" {
		cfg.Classifier.Provider = ProviderLexicon
		if cfg.OpenAI.APIKey != "" {
			cfg.Classifier.Provider = ProviderOpenAI
		}
	}
	if v.IsSet(KeyResponsesSeed) {
		seed := v.GetUint64(KeyResponsesSeed)
		cfg.Seed = &seed
	}
	if cfg.CatalogPath != "" {
		cfg.CatalogPath, err = expandHome(cfg.CatalogPath, homeDir)
		if err != nil {
			return Config{}, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// crisisKeywords reads risk.crisis_keywords. A TOML array is taken as is; a
// string (the env form) is split on commas so phrases keep their spaces.
func crisisKeywords(v *viper.Viper) []string {
	raw, ok := v.Get(KeyRiskCrisisKeywords).(string)
	if !ok {
		return v.GetStringSlice(KeyRiskCrisisKeywords)
	}

	keywords := []string{}
	for _, keyword := range strings.Split(raw, ",") {
		if keyword = strings.TrimSpace(keyword); keyword != "" {
			keywords = append(keywords, keyword)
		}
	}
	return keywords
}

func setDefaults(v *viper.Viper) {
	policy := domain.DefaultRiskPolicy()

	v.SetDefault(KeyOpenAIModel, defaultOpenAIModel)
	v.SetDefault(KeyTranscriptionModel, defaultTranscribeModel)
	v.SetDefault(KeyRiskMediumAbove, policy.MediumAbove)
	v.SetDefault(KeyRiskHighAbove, policy.HighAbove)
	v.SetDefault(KeyRiskCrisisKeywords, policy.CrisisKeywords)
	v.SetDefault(KeyServerListen, defaultListen)
}

func (c Config) Validate() error {
	switch c.Classifier.Provider {
	case ProviderLexicon:
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("%w: %s requires %s or OPENAI_API_KEY", ErrInvalidConfig, ProviderOpenAI, KeyOpenAIAPIKey)
		}
	default:
		return fmt.Errorf("%w: unknown %s %q", ErrInvalidConfig, KeyClassifierProvider, c.Classifier.Provider)
	}

	if err := c.Risk.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if strings.TrimSpace(c.Listen) == "" {
		return fmt.Errorf("%w: %s is empty", ErrInvalidConfig, KeyServerListen)
	}

	return nil
}

func expandHome(path, homeDir string) (string, error) {
	if path == "~" {
		return homeDir, nil
	}
	if strings.HasPrefix(path, "~/") {
		path = filepath.Join(homeDir, path[2:])
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", KeyCatalogPath, err)
	}
	return abs, nil
}
