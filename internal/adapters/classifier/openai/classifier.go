package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/moodline/internal/domain"
	"github.com/bnema/moodline/internal/ports"
	"github.com/elgs/gojq"
	"github.com/invopop/jsonschema"
	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const DefaultModel = "gpt-4o-mini"

var ErrEmptyReply = errors.New("no response from model")

// classification is the reply shape the model is asked to produce.
type classification struct {
	Sentiment label `json:"sentiment" jsonschema:"required"`
	Emotion   label `json:"emotion" jsonschema:"required"`
}

type label struct {
	Label      string  `json:"label" jsonschema:"required"`
	Confidence float64 `json:"confidence" jsonschema:"required,minimum=0,maximum=1"`
}

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

type Classifier struct {
	client openai.Client
	model  string
	system string
}

var _ ports.AffectClassifier = (*Classifier)(nil)

func NewClassifier(cfg Config, opts ...option.RequestOption) (*Classifier, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("openai api key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	// The pipeline never retries a failed classification.
	clientOpts := []option.RequestOption{option.WithAPIKey(cfg.APIKey), option.WithMaxRetries(0)}
	if cfg.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(cfg.BaseURL))
	}
	clientOpts = append(clientOpts, opts...)

	system, err := systemPrompt()
	if err != nil {
		return nil, err
	}

	return &Classifier{
		client: openai.NewClient(clientOpts...),
		model:  cfg.Model,
		system: system,
	}, nil
}

func (c *Classifier) Classify(ctx context.Context, text string) (domain.AffectJudgment, error) {
	if strings.TrimSpace(text) == "" {
		return domain.AffectJudgment{}, errors.New("empty input rejected")
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.system),
			openai.UserMessage(text),
		},
		Temperature: openai.Float(0),
	})
	if err != nil {
		return domain.AffectJudgment{}, fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return domain.AffectJudgment{}, ErrEmptyReply
	}

	return parseReply(resp.Choices[0].Message.Content)
}

func parseReply(content string) (domain.AffectJudgment, error) {
	content = stripCodeFence(content)
	if content == "" {
		return domain.AffectJudgment{}, ErrEmptyReply
	}

	jq, err := gojq.NewStringQuery(content)
	if err != nil {
		return domain.AffectJudgment{}, fmt.Errorf("parse model reply: %w", err)
	}

	sentimentLabel, err := jq.QueryToString("sentiment.label")
	if err != nil {
		return domain.AffectJudgment{}, fmt.Errorf("read sentiment label: %w", err)
	}
	sentimentConfidence, err := jq.QueryToFloat64("sentiment.confidence")
	if err != nil {
		return domain.AffectJudgment{}, fmt.Errorf("read sentiment confidence: %w", err)
	}
	emotionLabel, err := jq.QueryToString("emotion.label")
	if err != nil {
		return domain.AffectJudgment{}, fmt.Errorf("read emotion label: %w", err)
	}
	emotionConfidence, err := jq.QueryToFloat64("emotion.confidence")
	if err != nil {
		return domain.AffectJudgment{}, fmt.Errorf("read emotion confidence: %w", err)
	}

	return domain.AffectJudgment{
		Sentiment: domain.Sentiment{Label: normalizeLabel(sentimentLabel), Confidence: sentimentConfidence},
		Emotion:   domain.Emotion{Label: normalizeLabel(emotionLabel), Confidence: emotionConfidence},
	}, nil
}

func normalizeLabel(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	}
	return content
}

func systemPrompt() (string, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	schema, err := json.Marshal(reflector.Reflect(&classification{}))
	if err != nil {
		return "", fmt.Errorf("marshal reply schema: %w", err)
	}

	return fmt.Sprintf(`You classify the affect of a single message written by a user of a wellbeing app.
Return only JSON matching this schema, with no markdown:
%s

Rules:
- sentiment.label is "positive" or "negative".
- emotion.label is one of "sadness", "anger", "fear", "joy", "love", "surprise".
- confidence values are probabilities between 0 and 1.`, schema), nil
}
