package collaborator

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/JaimeStill/unmask/pkg/formatting"
)

// chat implements Collaborator over any OpenAI-compatible chat completions
// API: OpenAI, Azure OpenAI, and Ollama.
type chat struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
	logger      *slog.Logger
}

type biasOutput struct {
	Biases           []BiasItem `json:"biases"`
	HighlightedTerms []string   `json:"highlighted_terms"`
	Error            *string    `json:"error"`
}

func newChat(cfg *Config, logger *slog.Logger) *chat {
	var oc openai.ClientConfig

	switch cfg.Provider {
	case ProviderAzure:
		oc = openai.DefaultAzureConfig(cfg.APIKey, cfg.BaseURL)
		oc.APIVersion = cfg.APIVersion
		model := cfg.Model
		oc.AzureModelMapperFunc = func(string) string { return model }
	case ProviderOllama:
		key := cfg.APIKey
		if key == "" {
			key = "ollama"
		}
		oc = openai.DefaultConfig(key)
		oc.BaseURL = cfg.BaseURL
	default:
		oc = openai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			oc.BaseURL = cfg.BaseURL
		}
	}

	oc.HTTPClient = &http.Client{Timeout: cfg.TimeoutDuration()}

	return &chat{
		client:      openai.NewClientWithConfig(oc),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		logger:      logger,
	}
}

func (c *chat) Complete(ctx context.Context, prompt string) (string, error) {
	return c.send(ctx, nil, system(completeInstruction), user(prompt))
}

func (c *chat) ScoreBias(ctx context.Context, text string) ([]BiasItem, error) {
	format := &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject}

	content, err := c.send(ctx, format, system(biasInstruction), user(biasUserMessage(text)))
	if err != nil {
		return nil, err
	}

	out, err := formatting.Parse[biasOutput](content)
	if err != nil {
		return nil, err
	}

	if out.Error != nil && strings.TrimSpace(*out.Error) != "" {
		return nil, fmt.Errorf("%w: %s", ErrReported, *out.Error)
	}

	if len(out.HighlightedTerms) > 0 {
		c.logger.Debug("bias terms highlighted", "terms", out.HighlightedTerms)
	}

	return out.Biases, nil
}

func (c *chat) Rewrite(ctx context.Context, text, perspective string) (string, error) {
	return c.send(ctx, nil, user(rewriteMessage(text, perspective)))
}

// CrossExamine replays the context as a chat transcript: the original
// prompt and answer, each prior turn oldest first, then the new question.
func (c *chat) CrossExamine(ctx context.Context, x Context) (string, error) {
	msgs := make([]openai.ChatCompletionMessage, 0, 4+2*len(x.Turns))
	msgs = append(msgs,
		system(crossExamInstruction),
		user(x.PromptText),
		assistant(x.InitialResponse),
	)
	for _, t := range x.Turns {
		msgs = append(msgs, user(t.Question), assistant(t.Answer))
	}
	msgs = append(msgs, user(x.Question))

	return c.send(ctx, nil, msgs...)
}

func (c *chat) send(ctx context.Context, format *openai.ChatCompletionResponseFormat, msgs ...openai.ChatCompletionMessage) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:          c.model,
		Messages:       msgs,
		MaxTokens:      c.maxTokens,
		Temperature:    c.temperature,
		ResponseFormat: format,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrEmptyCompletion
	}

	c.logger.Debug(
		"chat completion",
		"model", c.model,
		"finish_reason", resp.Choices[0].FinishReason,
		"total_tokens", resp.Usage.TotalTokens,
	)

	return resp.Choices[0].Message.Content, nil
}

func system(s string) openai.ChatCompletionMessage {
	return openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: s}
}

func user(s string) openai.ChatCompletionMessage {
	return openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: s}
}

func assistant(s string) openai.ChatCompletionMessage {
	return openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: s}
}
