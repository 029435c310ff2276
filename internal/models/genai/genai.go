// Package genai provides a chat model backed by a hosted, OpenAI-compatible
// chat completion endpoint.
package genai

import (
	"context"
	"errors"
	"os"
	"sync"

	"github.com/cloudwego/eino-ext/components/model/openai"
	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog"

	"modelhub/internal/models"
)

const (
	Name         = "genai"
	DefaultModel = "gemini-2.0-flash"
	// Fallback is returned as content when the backend call fails.
	Fallback = "Sorry, I cannot process your input at this time."
)

// ErrNoAPIKey is returned by New when no API key is configured.
var ErrNoAPIKey = errors.New("genai: API key not configured")

// Settings configures the backend used by new instances.
type Settings struct {
	APIKey  string
	BaseURL string
	Model   string
	// Logger receives backend failures. Nil discards them.
	Logger *zerolog.Logger
}

var (
	mu       sync.RWMutex
	settings *Settings
)

// Configure sets the backend settings for instances created afterwards.
// Without it New reads GENAI_API_KEY, GENAI_BASE_URL and GENAI_MODEL.
func Configure(s Settings) {
	mu.Lock()
	settings = &s
	mu.Unlock()
}

func current() Settings {
	mu.RLock()
	defer mu.RUnlock()
	if settings != nil {
		return *settings
	}
	return Settings{
		APIKey:  os.Getenv("GENAI_API_KEY"),
		BaseURL: os.Getenv("GENAI_BASE_URL"),
		Model:   os.Getenv("GENAI_MODEL"),
	}
}

type Model struct {
	models.Base
	chat  einomodel.BaseChatModel
	model string
	log   zerolog.Logger
}

// New connects a chat client using the current Settings.
func New() (models.Model, error) {
	s := current()
	if s.APIKey == "" {
		return nil, ErrNoAPIKey
	}
	if s.Model == "" {
		s.Model = DefaultModel
	}
	chat, err := openai.NewChatModel(context.Background(), &openai.ChatModelConfig{
		APIKey:  s.APIKey,
		BaseURL: s.BaseURL,
		Model:   s.Model,
	})
	if err != nil {
		return nil, err
	}
	return newWithChat(chat, s.Model, s.Logger)
}

func newWithChat(chat einomodel.BaseChatModel, model string, log *zerolog.Logger) (*Model, error) {
	b, err := models.NewBase(models.TypeChat, "GenAi")
	if err != nil {
		return nil, err
	}
	m := &Model{Base: b, chat: chat, model: model, log: zerolog.Nop()}
	if log != nil {
		m.log = log.With().Str("component", "genai").Logger()
	}
	return m, nil
}

func (m *Model) Process(ctx context.Context, in models.Input) (models.Output, error) {
	msgs := append(convertHistory(in["conversationHistory"]), schema.UserMessage(in.String("userMessage")))
	content := Fallback
	resp, err := m.chat.Generate(ctx, msgs)
	switch {
	case err != nil:
		m.log.Error().Err(err).Str("model", m.model).Msg("genai generate failed")
	case resp == nil:
		m.log.Error().Str("model", m.model).Msg("genai generate returned no message")
	default:
		content = resp.Content
	}
	return models.Output{"actor": "model", "content": content}, nil
}

// convertHistory maps the client's conversation history to chat messages.
// The last entry is the message being sent now and is dropped.
func convertHistory(v any) []*schema.Message {
	raw, ok := v.([]any)
	if !ok || len(raw) == 0 {
		return nil
	}
	raw = raw[:len(raw)-1]
	out := make([]*schema.Message, 0, len(raw))
	for _, item := range raw {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		content, _ := obj["content"].(string)
		switch actor, _ := obj["actor"].(string); actor {
		case "model", "assistant":
			out = append(out, schema.AssistantMessage(content, nil))
		case "system":
			out = append(out, schema.SystemMessage(content))
		default:
			out = append(out, schema.UserMessage(content))
		}
	}
	return out
}

func init() { models.Register("genai", New) }
