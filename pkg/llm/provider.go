package llm

import (
	"context"
)

// Message is a single chat turn in a provider-neutral shape.
// Role is one of "user", "assistant" or "system".
type Message struct {
	Role    string
	Content string
}

// Options holds per-call tuning; zero values mean provider defaults.
type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string
}

type Option func(*Options)

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// LLMProvider is the contract every model backend satisfies.
type LLMProvider interface {
	// Chat sends a conversation history and returns the model's reply.
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// Generate is the single-prompt convenience wrapper over Chat.
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}
