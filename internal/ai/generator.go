// Package ai orchestrates the generative-AI calls behind /chat/send: draft
// an answer, classify the question into a specialization, and produce a
// short title. Each step is a single attempt with its own fallback policy.
package ai

import "context"

// Generator is one call to a text-generation backend. The production
// implementation is Gemini; tests substitute a stub.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, systemPrompt, userPrompt string) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return f(ctx, systemPrompt, userPrompt)
}
