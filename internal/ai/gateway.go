package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// FallbackAnswer is stored when the model responds but carries no text.
const FallbackAnswer = "AI is currently unavailable. Please try again later."

// FallbackTitle is stored when title generation fails or returns nothing.
const FallbackTitle = "Health question"

const (
	answerSystemPrompt = "You are a medical assistant answering patient health questions. " +
		"Be clear and factual, and advise seeing a clinician when symptoms warrant it."

	classifySystemPrompt = "You are a triage classifier for patient health questions."

	titleSystemPrompt = "You write short titles for patient health questions."
)

// Gateway runs the three generation steps behind /chat/send. The steps are
// sequential and independent: only a transport failure on the answer call
// is fatal, everything else degrades to a fallback value. No call is ever
// retried.
type Gateway struct {
	gen Generator
	log *slog.Logger
}

func NewGateway(gen Generator, log *slog.Logger) *Gateway {
	if log == nil {
		log = slog.Default()
	}
	return &Gateway{gen: gen, log: log}
}

// AskQuestion drafts the answer for a raw patient question. The result has
// inline emphasis rendered to HTML. A transport failure aborts the whole
// send operation; a successful call with no text degrades to a fixed
// fallback answer.
func (g *Gateway) AskQuestion(ctx context.Context, question string) (string, error) {
	answer, err := g.gen.Generate(ctx, answerSystemPrompt, question)
	if err != nil {
		return "", fmt.Errorf("ask question: %w", err)
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		g.log.Warn("model returned no answer text, using fallback")
		return FallbackAnswer, nil
	}
	return RenderInlineMarkup(answer), nil
}

// ClassifySpecialization labels the question with one of the fixed
// specializations. Any failure, empty reply, or out-of-set reply falls
// back to General.
func (g *Gateway) ClassifySpecialization(ctx context.Context, question string) string {
	prompt := fmt.Sprintf(
		"Classify the following health question into exactly one of these specializations: %s. "+
			"Reply with only the specialization name.\n\nQuestion: %s",
		strings.Join(Specializations, ", "), question,
	)

	reply, err := g.gen.Generate(ctx, classifySystemPrompt, prompt)
	if err != nil {
		g.log.Warn("specialization classification failed, using fallback", "error", err)
		return GeneralSpecialization
	}

	label, ok := CanonicalSpecialization(reply)
	if !ok {
		g.log.Warn("specialization reply outside known set, using fallback", "reply", reply)
		return GeneralSpecialization
	}
	return label
}

// TitleFor produces an approximately five-word title for the answer,
// falling back to a fixed placeholder on failure.
func (g *Gateway) TitleFor(ctx context.Context, answer string) string {
	prompt := "Write a title of about five words for this health answer. " +
		"Reply with only the title.\n\n" + answer

	reply, err := g.gen.Generate(ctx, titleSystemPrompt, prompt)
	if err != nil {
		g.log.Warn("title generation failed, using fallback", "error", err)
		return FallbackTitle
	}

	title := strings.TrimSpace(strings.Trim(strings.TrimSpace(reply), `"`))
	if title == "" {
		return FallbackTitle
	}
	return title
}
