package ai

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestAskQuestion(t *testing.T) {
	g := NewGateway(GeneratorFunc(func(ctx context.Context, system, user string) (string, error) {
		if !strings.Contains(user, "headache") {
			t.Errorf("question not passed through, got %q", user)
		}
		return "Rest and **hydrate** well.", nil
	}), nil)

	answer, err := g.AskQuestion(context.Background(), "I have a headache")
	if err != nil {
		t.Fatalf("AskQuestion() error = %v", err)
	}
	if answer != "Rest and <strong>hydrate</strong> well." {
		t.Errorf("AskQuestion() = %q", answer)
	}
}

func TestAskQuestionTransportFailureIsFatal(t *testing.T) {
	g := NewGateway(GeneratorFunc(func(ctx context.Context, system, user string) (string, error) {
		return "", errors.New("connection refused")
	}), nil)

	if _, err := g.AskQuestion(context.Background(), "anything"); err == nil {
		t.Fatal("AskQuestion() should propagate transport failure")
	}
}

func TestAskQuestionEmptyReplyFallsBack(t *testing.T) {
	g := NewGateway(GeneratorFunc(func(ctx context.Context, system, user string) (string, error) {
		return "   ", nil
	}), nil)

	answer, err := g.AskQuestion(context.Background(), "anything")
	if err != nil {
		t.Fatalf("AskQuestion() error = %v", err)
	}
	if answer != FallbackAnswer {
		t.Errorf("AskQuestion() = %q, want fallback answer", answer)
	}
}

func TestClassifySpecialization(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		err   error
		want  string
	}{
		{"exact label", "Cardiology", nil, "Cardiology"},
		{"lowercase label", "neurology", nil, "Neurology"},
		{"label with trailing period", "Dermatology.", nil, "Dermatology"},
		{"unknown label falls back", "Wizardry", nil, GeneralSpecialization},
		{"empty reply falls back", "", nil, GeneralSpecialization},
		{"transport failure falls back", "", errors.New("timeout"), GeneralSpecialization},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGateway(GeneratorFunc(func(ctx context.Context, system, user string) (string, error) {
				return tt.reply, tt.err
			}), nil)

			if got := g.ClassifySpecialization(context.Background(), "question"); got != tt.want {
				t.Errorf("ClassifySpecialization() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassifyPromptEnumeratesLabels(t *testing.T) {
	var prompt string
	g := NewGateway(GeneratorFunc(func(ctx context.Context, system, user string) (string, error) {
		prompt = user
		return "General", nil
	}), nil)

	g.ClassifySpecialization(context.Background(), "question")

	for _, s := range Specializations {
		if !strings.Contains(prompt, s) {
			t.Errorf("classification prompt missing label %q", s)
		}
	}
}

func TestTitleFor(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		err   error
		want  string
	}{
		{"clean title", "Managing Tension Headaches At Home", nil, "Managing Tension Headaches At Home"},
		{"quoted title", `"Managing Headaches"`, nil, "Managing Headaches"},
		{"empty reply falls back", "\n", nil, FallbackTitle},
		{"transport failure falls back", "", errors.New("timeout"), FallbackTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGateway(GeneratorFunc(func(ctx context.Context, system, user string) (string, error) {
				return tt.reply, tt.err
			}), nil)

			if got := g.TitleFor(context.Background(), "answer"); got != tt.want {
				t.Errorf("TitleFor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSpecializationSetSize(t *testing.T) {
	if len(Specializations) != 20 {
		t.Errorf("expected 20 specializations, got %d", len(Specializations))
	}
	seen := map[string]bool{}
	for _, s := range Specializations {
		if seen[s] {
			t.Errorf("duplicate specialization %q", s)
		}
		seen[s] = true
	}
}
