package questions

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"interview-backend/internal/shared/storage/object"
	localstore "interview-backend/internal/shared/storage/object/local"
)

type fakeLLM struct {
	response string
	err      error
	calls    int
	prompts  []string
}

func (f *fakeLLM) Complete(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func seedParsed(t *testing.T, store object.ObjectStore, userID, payload string) {
	t.Helper()
	key := "generated/" + userID + "_parsed.json"
	if _, err := store.SaveWithKey(context.Background(), key, "application/json", strings.NewReader(payload)); err != nil {
		t.Fatalf("seed parsed record: %v", err)
	}
}

func TestGenerateSuccess(t *testing.T) {
	store := localstore.New(t.TempDir())
	seedParsed(t, store, "u1", `{"skills":["SKILLS: a: x, b: y"],"projects":"chat app"}`)

	ai := &fakeLLM{response: "1. What is x?\n2. Explain y"}
	svc := &Service{Store: store, LLM: ai}

	result, err := svc.Generate(context.Background(), "u1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	wantSkills := []string{"x", "y"}
	if !reflect.DeepEqual(result.SkillsUsed, wantSkills) {
		t.Fatalf("skills_used = %q, want %q", result.SkillsUsed, wantSkills)
	}
	wantQuestions := []string{"What is x?", "Explain y"}
	if !reflect.DeepEqual(result.Questions, wantQuestions) {
		t.Fatalf("questions = %q, want %q", result.Questions, wantQuestions)
	}

	// The prompt must carry the exact cleaned skill sequence and the
	// verbatim projects value.
	if ai.calls != 1 {
		t.Fatalf("expected 1 inference call, got %d", ai.calls)
	}
	if !strings.Contains(ai.prompts[0], "Skills: x, y") {
		t.Fatalf("prompt missing skills line: %q", ai.prompts[0])
	}
	if !strings.Contains(ai.prompts[0], "Projects: chat app") {
		t.Fatalf("prompt missing projects line: %q", ai.prompts[0])
	}
}

func TestGenerateMissingRecord(t *testing.T) {
	store := localstore.New(t.TempDir())
	ai := &fakeLLM{response: "1. unused"}
	svc := &Service{Store: store, LLM: ai}

	_, err := svc.Generate(context.Background(), "ghost")
	var retrieval *RetrievalError
	if !errors.As(err, &retrieval) {
		t.Fatalf("expected RetrievalError, got %v", err)
	}
	if ai.calls != 0 {
		t.Fatalf("inference must not run on retrieval failure, got %d calls", ai.calls)
	}
}

func TestGenerateMalformedRecord(t *testing.T) {
	store := localstore.New(t.TempDir())
	seedParsed(t, store, "u1", `{not json`)

	ai := &fakeLLM{}
	svc := &Service{Store: store, LLM: ai}

	_, err := svc.Generate(context.Background(), "u1")
	var retrieval *RetrievalError
	if !errors.As(err, &retrieval) {
		t.Fatalf("expected RetrievalError, got %v", err)
	}
	if ai.calls != 0 {
		t.Fatalf("inference must not run on malformed record, got %d calls", ai.calls)
	}
}

func TestGenerateNoSkills(t *testing.T) {
	store := localstore.New(t.TempDir())

	tests := []struct {
		name    string
		payload string
	}{
		{name: "empty list", payload: `{"skills":[],"projects":""}`},
		{name: "whitespace entries", payload: `{"skills":["   ","SKILLS: , "],"projects":""}`},
		{name: "absent field", payload: `{"projects":""}`},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID := "nosk" + string(rune('a'+i))
			seedParsed(t, store, userID, tt.payload)

			ai := &fakeLLM{}
			svc := &Service{Store: store, LLM: ai}

			_, err := svc.Generate(context.Background(), userID)
			if !errors.Is(err, ErrNoSkills) {
				t.Fatalf("expected ErrNoSkills, got %v", err)
			}
			if ai.calls != 0 {
				t.Fatalf("inference must not run without skills, got %d calls", ai.calls)
			}
		})
	}
}

func TestGenerateInferenceFailure(t *testing.T) {
	store := localstore.New(t.TempDir())
	seedParsed(t, store, "u1", `{"skills":["SKILLS: Go"],"projects":""}`)

	svc := &Service{Store: store, LLM: &fakeLLM{err: errors.New("model unavailable")}}

	_, err := svc.Generate(context.Background(), "u1")
	if err == nil {
		t.Fatal("expected error")
	}
	var retrieval *RetrievalError
	if errors.As(err, &retrieval) || errors.Is(err, ErrNoSkills) {
		t.Fatalf("inference failure must not map to a tagged error, got %v", err)
	}
	if !strings.Contains(err.Error(), "model unavailable") {
		t.Fatalf("error must carry the original text, got %q", err.Error())
	}
}
