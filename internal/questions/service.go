package questions

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"interview-backend/internal/llm"
	"interview-backend/internal/shared/storage/object"
	"interview-backend/internal/shared/telemetry"
)

const parsedKeyFormat = "generated/%s_parsed.json"

// Service runs the question-generation pipeline: fetch parsed record,
// clean skills, build prompt, invoke the model, parse the output. It is
// stateless; every call is independent.
type Service struct {
	Store object.ObjectStore
	LLM   llm.Client
}

// Generate produces interview questions for the given user. Failures to
// retrieve or decode the parsed record come back as *RetrievalError;
// an empty cleaned-skills sequence comes back as ErrNoSkills before any
// inference call; anything else is returned as-is for the handler's
// catch-all.
func (s *Service) Generate(ctx context.Context, userID string) (*Result, error) {
	record, err := s.fetchParsed(ctx, userID)
	if err != nil {
		return nil, &RetrievalError{Err: err}
	}

	skills := CleanSkills(record.Skills)
	if len(skills) == 0 {
		return nil, ErrNoSkills
	}

	prompt := BuildPrompt(skills, string(record.Projects))
	raw, err := s.LLM.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}

	result := &Result{
		Questions:  ParseQuestions(raw),
		SkillsUsed: skills,
	}

	telemetry.Info("questions.generated", map[string]any{
		"user_id":        userID,
		"skills_count":   len(skills),
		"question_count": len(result.Questions),
	})

	return result, nil
}

func (s *Service) fetchParsed(ctx context.Context, userID string) (*ParsedResume, error) {
	key := fmt.Sprintf(parsedKeyFormat, userID)

	body, err := s.Store.Open(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("open parsed record key=%s: %w", key, err)
	}
	defer body.Close()

	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read parsed record key=%s: %w", key, err)
	}

	var record ParsedResume
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("decode parsed record key=%s: %w", key, err)
	}
	return &record, nil
}
