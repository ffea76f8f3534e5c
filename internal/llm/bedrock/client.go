package bedrock

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	"interview-backend/internal/llm"
)

// The question generator is pinned to one model in one region; the
// Bedrock model catalog differs per region, so these move together.
const (
	DefaultModelID = "mistral.mixtral-8x7b-instruct-v0:1"
	Region         = "ap-south-1"

	maxTokens   = 1024
	temperature = 0.5
)

// Client implements llm.Client using AWS Bedrock Runtime.
type Client struct {
	client  *bedrockruntime.Client
	modelID string
}

// New constructs a Bedrock-backed LLM client. An empty modelID selects
// the default Mixtral instruct model.
func New(ctx context.Context, modelID string) (*Client, error) {
	if strings.TrimSpace(modelID) == "" {
		modelID = DefaultModelID
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &Client{
		client:  bedrockruntime.NewFromConfig(cfg),
		modelID: modelID,
	}, nil
}

type mistralRequest struct {
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

type mistralResponse struct {
	Outputs []struct {
		Text       string `json:"text"`
		StopReason string `json:"stop_reason"`
	} `json:"outputs"`
}

// Complete invokes the model once with the rendered prompt and returns
// the raw completion text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(mistralRequest{
		Prompt:      wrapInstruct(prompt),
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("encode bedrock request: %w", err)
	}

	out, err := c.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.modelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        payload,
	})
	if err != nil {
		return "", fmt.Errorf("bedrock invoke model=%s: %w", c.modelID, err)
	}

	var parsed mistralResponse
	if err := json.Unmarshal(out.Body, &parsed); err != nil {
		return "", fmt.Errorf("bedrock response parse: %w", err)
	}
	if len(parsed.Outputs) == 0 {
		return "", fmt.Errorf("bedrock response missing outputs")
	}
	return parsed.Outputs[0].Text, nil
}

// wrapInstruct wraps a bare prompt in the Mistral instruct envelope.
func wrapInstruct(prompt string) string {
	return "<s>[INST] " + prompt + " [/INST]"
}

var _ llm.Client = (*Client)(nil)
