package bedrock

import (
	"context"
	"encoding/json"
	"fmt"

	"ai-proposal-be/pkg/ai/parser"
	"ai-proposal-be/pkg/llm"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

const defaultAnthropicVersion = "bedrock-2023-05-31"

// BedrockProvider invokes Anthropic models through the AWS Bedrock
// runtime. Credentials and region come from the standard SDK environment
// chain.
type BedrockProvider struct {
	ModelID          string
	AnthropicVersion string
	Client           *bedrockruntime.Client
}

// Ensure BedrockProvider implements LLMProvider
var _ llm.LLMProvider = &BedrockProvider{}

func NewBedrockProvider(ctx context.Context, modelID, anthropicVersion, region string) (*BedrockProvider, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	if anthropicVersion == "" {
		anthropicVersion = defaultAnthropicVersion
	}
	return &BedrockProvider{
		ModelID:          modelID,
		AnthropicVersion: anthropicVersion,
		Client:           bedrockruntime.NewFromConfig(cfg),
	}, nil
}

// --- Request/Response structs (Internal to this package) ---

type anthropicRequest struct {
	AnthropicVersion string             `json:"anthropic_version"`
	MaxTokens        int                `json:"max_tokens"`
	Temperature      float64            `json:"temperature"`
	Messages         []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []anthropicContent `json:"content"`
}

type anthropicContent struct {
	Text string `json:"text"`
}

// --- Interface Implementation ---

func (b *BedrockProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := &llm.Options{
		MaxTokens: 1024,
	}
	for _, opt := range opts {
		opt(options)
	}

	// The messages API only accepts user/assistant turns.
	messages := make([]anthropicMessage, len(history))
	for i, msg := range history {
		role := msg.Role
		if role == "model" || role == "system" {
			role = "assistant"
		}
		messages[i] = anthropicMessage{Role: role, Content: msg.Content}
	}

	reqPayload := anthropicRequest{
		AnthropicVersion: b.AnthropicVersion,
		MaxTokens:        options.MaxTokens,
		Temperature:      options.Temperature,
		Messages:         messages,
	}
	body, err := json.Marshal(reqPayload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	modelID := b.ModelID
	if options.Model != "" {
		modelID = options.Model
	}

	out, err := b.Client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(modelID),
		Body:        body,
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("bedrock invoke failed: %w", err)
	}

	if len(out.Body) == 0 {
		return "", parser.ErrEmptyResponse
	}

	var resp anthropicResponse
	if err := json.Unmarshal(out.Body, &resp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(resp.Content) == 0 {
		return "", parser.ErrEmptyResponse
	}

	return resp.Content[0].Text, nil
}

func (b *BedrockProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return b.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}
