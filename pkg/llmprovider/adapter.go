package llmprovider

import (
	"context"

	"taskmate/pkg/deepseek"
	"taskmate/pkg/gemini"
)

// DeepSeekAdapter adapts a deepseek client to the Provider interface.
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

// NewDeepSeekAdapter wraps a DeepSeek client as a Provider.
func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

func (a *DeepSeekAdapter) Name() string  { return "deepseek" }
func (a *DeepSeekAdapter) Model() string { return a.client.Model() }

func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]deepseek.Message, 0, len(req.Messages)+1)
	if req.System != "" {
		messages = append(messages, deepseek.Message{Role: "system", Content: req.System})
	}
	for _, msg := range req.Messages {
		messages = append(messages, deepseek.Message{Role: msg.Role, Content: msg.Content})
	}

	resp, err := a.client.GenerateContent(ctx, &deepseek.Request{
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	return &Response{
		Text:         resp.Choices[0].Message.Content,
		ProviderName: a.Name(),
		ModelName:    a.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// GeminiAdapter adapts a gemini client to the Provider interface.
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter wraps a Gemini client as a Provider.
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

func (a *GeminiAdapter) Name() string  { return "gemini" }
func (a *GeminiAdapter) Model() string { return a.client.Model() }

func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	greq := &gemini.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.System != "" {
		greq.SystemInstruction = &gemini.Content{Parts: []gemini.Part{{Text: req.System}}}
	}
	for _, msg := range req.Messages {
		role := msg.Role
		if role == "assistant" {
			role = "model" // Gemini's name for the assistant role
		}
		greq.Messages = append(greq.Messages, gemini.Content{
			Role:  role,
			Parts: []gemini.Part{{Text: msg.Content}},
		})
	}

	resp, err := a.client.GenerateContent(ctx, greq)
	if err != nil {
		return nil, err
	}
	if len(resp.Content.Parts) == 0 {
		return nil, ErrEmptyResponse
	}

	usage := &Usage{}
	if resp.Usage != nil {
		usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}

	return &Response{
		Text:         resp.Content.Parts[0].Text,
		ProviderName: a.Name(),
		ModelName:    a.Model(),
		Usage:        usage,
	}, nil
}
