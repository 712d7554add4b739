package llm

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const systemPrompt = `You are Da, the assistant of a loyalty marketing platform.
The user said something you could not map to a known command.
Reply with one short, friendly sentence that acknowledges the request and
suggests asking for "help" to see available commands. Do not invent features.`

// OpenAIResponder phrases fallback replies through a chat model. It is only
// consulted after recognition already settled on the fallback intent; it
// never influences classification.
type OpenAIResponder struct {
	client *openai.Client
	model  string
}

func NewOpenAIResponder(apiKey string) *OpenAIResponder {
	return &OpenAIResponder{
		client: openai.NewClient(apiKey),
		model:  openai.GPT4oMini,
	}
}

func (r *OpenAIResponder) Respond(ctx context.Context, message string) (string, error) {
	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     r.model,
		MaxTokens: 120,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
	})
	if err != nil {
		return "", fmt.Errorf("fallback completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("fallback completion returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
