// Package chat wraps the remote completion service behind a small assistant
// API. There is no retry and no streaming; a request lives exactly as long as
// its context, so a caller tearing down mid-flight just cancels and the
// response is discarded.
package chat

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const systemPrompt = `Tu es un assistant personnel spécialisé dans l'organisation et la productivité.
Tu dois aider l'utilisateur à définir ses objectifs, ses routines et ses tâches.
Sois amical, empathique et pose des questions pertinentes pour comprendre ses besoins.

Voici les domaines à explorer :
1. Objectifs personnels et professionnels
2. Routines quotidiennes (réveil, coucher)
3. Priorités et valeurs
4. Style de travail préféré
5. Défis et obstacles actuels

Analyse les réponses pour suggérer des actions concrètes.`

// Fallback is the canned assistant message surfaced when the completion
// service fails for any reason.
const Fallback = "Désolé, je rencontre des difficultés techniques. Réessayez plus tard."

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of the conversation history.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// completer is the slice of the OpenAI client the assistant needs; tests
// substitute a fake.
type completer interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Assistant converses with the completion service using the coaching system
// prompt carried over from the original application.
type Assistant struct {
	client completer
	model  string
}

func NewAssistant(apiKey string) *Assistant {
	return &Assistant{
		client: openai.NewClient(apiKey),
		model:  openai.GPT4,
	}
}

// Reply sends the history plus the new user input and returns the assistant's
// answer. Errors are returned as-is for the caller to degrade to Fallback;
// nothing is retried.
func (a *Assistant) Reply(ctx context.Context, history []Message, input string) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, m := range history {
		messages = append(messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: input,
	})

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Messages:    messages,
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
