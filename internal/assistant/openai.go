package assistant

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/DanielWang2002/KanseiTabi/internal/model"
)

// Fixed travel-assistant persona sent as the system message on every
// request.
const systemInstruction = `You are a helpful travel assistant for a group of friends traveling in Japan.
Your style is polite, concise, and helpful.
You can help with:
1. Translating phrases between Japanese and the user's language.
2. Suggesting simple itineraries or nearby places.
3. Explaining Japanese customs or etiquette.
4. Converting currency (estimates).

Keep answers relatively short and easy to read on a small screen.
If asked about locations, try to provide the Japanese name as well so they can search in maps.`

// OpenAIClient is the production Completer, backed by the OpenAI chat
// completions API.
type OpenAIClient struct {
	client    openai.Client
	modelName string
}

// NewOpenAIClient builds a client for the given key and model name.
func NewOpenAIClient(apiKey, modelName string) *OpenAIClient {
	return &OpenAIClient{
		client:    openai.NewClient(option.WithAPIKey(apiKey)),
		modelName: modelName,
	}
}

// Complete replays the conversation after the persona and asks for one
// reply. An empty completion is returned as "" for the session to map to
// its fallback text.
func (c *OpenAIClient) Complete(ctx context.Context, history []Turn, message string) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+2)
	messages = append(messages, openai.SystemMessage(systemInstruction))
	for _, t := range history {
		if t.Role == model.RoleUser {
			messages = append(messages, openai.UserMessage(t.Text))
		} else {
			messages = append(messages, openai.AssistantMessage(t.Text))
		}
	}
	messages = append(messages, openai.UserMessage(message))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.modelName),
		Messages: messages,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
