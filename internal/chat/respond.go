package chat

import (
	"time"

	"github.com/google/uuid"

	"github.com/bitsnaps/mockai/internal/model"
)

// Usage counters are placeholders; this server does no real token accounting.
var mockUsage = model.Usage{PromptTokens: 10, CompletionTokens: 50, TotalTokens: 60}

// BuildChatCompletion wraps content in a chat.completion envelope with n
// independent choices, each carrying the same content.
func BuildChatCompletion(modelName, content string, n int) model.ChatCompletionResponse {
	if n <= 0 {
		n = 1
	}

	choices := make([]model.ChatCompletionChoice, 0, n)
	for i := 0; i < n; i++ {
		choices = append(choices, model.ChatCompletionChoice{
			Message:      model.Message{Role: "assistant", Content: content},
			FinishReason: "stop",
			Index:        i,
		})
	}

	return model.ChatCompletionResponse{
		ID:      "chatcmpl-" + uuid.New().String(),
		Object:  "chat.completion",
		Created: time.Now().Unix(),
		Model:   modelName,
		Usage:   mockUsage,
		Choices: choices,
	}
}

// BuildTextCompletion is the legacy /v1/completions envelope.
func BuildTextCompletion(modelName, content string, n int) model.TextCompletionResponse {
	if n <= 0 {
		n = 1
	}

	choices := make([]model.TextCompletionChoice, 0, n)
	for i := 0; i < n; i++ {
		choices = append(choices, model.TextCompletionChoice{
			Text:         content,
			Index:        i,
			FinishReason: "stop",
		})
	}

	return model.TextCompletionResponse{
		ID:      "cmpl-" + uuid.New().String(),
		Object:  "text_completion",
		Created: time.Now().Unix(),
		Model:   modelName,
		Usage:   mockUsage,
		Choices: choices,
	}
}
