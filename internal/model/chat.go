package model

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionRequest is the inbound /v1/chat/completions payload.
// Stream and MockFixedContents are pointers so that a missing field can be
// told apart from a zero value during validation.
type ChatCompletionRequest struct {
	Messages          []Message `json:"messages"`
	Stream            *bool     `json:"stream"`
	MockType          string    `json:"mockType"`
	MockFixedContents *string   `json:"mockFixedContents"`
	Model             string    `json:"model"`
	N                 int       `json:"n"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type ChatCompletionChoice struct {
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
	Index        int     `json:"index"`
}

type ChatCompletionResponse struct {
	ID      string                 `json:"id"`
	Object  string                 `json:"object"`
	Created int64                  `json:"created"`
	Model   string                 `json:"model"`
	Usage   Usage                  `json:"usage"`
	Choices []ChatCompletionChoice `json:"choices"`
}

// Delta is the incremental payload of one streamed chunk. The terminal chunk
// carries an empty delta.
type Delta struct {
	Role    string `json:"role,omitempty"`
	Content string `json:"content,omitempty"`
}

// ChunkChoice matches the wire shape of streamed choices: delta frames carry
// index 0 and a null finish_reason, the terminal frame omits the index and
// sets finish_reason to "stop".
type ChunkChoice struct {
	Index        *int    `json:"index,omitempty"`
	Delta        Delta   `json:"delta"`
	FinishReason *string `json:"finish_reason"`
}

type ChatCompletionChunk struct {
	ID      string        `json:"id"`
	Object  string        `json:"object"`
	Created int64         `json:"created"`
	Model   string        `json:"model"`
	Choices []ChunkChoice `json:"choices"`
}
