package chat

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/bitsnaps/mockai/internal/model"
)

const DefaultStreamInterval = 100 * time.Millisecond

// Streamer drip-feeds tokenized content to the client as SSE frames,
// emulating incremental generation.
type Streamer struct {
	interval time.Duration
}

func NewStreamer(interval time.Duration) *Streamer {
	if interval <= 0 {
		interval = DefaultStreamInterval
	}
	return &Streamer{interval: interval}
}

// Stream emits one chat.completion.chunk frame per token, then a terminal
// frame with finish_reason "stop" and the [DONE] sentinel. The completion id
// and created timestamp are fixed at stream start and repeated on every frame.
// A client disconnect cancels the ticker; nothing is written afterwards.
func (s *Streamer) Stream(c *gin.Context, modelName, content string) {
	id := "chatcmpl-" + uuid.New().String()
	created := time.Now().Unix()

	s.run(c, content,
		func(token string) any {
			index := 0
			return model.ChatCompletionChunk{
				ID:      id,
				Object:  "chat.completion.chunk",
				Created: created,
				Model:   modelName,
				Choices: []model.ChunkChoice{{
					Index: &index,
					Delta: model.Delta{Role: "assistant", Content: token},
				}},
			}
		},
		func() any {
			// Terminal frame: empty delta, no index.
			stop := "stop"
			return model.ChatCompletionChunk{
				ID:      id,
				Object:  "chat.completion.chunk",
				Created: created,
				Model:   modelName,
				Choices: []model.ChunkChoice{{FinishReason: &stop}},
			}
		})
}

// StreamText is the legacy /v1/completions variant of Stream.
func (s *Streamer) StreamText(c *gin.Context, modelName, content string) {
	id := "cmpl-" + uuid.New().String()
	created := time.Now().Unix()

	s.run(c, content,
		func(token string) any {
			return model.TextCompletionChunk{
				ID:      id,
				Object:  "text_completion",
				Created: created,
				Model:   modelName,
				Choices: []model.TextChunkChoice{{Text: token, Index: 0}},
			}
		},
		func() any {
			stop := "stop"
			return model.TextCompletionChunk{
				ID:      id,
				Object:  "text_completion",
				Created: created,
				Model:   modelName,
				Choices: []model.TextChunkChoice{{Index: 0, FinishReason: &stop}},
			}
		})
}

func (s *Streamer) run(c *gin.Context, content string, deltaFrame func(token string) any, terminalFrame func() any) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Writer.WriteHeaderNow()

	tokens := Tokenize(content)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	ctx := c.Request.Context()
	for i, token := range tokens {
		select {
		case <-ctx.Done():
			log.Debugf("stream: client disconnected after %d of %d tokens", i, len(tokens))
			return
		case <-ticker.C:
		}
		if err := writeFrame(c, deltaFrame(token)); err != nil {
			log.Debugf("stream: write failed after %d tokens: %v", i, err)
			return
		}
	}

	select {
	case <-ctx.Done():
		return
	case <-ticker.C:
	}
	if err := writeFrame(c, terminalFrame()); err != nil {
		return
	}
	if _, err := c.Writer.WriteString("data: [DONE]\n\n"); err != nil {
		return
	}
	c.Writer.Flush()
}

func writeFrame(c *gin.Context, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(c.Writer, "data: %s\n\n", b); err != nil {
		return err
	}
	c.Writer.Flush()
	return nil
}
