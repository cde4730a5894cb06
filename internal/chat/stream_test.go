package chat

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
)

func streamBody(t *testing.T, content string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := NewStreamer(time.Millisecond)
	r := gin.New()
	r.GET("/stream", func(c *gin.Context) {
		s.Stream(c, "gpt-4o-mini", content)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/stream", nil)
	r.ServeHTTP(w, req)
	return w
}

// frames splits an SSE body into its data payloads.
func frames(t *testing.T, body string) []string {
	t.Helper()
	var out []string
	for _, part := range strings.Split(body, "\n\n") {
		if part == "" {
			continue
		}
		if !strings.HasPrefix(part, "data: ") {
			t.Fatalf("frame without data prefix: %q", part)
		}
		out = append(out, strings.TrimPrefix(part, "data: "))
	}
	return out
}

func TestStreamFrameAccounting(t *testing.T) {
	content := "one two three"
	w := streamBody(t, content)

	if ct := w.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("Content-Type = %q", ct)
	}

	fs := frames(t, w.Body.String())
	tokens := Tokenize(content)

	// k delta frames + terminal + sentinel.
	if len(fs) != len(tokens)+2 {
		t.Fatalf("got %d frames, want %d", len(fs), len(tokens)+2)
	}

	var id string
	for i, tok := range tokens {
		f := fs[i]
		if got := gjson.Get(f, "choices.0.delta.content").String(); got != tok {
			t.Fatalf("frame %d content = %q, want %q", i, got, tok)
		}
		if got := gjson.Get(f, "choices.0.delta.role").String(); got != "assistant" {
			t.Fatalf("frame %d role = %q", i, got)
		}
		if !gjson.Get(f, "choices.0.finish_reason").Exists() {
			t.Fatalf("frame %d missing finish_reason null", i)
		}
		if gjson.Get(f, "choices.0.finish_reason").Type != gjson.Null {
			t.Fatalf("frame %d finish_reason should be null: %s", i, f)
		}
		if i == 0 {
			id = gjson.Get(f, "id").String()
			if !strings.HasPrefix(id, "chatcmpl-") {
				t.Fatalf("unexpected completion id %q", id)
			}
		} else if got := gjson.Get(f, "id").String(); got != id {
			t.Fatalf("frame %d id %q differs from %q", i, got, id)
		}
		if got := gjson.Get(f, "object").String(); got != "chat.completion.chunk" {
			t.Fatalf("frame %d object = %q", i, got)
		}
	}

	terminal := fs[len(fs)-2]
	if got := gjson.Get(terminal, "choices.0.finish_reason").String(); got != "stop" {
		t.Fatalf("terminal finish_reason = %q", got)
	}
	if gjson.Get(terminal, "choices.0.delta").Raw != "{}" {
		t.Fatalf("terminal delta not empty: %s", terminal)
	}
	if gjson.Get(terminal, "id").String() != id {
		t.Fatalf("terminal id differs")
	}

	if fs[len(fs)-1] != "[DONE]" {
		t.Fatalf("last frame = %q, want [DONE]", fs[len(fs)-1])
	}
}

func TestStreamEmptyContent(t *testing.T) {
	w := streamBody(t, "")
	fs := frames(t, w.Body.String())

	if len(fs) != 2 {
		t.Fatalf("got %d frames, want 2 (terminal + sentinel)", len(fs))
	}
	if got := gjson.Get(fs[0], "choices.0.finish_reason").String(); got != "stop" {
		t.Fatalf("terminal finish_reason = %q", got)
	}
	if fs[1] != "[DONE]" {
		t.Fatalf("sentinel = %q", fs[1])
	}
}

func TestStreamTextFrames(t *testing.T) {
	gin.SetMode(gin.TestMode)

	s := NewStreamer(time.Millisecond)
	r := gin.New()
	r.GET("/stream", func(c *gin.Context) {
		s.StreamText(c, "davinci", "alpha beta")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stream", nil))

	fs := frames(t, w.Body.String())
	if len(fs) != 4 {
		t.Fatalf("got %d frames, want 4", len(fs))
	}
	if got := gjson.Get(fs[0], "choices.0.text").String(); got != "alpha " {
		t.Fatalf("first text = %q", got)
	}
	if got := gjson.Get(fs[0], "object").String(); got != "text_completion" {
		t.Fatalf("object = %q", got)
	}
	if got := gjson.Get(fs[2], "choices.0.finish_reason").String(); got != "stop" {
		t.Fatalf("terminal finish_reason = %q", got)
	}
	if fs[3] != "[DONE]" {
		t.Fatalf("sentinel = %q", fs[3])
	}
}

func TestStreamCancelledContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	s := NewStreamer(10 * time.Millisecond)
	r := gin.New()
	r.GET("/stream", func(c *gin.Context) {
		s.Stream(c, "gpt-4o-mini", "one two three four five")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/stream", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()

	r.ServeHTTP(w, req.WithContext(ctx))

	// Nothing past the headers may be written for a dead client.
	if body := w.Body.String(); strings.Contains(body, "[DONE]") {
		t.Fatalf("cancelled stream still completed: %q", body)
	}
}
