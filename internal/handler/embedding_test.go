package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
)

func newMiscRouter() *gin.Engine {
	r := gin.New()
	r.POST("/v1/embeddings", NewEmbeddingHandler().Create)
	r.POST("/v1/images/generations", NewImageHandler().Generate)
	return r
}

func TestEmbeddingsSingleInput(t *testing.T) {
	r := newMiscRouter()

	w := postJSON(r, "/v1/embeddings", `{"input":"hello","model":"text-embedding-3-small"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	body := w.Body.String()
	if got := gjson.Get(body, "data.#").Int(); got != 1 {
		t.Fatalf("data length = %d", got)
	}
	if got := gjson.Get(body, "data.0.embedding.#").Int(); got != 1536 {
		t.Fatalf("vector length = %d", got)
	}
	if got := gjson.Get(body, "model").String(); got != "text-embedding-3-small" {
		t.Fatalf("model = %q", got)
	}
}

func TestEmbeddingsArrayInput(t *testing.T) {
	r := newMiscRouter()

	w := postJSON(r, "/v1/embeddings", `{"input":["a","b","c"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := gjson.Get(w.Body.String(), "data.#").Int(); got != 3 {
		t.Fatalf("data length = %d", got)
	}
	if got := gjson.Get(w.Body.String(), "data.2.index").Int(); got != 2 {
		t.Fatalf("last index = %d", got)
	}
}

func TestEmbeddingsMissingInput(t *testing.T) {
	r := newMiscRouter()

	w := postJSON(r, "/v1/embeddings", `{"model":"text-embedding-3-small"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestImageGeneration(t *testing.T) {
	r := newMiscRouter()

	w := postJSON(r, "/v1/images/generations", `{"prompt":"a red fox","n":2}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	body := w.Body.String()
	if got := gjson.Get(body, "data.#").Int(); got != 2 {
		t.Fatalf("data length = %d", got)
	}
	url := gjson.Get(body, "data.0.url").String()
	if url == "" {
		t.Fatalf("missing url in %s", body)
	}
}

func TestImageGenerationMissingPrompt(t *testing.T) {
	r := newMiscRouter()

	w := postJSON(r, "/v1/images/generations", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
