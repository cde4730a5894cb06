package chat

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"sync"
	"time"
)

//go:embed contents.json
var defaultContents []byte

var (
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
	rngMu sync.Mutex
)

func randIntn(n int) int {
	if n <= 0 {
		return 0
	}
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}

// Pool holds the canned responses used by random mode. It is loaded once at
// startup and never mutated afterwards.
type Pool struct {
	contents []string
}

// LoadPool reads the pool from path (a JSON array of strings), or from the
// embedded default set when path is empty.
func LoadPool(path string) (*Pool, error) {
	raw := defaultContents
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read contents file: %w", err)
		}
		raw = b
	}

	var contents []string
	if err := json.Unmarshal(raw, &contents); err != nil {
		return nil, fmt.Errorf("parse contents: %w", err)
	}
	if len(contents) == 0 {
		return nil, errors.New("contents list is empty")
	}
	return &Pool{contents: contents}, nil
}

// Random picks one entry with a uniform distribution.
func (p *Pool) Random() string {
	return p.contents[randIntn(len(p.contents))]
}

func (p *Pool) Len() int {
	return len(p.contents)
}

// Contents returns a copy of the pool entries.
func (p *Pool) Contents() []string {
	out := make([]string, len(p.contents))
	copy(out, p.contents)
	return out
}
