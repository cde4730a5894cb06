package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/bitsnaps/mockai/internal/model"
)

// Mode selects the content resolution strategy for a completion request.
type Mode int

const (
	ModeRandom Mode = iota
	ModeFixed
	ModeEcho
)

var (
	ErrInvalidMode          = errors.New("invalid mock type")
	ErrMissingFixedContents = errors.New(`missing "mockFixedContents" for fixed mock type`)
)

// ParseMode maps a request's mockType onto a Mode, falling back to the
// configured default when the field is absent. The mode set is closed; any
// other value is a validation error.
func ParseMode(s, defaultMode string) (Mode, error) {
	if s == "" {
		s = defaultMode
	}
	switch s {
	case "random":
		return ModeRandom, nil
	case "fixed":
		return ModeFixed, nil
	case "echo":
		return ModeEcho, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeRandom:
		return "random"
	case ModeFixed:
		return "fixed"
	case ModeEcho:
		return "echo"
	}
	return "unknown"
}

// Querier is the similarity-search collaborator used by echo mode. It returns
// the top document for the query text together with its source url metadata.
type Querier interface {
	Query(ctx context.Context, collection, text string) (document, url string, err error)
}

// Resolver turns a mock mode plus request data into response content.
type Resolver struct {
	pool       *Pool
	querier    Querier
	collection string
}

func NewResolver(pool *Pool, querier Querier, collection string) *Resolver {
	return &Resolver{pool: pool, querier: querier, collection: collection}
}

// Resolve produces the text to serve. fixed mode returns the supplied contents
// verbatim; echo mode submits the last message as a similarity query and
// returns the top document joined with its url.
func (r *Resolver) Resolve(ctx context.Context, mode Mode, messages []model.Message, fixedContents *string) (string, error) {
	switch mode {
	case ModeRandom:
		return r.pool.Random(), nil
	case ModeFixed:
		if fixedContents == nil {
			return "", ErrMissingFixedContents
		}
		return *fixedContents, nil
	case ModeEcho:
		query := messages[len(messages)-1].Content
		doc, url, err := r.querier.Query(ctx, r.collection, query)
		if err != nil {
			return "", fmt.Errorf("query collection %q: %w", r.collection, err)
		}
		return doc + "\n" + url, nil
	default:
		return "", fmt.Errorf("%w: %d", ErrInvalidMode, mode)
	}
}
