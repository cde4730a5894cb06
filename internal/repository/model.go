package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"modernc.org/sqlite"

	"github.com/bitsnaps/mockai/internal/database"
	"github.com/bitsnaps/mockai/internal/model"
)

// ErrDuplicateModel reports a create racing into an id that already exists.
var ErrDuplicateModel = errors.New("model already exists")

const (
	modelType      = "text"
	modelMaxTokens = 4096
	modelEndpoint  = "https://api.openai.com"
	modelOwner     = "mockai"
)

type ModelRepository struct{}

func NewModelRepository() *ModelRepository {
	return &ModelRepository{}
}

// ModelID derives the registry key from the three identifying fields.
func ModelID(vectorDB, collection, embeddingFunction string) string {
	return fmt.Sprintf("mockai/%s-%s-%s", vectorDB, collection, embeddingFunction)
}

// Create persists a new model record. Existing records are never overwritten;
// the primary key constraint surfaces duplicates as ErrDuplicateModel.
func (r *ModelRepository) Create(req *model.CreateModelRequest) (*model.ModelRecord, error) {
	db := database.GetDB()
	now := time.Now().Unix()

	rec := &model.ModelRecord{
		ID:      ModelID(req.VectorDB, req.Collection, req.EmbeddingFunction),
		Object:  "model",
		Created: now,
		ModelDetails: model.ModelDetails{
			ID:          uuid.New().String(),
			Name:        req.Collection,
			Type:        modelType,
			Description: req.Description,
			Created:     now,
			MaxTokens:   modelMaxTokens,
			Endpoint:    modelEndpoint,
			Owner:       modelOwner,
			Permissions: []string{"read", "write"},
		},
	}

	perms, err := json.Marshal(rec.ModelDetails.Permissions)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(
		`INSERT INTO models (id, created, detail_id, name, type, description, max_tokens, endpoint, owner, permissions)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Created, rec.ModelDetails.ID, rec.ModelDetails.Name, rec.ModelDetails.Type,
		rec.ModelDetails.Description, rec.ModelDetails.MaxTokens, rec.ModelDetails.Endpoint,
		rec.ModelDetails.Owner, string(perms),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateModel
		}
		return nil, err
	}
	return rec, nil
}

// List returns all records in insertion order.
func (r *ModelRepository) List() ([]*model.ModelRecord, error) {
	db := database.GetDB()
	rows, err := db.Query(
		`SELECT id, created, detail_id, name, type, description, max_tokens, endpoint, owner, permissions
		 FROM models ORDER BY rowid`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*model.ModelRecord
	for rows.Next() {
		rec := &model.ModelRecord{Object: "model"}
		var perms string
		err := rows.Scan(
			&rec.ID, &rec.Created, &rec.ModelDetails.ID, &rec.ModelDetails.Name, &rec.ModelDetails.Type,
			&rec.ModelDetails.Description, &rec.ModelDetails.MaxTokens, &rec.ModelDetails.Endpoint,
			&rec.ModelDetails.Owner, &perms,
		)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(perms), &rec.ModelDetails.Permissions); err != nil {
			return nil, err
		}
		rec.ModelDetails.Created = rec.Created
		list = append(list, rec)
	}
	return list, rows.Err()
}

// Delete removes the record if present. A missing id is not an error; only
// genuine storage failures are reported.
func (r *ModelRepository) Delete(id string) error {
	db := database.GetDB()
	_, err := db.Exec(`DELETE FROM models WHERE id = ?`, id)
	return err
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		// SQLITE_CONSTRAINT and its extended codes (1555 primary key,
		// 2067 unique index).
		return se.Code()&0xff == 19
	}
	return false
}
