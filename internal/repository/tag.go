package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/quiverapp/quiver/api/internal/database"
	"github.com/quiverapp/quiver/api/internal/model"
	"github.com/quiverapp/quiver/api/internal/rest"
)

// TagRepository handles tag persistence. Tag names carry a unique index;
// violations surface as database.ErrDuplicate.
type TagRepository struct {
	db database.Database
}

// NewTagRepository creates a new tag repository
func NewTagRepository(db database.Database) *TagRepository {
	return &TagRepository{db: db}
}

// List retrieves all tags
func (r *TagRepository) List(ctx context.Context, _ rest.Filter) ([]*model.Tag, error) {
	rows, err := r.db.Query(ctx, `SELECT * FROM tag ORDER BY name ASC`, nil)
	if err != nil {
		return nil, err
	}

	tags := make([]*model.Tag, 0, len(rows))
	for _, row := range rows {
		t, err := parseTagRow(row)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, nil
}

// Get retrieves a tag by ID
func (r *TagRepository) Get(ctx context.Context, id string) (*model.Tag, error) {
	rid, err := recordIDFor("tag", id)
	if err != nil {
		return nil, err
	}

	row, err := r.db.QueryOne(ctx, `SELECT * FROM type::record($id)`, map[string]interface{}{"id": rid})
	if err != nil {
		return nil, err
	}
	return parseTagRow(row)
}

// Save persists a tag, creating it when it has no ID yet
func (r *TagRepository) Save(ctx context.Context, t *model.Tag) error {
	query, vars := tagSaveStatement(t)
	if err := r.db.Execute(ctx, query, vars); err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: tag name already exists", database.ErrDuplicate)
		}
		return err
	}
	return nil
}

// SaveAll persists several tags in a single transaction
func (r *TagRepository) SaveAll(ctx context.Context, tags []*model.Tag) error {
	batch := database.NewAtomicBatch()
	for _, t := range tags {
		query, vars := tagSaveStatement(t)
		batch.Add(query, vars)
	}
	if _, err := batch.Execute(ctx, r.db); err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: tag name already exists", database.ErrDuplicate)
		}
		return err
	}
	return nil
}

// Delete removes a tag by ID
func (r *TagRepository) Delete(ctx context.Context, id string) error {
	rid, err := recordIDFor("tag", id)
	if err != nil {
		return err
	}
	return r.db.Execute(ctx, `DELETE type::record($id)`, map[string]interface{}{"id": rid})
}

// tagSaveStatement builds the upsert for a tag, assigning an ID and
// timestamps to new records.
func tagSaveStatement(t *model.Tag) (string, map[string]interface{}) {
	now := time.Now().UTC()
	if t.ID == "" {
		t.ID = "tag:" + newRecordKey()
		t.CreatedOn = now
	}
	t.UpdatedOn = now

	query := `
		UPSERT type::record($id) CONTENT {
			name: $name,
			color: $color,
			created_on: $created_on,
			updated_on: $updated_on
		}
	`
	vars := map[string]interface{}{
		"id":         t.ID,
		"name":       t.Name,
		"color":      t.Color,
		"created_on": t.CreatedOn.Format(time.RFC3339),
		"updated_on": t.UpdatedOn.Format(time.RFC3339),
	}
	return query, vars
}

func parseTagRow(row interface{}) (*model.Tag, error) {
	m, ok := rowMap(row)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected tag row shape", database.ErrQuery)
	}

	return &model.Tag{
		ID:        extractRecordID(m["id"]),
		Name:      getString(m, "name"),
		Color:     getString(m, "color"),
		CreatedOn: parseTime(m["created_on"]),
		UpdatedOn: parseTime(m["updated_on"]),
	}, nil
}
