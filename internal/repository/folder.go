package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/quiverapp/quiver/api/internal/database"
	"github.com/quiverapp/quiver/api/internal/model"
	"github.com/quiverapp/quiver/api/internal/rest"
)

// FolderRepository handles folder persistence
type FolderRepository struct {
	db database.Database
}

// NewFolderRepository creates a new folder repository
func NewFolderRepository(db database.Database) *FolderRepository {
	return &FolderRepository{db: db}
}

// List retrieves all folders. Folders have no filters; the parameter exists
// to satisfy the lister capability.
func (r *FolderRepository) List(ctx context.Context, _ rest.Filter) ([]*model.Folder, error) {
	rows, err := r.db.Query(ctx, `SELECT * FROM folder ORDER BY name ASC`, nil)
	if err != nil {
		return nil, err
	}

	folders := make([]*model.Folder, 0, len(rows))
	for _, row := range rows {
		f, err := parseFolderRow(row)
		if err != nil {
			return nil, err
		}
		folders = append(folders, f)
	}
	return folders, nil
}

// Get retrieves a folder by ID
func (r *FolderRepository) Get(ctx context.Context, id string) (*model.Folder, error) {
	rid, err := recordIDFor("folder", id)
	if err != nil {
		return nil, err
	}

	row, err := r.db.QueryOne(ctx, `SELECT * FROM type::record($id)`, map[string]interface{}{"id": rid})
	if err != nil {
		return nil, err
	}
	return parseFolderRow(row)
}

// Save persists a folder, creating it when it has no ID yet
func (r *FolderRepository) Save(ctx context.Context, f *model.Folder) error {
	query, vars := folderSaveStatement(f)
	return r.db.Execute(ctx, query, vars)
}

// SaveAll persists several folders in a single transaction
func (r *FolderRepository) SaveAll(ctx context.Context, folders []*model.Folder) error {
	batch := database.NewAtomicBatch()
	for _, f := range folders {
		query, vars := folderSaveStatement(f)
		batch.Add(query, vars)
	}
	_, err := batch.Execute(ctx, r.db)
	return err
}

// Delete removes a folder by ID. Bookmarks keep their folder_id; a dangling
// reference renders as an unfiled bookmark.
func (r *FolderRepository) Delete(ctx context.Context, id string) error {
	rid, err := recordIDFor("folder", id)
	if err != nil {
		return err
	}
	return r.db.Execute(ctx, `DELETE type::record($id)`, map[string]interface{}{"id": rid})
}

// folderSaveStatement builds the upsert for a folder, assigning an ID and
// timestamps to new records.
func folderSaveStatement(f *model.Folder) (string, map[string]interface{}) {
	now := time.Now().UTC()
	if f.ID == "" {
		f.ID = "folder:" + newRecordKey()
		f.CreatedOn = now
	}
	f.UpdatedOn = now

	query := `
		UPSERT type::record($id) CONTENT {
			name: $name,
			description: $description,
			created_on: $created_on,
			updated_on: $updated_on
		}
	`
	vars := map[string]interface{}{
		"id":          f.ID,
		"name":        f.Name,
		"description": f.Description,
		"created_on":  f.CreatedOn.Format(time.RFC3339),
		"updated_on":  f.UpdatedOn.Format(time.RFC3339),
	}
	return query, vars
}

func parseFolderRow(row interface{}) (*model.Folder, error) {
	m, ok := rowMap(row)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected folder row shape", database.ErrQuery)
	}

	return &model.Folder{
		ID:          extractRecordID(m["id"]),
		Name:        getString(m, "name"),
		Description: getString(m, "description"),
		CreatedOn:   parseTime(m["created_on"]),
		UpdatedOn:   parseTime(m["updated_on"]),
	}, nil
}
