package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/quiverapp/quiver/api/internal/database"
	"github.com/quiverapp/quiver/api/internal/model"
	"github.com/quiverapp/quiver/api/internal/rest"
)

// BookmarkRepository handles bookmark persistence
type BookmarkRepository struct {
	db database.Database
}

// NewBookmarkRepository creates a new bookmark repository
func NewBookmarkRepository(db database.Database) *BookmarkRepository {
	return &BookmarkRepository{db: db}
}

// List retrieves bookmarks, optionally narrowed to a folder or tag
func (r *BookmarkRepository) List(ctx context.Context, filter rest.Filter) ([]*model.Bookmark, error) {
	query := `SELECT * FROM bookmark`
	vars := map[string]interface{}{}

	var conds []string
	if folder := filter["folder"]; folder != "" {
		conds = append(conds, "folder_id = $folder")
		vars["folder"] = folder
	}
	if tag := filter["tag"]; tag != "" {
		conds = append(conds, "$tag IN tags")
		vars["tag"] = tag
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_on DESC"

	rows, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	bookmarks := make([]*model.Bookmark, 0, len(rows))
	for _, row := range rows {
		b, err := parseBookmarkRow(row)
		if err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, b)
	}
	return bookmarks, nil
}

// Get retrieves a bookmark by ID
func (r *BookmarkRepository) Get(ctx context.Context, id string) (*model.Bookmark, error) {
	rid, err := recordIDFor("bookmark", id)
	if err != nil {
		return nil, err
	}

	row, err := r.db.QueryOne(ctx, `SELECT * FROM type::record($id)`, map[string]interface{}{"id": rid})
	if err != nil {
		return nil, err
	}
	return parseBookmarkRow(row)
}

// Save persists a bookmark, creating it when it has no ID yet
func (r *BookmarkRepository) Save(ctx context.Context, b *model.Bookmark) error {
	query, vars := bookmarkSaveStatement(b)
	if err := r.db.Execute(ctx, query, vars); err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: bookmark url already saved", database.ErrDuplicate)
		}
		return err
	}
	return nil
}

// SaveAll persists several bookmarks in a single transaction
func (r *BookmarkRepository) SaveAll(ctx context.Context, bookmarks []*model.Bookmark) error {
	batch := database.NewAtomicBatch()
	for _, b := range bookmarks {
		query, vars := bookmarkSaveStatement(b)
		batch.Add(query, vars)
	}
	if _, err := batch.Execute(ctx, r.db); err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: bookmark url already saved", database.ErrDuplicate)
		}
		return err
	}
	return nil
}

// Delete removes a bookmark by ID
func (r *BookmarkRepository) Delete(ctx context.Context, id string) error {
	rid, err := recordIDFor("bookmark", id)
	if err != nil {
		return err
	}
	return r.db.Execute(ctx, `DELETE type::record($id)`, map[string]interface{}{"id": rid})
}

// ListDue retrieves bookmarks whose link has not been checked since before
func (r *BookmarkRepository) ListDue(ctx context.Context, before time.Time) ([]*model.Bookmark, error) {
	query := `SELECT * FROM bookmark WHERE checked_on IS NONE OR checked_on < $before ORDER BY checked_on ASC`
	rows, err := r.db.Query(ctx, query, map[string]interface{}{"before": before.UTC().Format(time.RFC3339)})
	if err != nil {
		return nil, err
	}

	bookmarks := make([]*model.Bookmark, 0, len(rows))
	for _, row := range rows {
		b, err := parseBookmarkRow(row)
		if err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, b)
	}
	return bookmarks, nil
}

// RecordCheck stores the result of a link check
func (r *BookmarkRepository) RecordCheck(ctx context.Context, id string, status model.LinkStatus, statusCode int) error {
	rid, err := recordIDFor("bookmark", id)
	if err != nil {
		return err
	}
	query := `UPDATE type::record($id) SET link_status = $status, status_code = $code, checked_on = time::now(), updated_on = time::now()`
	return r.db.Execute(ctx, query, map[string]interface{}{
		"id":     rid,
		"status": string(status),
		"code":   statusCode,
	})
}

// bookmarkSaveStatement builds the upsert for a bookmark, assigning an ID
// and timestamps to new records.
func bookmarkSaveStatement(b *model.Bookmark) (string, map[string]interface{}) {
	now := time.Now().UTC()
	if b.ID == "" {
		b.ID = "bookmark:" + newRecordKey()
		b.CreatedOn = now
	}
	if b.LinkStatus == "" {
		b.LinkStatus = model.LinkStatusUnchecked
	}
	b.UpdatedOn = now

	var checkedOn interface{}
	if b.CheckedOn != nil {
		checkedOn = b.CheckedOn.UTC().Format(time.RFC3339)
	}

	query := `
		UPSERT type::record($id) CONTENT {
			url: $url,
			title: $title,
			notes: $notes,
			folder_id: $folder_id,
			tags: $tags,
			favorite: $favorite,
			link_status: $link_status,
			status_code: $status_code,
			checked_on: $checked_on,
			created_on: $created_on,
			updated_on: $updated_on
		}
	`
	vars := map[string]interface{}{
		"id":          b.ID,
		"url":         b.URL,
		"title":       b.Title,
		"notes":       b.Notes,
		"folder_id":   b.FolderID,
		"tags":        b.Tags,
		"favorite":    b.Favorite,
		"link_status": string(b.LinkStatus),
		"status_code": b.StatusCode,
		"checked_on":  checkedOn,
		"created_on":  b.CreatedOn.Format(time.RFC3339),
		"updated_on":  b.UpdatedOn.Format(time.RFC3339),
	}
	return query, vars
}

func parseBookmarkRow(row interface{}) (*model.Bookmark, error) {
	m, ok := rowMap(row)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected bookmark row shape", database.ErrQuery)
	}

	return &model.Bookmark{
		ID:         extractRecordID(m["id"]),
		URL:        getString(m, "url"),
		Title:      getString(m, "title"),
		Notes:      getString(m, "notes"),
		FolderID:   getString(m, "folder_id"),
		Tags:       getStringSlice(m, "tags"),
		Favorite:   getBool(m, "favorite"),
		LinkStatus: model.LinkStatus(getString(m, "link_status")),
		StatusCode: getInt(m, "status_code"),
		CheckedOn:  parseTimePtr(m["checked_on"]),
		CreatedOn:  parseTime(m["created_on"]),
		UpdatedOn:  parseTime(m["updated_on"]),
	}, nil
}

// newRecordKey generates a record key safe to embed in a record ID
func newRecordKey() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
