package mapper

import (
	"github.com/quiverapp/quiver/api/internal/model"
)

// BookmarkMapper translates bookmarks to and from their wire form.
// Server-maintained fields (id, link check state, timestamps) are never
// assignable from a payload.
type BookmarkMapper struct{}

type bookmarkPayload struct {
	URL      string   `json:"url" validate:"required,url"`
	Title    string   `json:"title" validate:"required,max=200"`
	Notes    string   `json:"notes" validate:"omitempty,max=2000"`
	FolderID string   `json:"folder_id"`
	Tags     []string `json:"tags" validate:"omitempty,max=20,dive,required,max=50,lowercase"`
	Favorite bool     `json:"favorite"`
}

type bookmarkPatchPayload struct {
	URL      *string   `json:"url" validate:"omitempty,url"`
	Title    *string   `json:"title" validate:"omitempty,min=1,max=200"`
	Notes    *string   `json:"notes" validate:"omitempty,max=2000"`
	FolderID *string   `json:"folder_id"`
	Tags     *[]string `json:"tags" validate:"omitempty,max=20,dive,required,max=50,lowercase"`
	Favorite *bool     `json:"favorite"`
}

// Out serializes a bookmark for a response body
func (BookmarkMapper) Out(b *model.Bookmark) interface{} {
	return b
}

// Apply performs a full replace of the wire-assignable fields
func (BookmarkMapper) Apply(b *model.Bookmark, data []byte) error {
	var p bookmarkPayload
	if err := decodeStrict(data, &p); err != nil {
		return err
	}
	if err := validate.Struct(p); err != nil {
		return Flatten(err)
	}

	b.URL = p.URL
	b.Title = p.Title
	b.Notes = p.Notes
	b.FolderID = p.FolderID
	b.Tags = p.Tags
	b.Favorite = p.Favorite
	return nil
}

// Patch mutates only the fields present in the payload
func (BookmarkMapper) Patch(b *model.Bookmark, data []byte) error {
	var p bookmarkPatchPayload
	if err := decodeStrict(data, &p); err != nil {
		return err
	}
	if err := validate.Struct(p); err != nil {
		return Flatten(err)
	}

	if p.URL != nil {
		b.URL = *p.URL
	}
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Notes != nil {
		b.Notes = *p.Notes
	}
	if p.FolderID != nil {
		b.FolderID = *p.FolderID
	}
	if p.Tags != nil {
		b.Tags = *p.Tags
	}
	if p.Favorite != nil {
		b.Favorite = *p.Favorite
	}
	return nil
}
