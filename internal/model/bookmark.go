package model

import "time"

// Bookmark represents a saved link with its organization metadata
type Bookmark struct {
	ID       string   `json:"id"`
	URL      string   `json:"url"`
	Title    string   `json:"title"`
	Notes    string   `json:"notes,omitempty"`
	FolderID string   `json:"folder_id,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Favorite bool     `json:"favorite"`

	// Link check state, maintained by the background checker
	LinkStatus LinkStatus `json:"link_status"`
	StatusCode int        `json:"status_code,omitempty"`
	CheckedOn  *time.Time `json:"checked_on,omitempty"`

	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// LinkStatus represents the last known reachability of a bookmarked URL
type LinkStatus string

const (
	LinkStatusUnchecked LinkStatus = "unchecked"
	LinkStatusOK        LinkStatus = "ok"
	LinkStatusBroken    LinkStatus = "broken"
)

// Bookmark constraints
const (
	MaxTitleLength = 200
	MaxNotesLength = 2000
	MaxTagsPerItem = 20
)
