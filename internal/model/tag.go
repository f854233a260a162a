package model

import "time"

// Tag is a flat label attachable to bookmarks. Names are lowercase slugs
// and unique across the account.
type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color,omitempty"` // hex, e.g. #ff8800
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// Tag constraints
const MaxTagNameLength = 50
