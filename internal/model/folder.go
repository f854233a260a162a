package model

import "time"

// Folder groups bookmarks under a name
type Folder struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedOn   time.Time `json:"created_on"`
	UpdatedOn   time.Time `json:"updated_on"`
}

// Folder constraints
const (
	MaxFolderNameLength = 100
	MaxFolderDescLength = 500
)
