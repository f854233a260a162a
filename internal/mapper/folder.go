package mapper

import (
	"github.com/quiverapp/quiver/api/internal/model"
)

// FolderMapper translates folders to and from their wire form
type FolderMapper struct{}

type folderPayload struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

type folderPatchPayload struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// Out serializes a folder for a response body
func (FolderMapper) Out(f *model.Folder) interface{} {
	return f
}

// Apply performs a full replace of the wire-assignable fields
func (FolderMapper) Apply(f *model.Folder, data []byte) error {
	var p folderPayload
	if err := decodeStrict(data, &p); err != nil {
		return err
	}
	if err := validate.Struct(p); err != nil {
		return Flatten(err)
	}

	f.Name = p.Name
	f.Description = p.Description
	return nil
}

// Patch mutates only the fields present in the payload
func (FolderMapper) Patch(f *model.Folder, data []byte) error {
	var p folderPatchPayload
	if err := decodeStrict(data, &p); err != nil {
		return err
	}
	if err := validate.Struct(p); err != nil {
		return Flatten(err)
	}

	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.Description != nil {
		f.Description = *p.Description
	}
	return nil
}
