package mapper

import (
	"github.com/quiverapp/quiver/api/internal/model"
)

// TagMapper translates tags to and from their wire form
type TagMapper struct{}

type tagPayload struct {
	Name  string `json:"name" validate:"required,max=50,lowercase"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

type tagPatchPayload struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=50,lowercase"`
	Color *string `json:"color" validate:"omitempty,hexcolor"`
}

// Out serializes a tag for a response body
func (TagMapper) Out(t *model.Tag) interface{} {
	return t
}

// Apply performs a full replace of the wire-assignable fields
func (TagMapper) Apply(t *model.Tag, data []byte) error {
	var p tagPayload
	if err := decodeStrict(data, &p); err != nil {
		return err
	}
	if err := validate.Struct(p); err != nil {
		return Flatten(err)
	}

	t.Name = p.Name
	t.Color = p.Color
	return nil
}

// Patch mutates only the fields present in the payload
func (TagMapper) Patch(t *model.Tag, data []byte) error {
	var p tagPatchPayload
	if err := decodeStrict(data, &p); err != nil {
		return err
	}
	if err := validate.Struct(p); err != nil {
		return Flatten(err)
	}

	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Color != nil {
		t.Color = *p.Color
	}
	return nil
}
