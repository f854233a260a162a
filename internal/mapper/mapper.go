package mapper

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Mapper converts between a resource and its wire representation.
//
// Out serializes a resource for a response body. Apply performs a full
// replace: every wire-assignable field is set from the payload and absent
// optional fields are reset. Patch mutates only the fields present in the
// payload. Both return Errors on validation failure.
//
// Mappers are stateless; the only side effect permitted is the field
// assignment on the target object, and only after validation has passed.
type Mapper[T any] interface {
	Out(obj T) any
	Apply(obj T, data []byte) error
	Patch(obj T, data []byte) error
}

// Errors is the flattened validation error collection: field name to the
// list of human-readable messages for that field. It is wire-safe as-is.
type Errors map[string][]string

// NewErrors creates an empty error collection
func NewErrors() Errors {
	return make(Errors)
}

// Add appends a message for a field
func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Prefixed returns a copy with every field key prefixed, used to index
// element errors in sequence payloads ("2.url").
func (e Errors) Prefixed(prefix string) Errors {
	out := make(Errors, len(e))
	for field, messages := range e {
		out[prefix+field] = messages
	}
	return out
}

// Error implements the error interface
func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

// decodeStrict decodes a JSON object rejecting unknown fields and trailing
// content after the value. Decode failures are reported as an error
// collection keyed by "body" so they surface through the same 400 path as
// field validation.
func decodeStrict(data []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		errs := NewErrors()
		errs.Add("body", decodeMessage(err))
		return errs
	}

	var trailing json.RawMessage
	if err := dec.Decode(&trailing); err != io.EOF {
		errs := NewErrors()
		errs.Add("body", "unexpected content after JSON payload")
		return errs
	}
	return nil
}

func decodeMessage(err error) string {
	msg := err.Error()
	if strings.HasPrefix(msg, "json: unknown field") {
		return strings.TrimPrefix(msg, "json: ")
	}
	return "malformed JSON payload"
}
