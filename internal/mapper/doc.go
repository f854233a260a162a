// Package mapper provides bidirectional translation between domain objects
// and their wire representations.
//
// A Mapper owns three operations:
//
//   - Out: serialize a resource for a response body
//   - Apply: full-replace field assignment from a payload (PUT, create)
//   - Patch: partial field assignment, only for fields present (PATCH)
//
// Apply and Patch validate before assigning anything; on failure they return
// an Errors value, the flattened field-to-messages map that becomes the 400
// response body. Validation rules live as struct tags on the payload types
// and are enforced by go-playground/validator; unknown payload fields are
// rejected at decode.
//
// Mappers are stateless and deterministic. The concrete mappers
// (BookmarkMapper, FolderMapper, TagMapper) plug into the generic handlers
// in the rest package.
package mapper
