// Package rest is the resource adapter: it translates HTTP verbs into
// create/read/update/delete operations against persistence-backed objects,
// serialized through the mapper package.
//
// # Composition
//
// Endpoints are composed from small capability interfaces
// (Lister, Reader, Writer, BulkWriter, Deleter). A store
// implements the capabilities its resource exposes, and the two generic
// handlers wire them to verbs:
//
//   - Collection[T]: GET (list) and POST (create) on the collection endpoint
//   - Item[T]: GET, PUT, PATCH, DELETE on the item endpoint
//
// # Contract
//
// Status codes: 200 read/update, 201 create, 202 accepted (async, no body),
// 204 delete (no body), 400 validation failure. The 400 body is an RFC 9457
// problem whose errors member is the flattened field-to-messages map
// produced by the mapper. Not-found and persistence failures are mapped
// centrally to 404/409/500 problems; verb logic never branches on them.
//
// Request envelopes for POST are a single JSON object or an ordered
// sequence; sequences create all-or-nothing through BulkWriter, and a
// store without atomic bulk saves rejects them. Responses wrap payloads
// in {"data": ...} envelopes with optional _links.
//
// Handlers are stateless: every request operates on request-scoped values
// only, and all store calls take the request context.
package rest
