// Package openapiv3 provides an in-memory data model for OpenAPI 3.0.x
// documents and a resolver for the component references they contain.
//
// Every place the OpenAPI specification allows a $ref, the model uses a
// [ReferenceOr] node: either an inline item or a pointer string of the form
// "#/components/<category>/<name>". The resolver follows such pointers
// through the document's [Components] container, transparently chasing
// chains of references until it reaches an inline item.
//
// # Quick Start
//
// Load a document and resolve a schema reference:
//
//	doc, err := openapiv3.Load(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//	schema := openapiv3.ResolveRef(doc, openapiv3.SchemaCategory, "#/components/schemas/Pet")
//	if schema == nil {
//		log.Fatal("schema not found")
//	}
//
// Or resolve a reference node held somewhere in the document:
//
//	mt := response.Content["application/json"]
//	schema := doc.ResolveSchema(mt.Schema)
//
// # Resolution Semantics
//
// Resolution is a pure read of the document: it never copies or mutates,
// and the returned pointers stay valid for the lifetime of the document.
// Documents are treated as immutable after loading, so any number of
// resolutions may run concurrently against the same document.
//
// All lookup failures (malformed pointer, unknown category, missing name,
// dangling chain) collapse to a nil result. [Resolve] and [ResolveRef]
// also return nil when a reference chain cycles back on itself or exceeds
// the hop budget; use [ResolveStrict] or [ResolveRefStrict] to distinguish
// those conditions via the
// [github.com/jeroenvervaeke/openapiv3/oaserrors] package:
//
//	schema, err := openapiv3.ResolveRefStrict(doc, openapiv3.SchemaCategory, ref)
//	if errors.Is(err, oaserrors.ErrCircularReference) {
//		// the document contains a reference cycle
//	}
//
// # Pointer Format
//
// Only local component pointers are understood. The category segment must
// be one of the nine literals (callbacks, examples, headers, links,
// parameters, requestBodies, responses, schemas, securitySchemes), matched
// case-sensitively. Everything after the category segment is the component
// name, taken verbatim: "#/components/schemas/a/b" names the schema "a/b",
// it does not descend into a schema named "a". General JSON Pointer
// syntax (RFC 6901 escaping, arbitrary depth) is not supported.
package openapiv3
