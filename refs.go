package openapiv3

import (
	"fmt"
	"sort"

	"github.com/jeroenvervaeke/openapiv3/oaserrors"
)

// Ref records one pointer-variant reference node found in a document.
type Ref struct {
	// Location is the dotted path to the node holding the reference,
	// e.g. "paths./pets.get.responses.200".
	Location string
	// Target is the pointer string, e.g. "#/components/responses/NotFound".
	Target string
}

// CollectRefs walks the document and returns every reference node that is
// a pointer rather than an inline item, sorted by location. Inline content
// is descended into; pointers are recorded but not followed.
func CollectRefs(doc *Document) []Ref {
	w := &refWalker{doc: doc}
	w.walkDocument()
	sort.Slice(w.refs, func(i, j int) bool {
		if w.refs[i].Location != w.refs[j].Location {
			return w.refs[i].Location < w.refs[j].Location
		}
		return w.refs[i].Target < w.refs[j].Target
	})
	return w.refs
}

// VerifyRefs walks the document and resolves every component reference it
// finds, returning one error per reference that fails: dangling targets
// yield a *oaserrors.ReferenceError, cyclic chains one with IsCircular
// set. A nil return means every reference resolves.
//
// Path item references (a $ref directly under paths) are outside the
// component pointer scheme and are not verified.
func VerifyRefs(doc *Document) []error {
	w := &refWalker{doc: doc, verify: true}
	w.walkDocument()
	sort.Slice(w.errs, func(i, j int) bool {
		return w.errs[i].Error() < w.errs[j].Error()
	})
	return w.errs
}

// refWalker accumulates reference records (and, when verify is set,
// resolution failures) during a single pass over a document.
type refWalker struct {
	doc    *Document
	verify bool
	refs   []Ref
	errs   []error
	// seenSchemas guards against hand-built documents that alias the same
	// inline schema into itself.
	seenSchemas map[*Schema]struct{}
}

// record notes a pointer node without verifying it.
func (w *refWalker) record(loc, target string) {
	w.refs = append(w.refs, Ref{Location: loc, Target: target})
}

// walkNode handles one reference node: pointers are recorded (and
// verified against the node's category when enabled), inline items are
// handed to visit for further descent.
func walkNode[T any](w *refWalker, loc string, cat Category[T], node *ReferenceOr[T], visit func(string, *T)) {
	if node == nil {
		return
	}
	if node.Ref != "" {
		w.record(loc, node.Ref)
		if w.verify {
			item, err := ResolveRefStrict(w.doc, cat, node.Ref)
			switch {
			case err != nil:
				w.errs = append(w.errs, err)
			case item == nil:
				w.errs = append(w.errs, &oaserrors.ReferenceError{
					Ref:     node.Ref,
					Message: "not found (referenced at " + loc + ")",
				})
			}
		}
		return
	}
	if visit != nil && node.Value != nil {
		visit(loc, node.Value)
	}
}

func (w *refWalker) walkDocument() {
	if w.doc == nil {
		return
	}
	for path, node := range w.doc.Paths {
		if node == nil {
			continue
		}
		loc := "paths." + path
		if node.Ref != "" {
			// Path item refs live outside the component pointer scheme.
			w.record(loc, node.Ref)
			continue
		}
		w.walkPathItem(loc, node.Value)
	}
	w.walkComponents()
}

func (w *refWalker) walkComponents() {
	c := w.doc.Components
	if c == nil {
		return
	}
	for name, node := range c.Schemas {
		walkNode(w, "components.schemas."+name, SchemaCategory, node, w.walkSchema)
	}
	for name, node := range c.Responses {
		walkNode(w, "components.responses."+name, ResponseCategory, node, w.walkResponse)
	}
	for name, node := range c.Parameters {
		walkNode(w, "components.parameters."+name, ParameterCategory, node, w.walkParameter)
	}
	for name, node := range c.Examples {
		walkNode(w, "components.examples."+name, ExampleCategory, node, nil)
	}
	for name, node := range c.RequestBodies {
		walkNode(w, "components.requestBodies."+name, RequestBodyCategory, node, w.walkRequestBody)
	}
	for name, node := range c.Headers {
		walkNode(w, "components.headers."+name, HeaderCategory, node, w.walkHeader)
	}
	for name, node := range c.SecuritySchemes {
		walkNode(w, "components.securitySchemes."+name, SecuritySchemeCategory, node, nil)
	}
	for name, node := range c.Links {
		walkNode(w, "components.links."+name, LinkCategory, node, nil)
	}
	for name, node := range c.Callbacks {
		walkNode(w, "components.callbacks."+name, CallbackCategory, node, w.walkCallback)
	}
}

func (w *refWalker) walkPathItem(loc string, item *PathItem) {
	if item == nil {
		return
	}
	for i, node := range item.Parameters {
		walkNode(w, fmt.Sprintf("%s.parameters.%d", loc, i), ParameterCategory, node, w.walkParameter)
	}
	for method, op := range item.Operations() {
		w.walkOperation(loc+"."+method, op)
	}
}

func (w *refWalker) walkOperation(loc string, op *Operation) {
	for i, node := range op.Parameters {
		walkNode(w, fmt.Sprintf("%s.parameters.%d", loc, i), ParameterCategory, node, w.walkParameter)
	}
	walkNode(w, loc+".requestBody", RequestBodyCategory, op.RequestBody, w.walkRequestBody)
	if op.Responses != nil {
		walkNode(w, loc+".responses.default", ResponseCategory, op.Responses.Default, w.walkResponse)
		for code, node := range op.Responses.Codes {
			walkNode(w, loc+".responses."+code, ResponseCategory, node, w.walkResponse)
		}
	}
	for name, node := range op.Callbacks {
		walkNode(w, loc+".callbacks."+name, CallbackCategory, node, w.walkCallback)
	}
}

func (w *refWalker) walkCallback(loc string, cb *Callback) {
	for expr, item := range *cb {
		w.walkPathItem(loc+"."+expr, item)
	}
}

func (w *refWalker) walkResponse(loc string, resp *Response) {
	for name, node := range resp.Headers {
		walkNode(w, loc+".headers."+name, HeaderCategory, node, w.walkHeader)
	}
	for mediaType, mt := range resp.Content {
		w.walkMediaType(loc+".content."+mediaType, mt)
	}
	for name, node := range resp.Links {
		walkNode(w, loc+".links."+name, LinkCategory, node, nil)
	}
}

func (w *refWalker) walkMediaType(loc string, mt *MediaType) {
	if mt == nil {
		return
	}
	walkNode(w, loc+".schema", SchemaCategory, mt.Schema, w.walkSchema)
	for name, node := range mt.Examples {
		walkNode(w, loc+".examples."+name, ExampleCategory, node, nil)
	}
	for name, enc := range mt.Encoding {
		if enc == nil {
			continue
		}
		for header, node := range enc.Headers {
			walkNode(w, loc+".encoding."+name+".headers."+header, HeaderCategory, node, w.walkHeader)
		}
	}
}

func (w *refWalker) walkParameter(loc string, param *Parameter) {
	walkNode(w, loc+".schema", SchemaCategory, param.Schema, w.walkSchema)
	for name, node := range param.Examples {
		walkNode(w, loc+".examples."+name, ExampleCategory, node, nil)
	}
	for mediaType, mt := range param.Content {
		w.walkMediaType(loc+".content."+mediaType, mt)
	}
}

func (w *refWalker) walkHeader(loc string, header *Header) {
	walkNode(w, loc+".schema", SchemaCategory, header.Schema, w.walkSchema)
	for name, node := range header.Examples {
		walkNode(w, loc+".examples."+name, ExampleCategory, node, nil)
	}
	for mediaType, mt := range header.Content {
		w.walkMediaType(loc+".content."+mediaType, mt)
	}
}

func (w *refWalker) walkRequestBody(loc string, body *RequestBody) {
	for mediaType, mt := range body.Content {
		w.walkMediaType(loc+".content."+mediaType, mt)
	}
}

func (w *refWalker) walkSchema(loc string, schema *Schema) {
	if w.seenSchemas == nil {
		w.seenSchemas = make(map[*Schema]struct{})
	}
	if _, ok := w.seenSchemas[schema]; ok {
		return
	}
	w.seenSchemas[schema] = struct{}{}
	for name, node := range schema.Properties {
		walkNode(w, loc+".properties."+name, SchemaCategory, node, w.walkSchema)
	}
	walkNode(w, loc+".items", SchemaCategory, schema.Items, w.walkSchema)
	for i, node := range schema.AllOf {
		walkNode(w, fmt.Sprintf("%s.allOf.%d", loc, i), SchemaCategory, node, w.walkSchema)
	}
	for i, node := range schema.AnyOf {
		walkNode(w, fmt.Sprintf("%s.anyOf.%d", loc, i), SchemaCategory, node, w.walkSchema)
	}
	for i, node := range schema.OneOf {
		walkNode(w, fmt.Sprintf("%s.oneOf.%d", loc, i), SchemaCategory, node, w.walkSchema)
	}
	walkNode(w, loc+".not", SchemaCategory, schema.Not, w.walkSchema)
}
