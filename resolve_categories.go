package openapiv3

// The nine component categories, one descriptor per entity type. Each
// binds the exact pointer segment literal to the matching Components map.
var (
	// CallbackCategory resolves "#/components/callbacks/<name>" pointers.
	CallbackCategory = Category[Callback]{"callbacks", func(c *Components) map[string]*ReferenceOr[Callback] { return c.Callbacks }}
	// ExampleCategory resolves "#/components/examples/<name>" pointers.
	ExampleCategory = Category[Example]{"examples", func(c *Components) map[string]*ReferenceOr[Example] { return c.Examples }}
	// HeaderCategory resolves "#/components/headers/<name>" pointers.
	HeaderCategory = Category[Header]{"headers", func(c *Components) map[string]*ReferenceOr[Header] { return c.Headers }}
	// LinkCategory resolves "#/components/links/<name>" pointers.
	LinkCategory = Category[Link]{"links", func(c *Components) map[string]*ReferenceOr[Link] { return c.Links }}
	// ParameterCategory resolves "#/components/parameters/<name>" pointers.
	ParameterCategory = Category[Parameter]{"parameters", func(c *Components) map[string]*ReferenceOr[Parameter] { return c.Parameters }}
	// RequestBodyCategory resolves "#/components/requestBodies/<name>" pointers.
	RequestBodyCategory = Category[RequestBody]{"requestBodies", func(c *Components) map[string]*ReferenceOr[RequestBody] { return c.RequestBodies }}
	// ResponseCategory resolves "#/components/responses/<name>" pointers.
	ResponseCategory = Category[Response]{"responses", func(c *Components) map[string]*ReferenceOr[Response] { return c.Responses }}
	// SchemaCategory resolves "#/components/schemas/<name>" pointers.
	SchemaCategory = Category[Schema]{"schemas", func(c *Components) map[string]*ReferenceOr[Schema] { return c.Schemas }}
	// SecuritySchemeCategory resolves "#/components/securitySchemes/<name>" pointers.
	SecuritySchemeCategory = Category[SecurityScheme]{"securitySchemes", func(c *Components) map[string]*ReferenceOr[SecurityScheme] { return c.SecuritySchemes }}
)

// Per-category convenience wiring. Each pair forwards to the generic
// dispatch with the matching descriptor.

// ResolveCallback resolves a callback reference node against the document.
func (d *Document) ResolveCallback(node *ReferenceOr[Callback], opts ...ResolveOption) *Callback {
	return Resolve(d, CallbackCategory, node, opts...)
}

// ResolveCallbackRef resolves a "#/components/callbacks/<name>" pointer.
func (d *Document) ResolveCallbackRef(ref string, opts ...ResolveOption) *Callback {
	return ResolveRef(d, CallbackCategory, ref, opts...)
}

// ResolveExample resolves an example reference node against the document.
func (d *Document) ResolveExample(node *ReferenceOr[Example], opts ...ResolveOption) *Example {
	return Resolve(d, ExampleCategory, node, opts...)
}

// ResolveExampleRef resolves a "#/components/examples/<name>" pointer.
func (d *Document) ResolveExampleRef(ref string, opts ...ResolveOption) *Example {
	return ResolveRef(d, ExampleCategory, ref, opts...)
}

// ResolveHeader resolves a header reference node against the document.
func (d *Document) ResolveHeader(node *ReferenceOr[Header], opts ...ResolveOption) *Header {
	return Resolve(d, HeaderCategory, node, opts...)
}

// ResolveHeaderRef resolves a "#/components/headers/<name>" pointer.
func (d *Document) ResolveHeaderRef(ref string, opts ...ResolveOption) *Header {
	return ResolveRef(d, HeaderCategory, ref, opts...)
}

// ResolveLink resolves a link reference node against the document.
func (d *Document) ResolveLink(node *ReferenceOr[Link], opts ...ResolveOption) *Link {
	return Resolve(d, LinkCategory, node, opts...)
}

// ResolveLinkRef resolves a "#/components/links/<name>" pointer.
func (d *Document) ResolveLinkRef(ref string, opts ...ResolveOption) *Link {
	return ResolveRef(d, LinkCategory, ref, opts...)
}

// ResolveParameter resolves a parameter reference node against the document.
func (d *Document) ResolveParameter(node *ReferenceOr[Parameter], opts ...ResolveOption) *Parameter {
	return Resolve(d, ParameterCategory, node, opts...)
}

// ResolveParameterRef resolves a "#/components/parameters/<name>" pointer.
func (d *Document) ResolveParameterRef(ref string, opts ...ResolveOption) *Parameter {
	return ResolveRef(d, ParameterCategory, ref, opts...)
}

// ResolveRequestBody resolves a request body reference node against the document.
func (d *Document) ResolveRequestBody(node *ReferenceOr[RequestBody], opts ...ResolveOption) *RequestBody {
	return Resolve(d, RequestBodyCategory, node, opts...)
}

// ResolveRequestBodyRef resolves a "#/components/requestBodies/<name>" pointer.
func (d *Document) ResolveRequestBodyRef(ref string, opts ...ResolveOption) *RequestBody {
	return ResolveRef(d, RequestBodyCategory, ref, opts...)
}

// ResolveResponse resolves a response reference node against the document.
func (d *Document) ResolveResponse(node *ReferenceOr[Response], opts ...ResolveOption) *Response {
	return Resolve(d, ResponseCategory, node, opts...)
}

// ResolveResponseRef resolves a "#/components/responses/<name>" pointer.
func (d *Document) ResolveResponseRef(ref string, opts ...ResolveOption) *Response {
	return ResolveRef(d, ResponseCategory, ref, opts...)
}

// ResolveSchema resolves a schema reference node against the document.
func (d *Document) ResolveSchema(node *ReferenceOr[Schema], opts ...ResolveOption) *Schema {
	return Resolve(d, SchemaCategory, node, opts...)
}

// ResolveSchemaRef resolves a "#/components/schemas/<name>" pointer.
func (d *Document) ResolveSchemaRef(ref string, opts ...ResolveOption) *Schema {
	return ResolveRef(d, SchemaCategory, ref, opts...)
}

// ResolveSecurityScheme resolves a security scheme reference node against the document.
func (d *Document) ResolveSecurityScheme(node *ReferenceOr[SecurityScheme], opts ...ResolveOption) *SecurityScheme {
	return Resolve(d, SecuritySchemeCategory, node, opts...)
}

// ResolveSecuritySchemeRef resolves a "#/components/securitySchemes/<name>" pointer.
func (d *Document) ResolveSecuritySchemeRef(ref string, opts ...ResolveOption) *SecurityScheme {
	return ResolveRef(d, SecuritySchemeCategory, ref, opts...)
}
