package openapiv3

// Components holds the reusable objects of a document, one map per
// category. Entries are reference nodes, so a component may itself point
// at another component of the same category.
type Components struct {
	Schemas         map[string]*ReferenceOr[Schema]         `yaml:"schemas,omitempty" json:"schemas,omitempty"`
	Responses       map[string]*ReferenceOr[Response]       `yaml:"responses,omitempty" json:"responses,omitempty"`
	Parameters      map[string]*ReferenceOr[Parameter]      `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Examples        map[string]*ReferenceOr[Example]        `yaml:"examples,omitempty" json:"examples,omitempty"`
	RequestBodies   map[string]*ReferenceOr[RequestBody]    `yaml:"requestBodies,omitempty" json:"requestBodies,omitempty"`
	Headers         map[string]*ReferenceOr[Header]         `yaml:"headers,omitempty" json:"headers,omitempty"`
	SecuritySchemes map[string]*ReferenceOr[SecurityScheme] `yaml:"securitySchemes,omitempty" json:"securitySchemes,omitempty"`
	Links           map[string]*ReferenceOr[Link]           `yaml:"links,omitempty" json:"links,omitempty"`
	Callbacks       map[string]*ReferenceOr[Callback]       `yaml:"callbacks,omitempty" json:"callbacks,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}
