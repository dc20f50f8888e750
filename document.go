package openapiv3

// Document represents an OpenAPI Specification 3.0.x document.
// Reference: https://spec.openapis.org/oas/v3.0.0.html
//
// A Document is the single source of truth for reference resolution: every
// "#/components/..." pointer anywhere in the tree is looked up against its
// Components container. Documents are treated as immutable once built;
// resolution never mutates them.
type Document struct {
	OpenAPI      string                `yaml:"openapi" json:"openapi"` // Required: "3.0.x"
	Info         *Info                 `yaml:"info" json:"info"`       // Required
	Servers      []*Server             `yaml:"servers,omitempty" json:"servers,omitempty"`
	Paths        Paths                 `yaml:"paths" json:"paths"` // Required
	Components   *Components           `yaml:"components,omitempty" json:"components,omitempty"`
	Security     []SecurityRequirement `yaml:"security,omitempty" json:"security,omitempty"`
	Tags         []*Tag                `yaml:"tags,omitempty" json:"tags,omitempty"`
	ExternalDocs *ExternalDocs         `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}
