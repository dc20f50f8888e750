package openapiv3

// Parameter describes a single operation parameter
type Parameter struct {
	Name        string `yaml:"name" json:"name"`
	In          string `yaml:"in" json:"in"` // "query", "header", "path", "cookie"
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool   `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated  bool   `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`

	AllowEmptyValue bool                             `yaml:"allowEmptyValue,omitempty" json:"allowEmptyValue,omitempty"`
	Style           string                           `yaml:"style,omitempty" json:"style,omitempty"`
	Explode         *bool                            `yaml:"explode,omitempty" json:"explode,omitempty"`
	AllowReserved   bool                             `yaml:"allowReserved,omitempty" json:"allowReserved,omitempty"`
	Schema          *ReferenceOr[Schema]             `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example         any                              `yaml:"example,omitempty" json:"example,omitempty"`
	Examples        map[string]*ReferenceOr[Example] `yaml:"examples,omitempty" json:"examples,omitempty"`
	Content         map[string]*MediaType            `yaml:"content,omitempty" json:"content,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// RequestBody describes a single request body
type RequestBody struct {
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
	Required    bool                  `yaml:"required,omitempty" json:"required,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Header represents a header object. Headers follow the structure of
// Parameter with the name and location fixed by their map key.
type Header struct {
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool   `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated  bool   `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`

	AllowEmptyValue bool                             `yaml:"allowEmptyValue,omitempty" json:"allowEmptyValue,omitempty"`
	Style           string                           `yaml:"style,omitempty" json:"style,omitempty"`
	Explode         *bool                            `yaml:"explode,omitempty" json:"explode,omitempty"`
	Schema          *ReferenceOr[Schema]             `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example         any                              `yaml:"example,omitempty" json:"example,omitempty"`
	Examples        map[string]*ReferenceOr[Example] `yaml:"examples,omitempty" json:"examples,omitempty"`
	Content         map[string]*MediaType            `yaml:"content,omitempty" json:"content,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Parameter location constants (used in Parameter.In field)
const (
	// ParamInQuery indicates the parameter is passed in the query string
	ParamInQuery = "query"
	// ParamInHeader indicates the parameter is passed in a request header
	ParamInHeader = "header"
	// ParamInPath indicates the parameter is part of the URL path
	ParamInPath = "path"
	// ParamInCookie indicates the parameter is passed as a cookie
	ParamInCookie = "cookie"
)
