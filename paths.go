package openapiv3

import (
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v4"
)

// Paths holds the relative paths to the individual endpoints
type Paths map[string]*ReferenceOr[PathItem]

// PathItem describes the operations available on a single path
type PathItem struct {
	Summary     string                    `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string                    `yaml:"description,omitempty" json:"description,omitempty"`
	Get         *Operation                `yaml:"get,omitempty" json:"get,omitempty"`
	Put         *Operation                `yaml:"put,omitempty" json:"put,omitempty"`
	Post        *Operation                `yaml:"post,omitempty" json:"post,omitempty"`
	Delete      *Operation                `yaml:"delete,omitempty" json:"delete,omitempty"`
	Options     *Operation                `yaml:"options,omitempty" json:"options,omitempty"`
	Head        *Operation                `yaml:"head,omitempty" json:"head,omitempty"`
	Patch       *Operation                `yaml:"patch,omitempty" json:"patch,omitempty"`
	Trace       *Operation                `yaml:"trace,omitempty" json:"trace,omitempty"`
	Servers     []*Server                 `yaml:"servers,omitempty" json:"servers,omitempty"`
	Parameters  []*ReferenceOr[Parameter] `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Operations returns the operations defined on the path item, keyed by
// lowercase HTTP method. Methods without an operation are absent.
func (p *PathItem) Operations() map[string]*Operation {
	all := map[string]*Operation{
		"get":     p.Get,
		"put":     p.Put,
		"post":    p.Post,
		"delete":  p.Delete,
		"options": p.Options,
		"head":    p.Head,
		"patch":   p.Patch,
		"trace":   p.Trace,
	}
	ops := make(map[string]*Operation, len(all))
	for method, op := range all {
		if op != nil {
			ops[method] = op
		}
	}
	return ops
}

// Operation describes a single API operation on a path
type Operation struct {
	Tags         []string                          `yaml:"tags,omitempty" json:"tags,omitempty"`
	Summary      string                            `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description  string                            `yaml:"description,omitempty" json:"description,omitempty"`
	ExternalDocs *ExternalDocs                     `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	OperationID  string                            `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Parameters   []*ReferenceOr[Parameter]         `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody  *ReferenceOr[RequestBody]         `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Responses    *Responses                        `yaml:"responses" json:"responses"`
	Callbacks    map[string]*ReferenceOr[Callback] `yaml:"callbacks,omitempty" json:"callbacks,omitempty"`
	Deprecated   bool                              `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Security     []SecurityRequirement             `yaml:"security,omitempty" json:"security,omitempty"`
	Servers      []*Server                         `yaml:"servers,omitempty" json:"servers,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Responses is a container for the expected responses of an operation.
// Codes maps status-code strings (e.g. "200", "4XX") to responses.
type Responses struct {
	Default *ReferenceOr[Response]            `yaml:"default,omitempty" json:"default,omitempty"`
	Codes   map[string]*ReferenceOr[Response] `yaml:"-" json:"-"` // handled by custom marshalers
}

// UnmarshalYAML implements custom unmarshaling for Responses so that the
// "default" key and the status-code keys share one YAML mapping.
func (r *Responses) UnmarshalYAML(unmarshal func(any) error) error {
	var raw map[string]yaml.Node
	if err := unmarshal(&raw); err != nil {
		return err
	}

	r.Codes = make(map[string]*ReferenceOr[Response], len(raw))
	for key, node := range raw {
		var resp ReferenceOr[Response]
		if err := node.Decode(&resp); err != nil {
			return fmt.Errorf("failed to unmarshal response for %q: %w", key, err)
		}
		if key == "default" {
			r.Default = &resp
		} else {
			r.Codes[key] = &resp
		}
	}
	return nil
}

// MarshalYAML flattens Default back into the status-code mapping.
func (r Responses) MarshalYAML() (any, error) {
	out := make(map[string]*ReferenceOr[Response], len(r.Codes)+1)
	for key, resp := range r.Codes {
		out[key] = resp
	}
	if r.Default != nil {
		out["default"] = r.Default
	}
	return out, nil
}

// UnmarshalJSON mirrors UnmarshalYAML for JSON input.
func (r *Responses) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Codes = make(map[string]*ReferenceOr[Response], len(raw))
	for key, msg := range raw {
		var resp ReferenceOr[Response]
		if err := json.Unmarshal(msg, &resp); err != nil {
			return fmt.Errorf("failed to unmarshal response for %q: %w", key, err)
		}
		if key == "default" {
			r.Default = &resp
		} else {
			r.Codes[key] = &resp
		}
	}
	return nil
}

// MarshalJSON mirrors MarshalYAML for JSON output.
func (r Responses) MarshalJSON() ([]byte, error) {
	out := make(map[string]*ReferenceOr[Response], len(r.Codes)+1)
	for key, resp := range r.Codes {
		out[key] = resp
	}
	if r.Default != nil {
		out["default"] = r.Default
	}
	return json.Marshal(out)
}

// Response describes a single response from an API Operation
type Response struct {
	Description string                          `yaml:"description,omitempty" json:"description,omitempty"`
	Headers     map[string]*ReferenceOr[Header] `yaml:"headers,omitempty" json:"headers,omitempty"`
	Content     map[string]*MediaType           `yaml:"content,omitempty" json:"content,omitempty"`
	Links       map[string]*ReferenceOr[Link]   `yaml:"links,omitempty" json:"links,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Callback is a map of runtime expressions to path items
type Callback map[string]*PathItem

// Link represents a possible design-time link for a response
type Link struct {
	OperationRef string         `yaml:"operationRef,omitempty" json:"operationRef,omitempty"`
	OperationID  string         `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Parameters   map[string]any `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody  any            `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Description  string         `yaml:"description,omitempty" json:"description,omitempty"`
	Server       *Server        `yaml:"server,omitempty" json:"server,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// MediaType provides schema and examples for the media type
type MediaType struct {
	Schema   *ReferenceOr[Schema]             `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example  any                              `yaml:"example,omitempty" json:"example,omitempty"`
	Examples map[string]*ReferenceOr[Example] `yaml:"examples,omitempty" json:"examples,omitempty"`
	Encoding map[string]*Encoding             `yaml:"encoding,omitempty" json:"encoding,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Example represents an example object
type Example struct {
	Summary       string `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description   string `yaml:"description,omitempty" json:"description,omitempty"`
	Value         any    `yaml:"value,omitempty" json:"value,omitempty"`
	ExternalValue string `yaml:"externalValue,omitempty" json:"externalValue,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Encoding defines encoding for a specific property
type Encoding struct {
	ContentType   string                          `yaml:"contentType,omitempty" json:"contentType,omitempty"`
	Headers       map[string]*ReferenceOr[Header] `yaml:"headers,omitempty" json:"headers,omitempty"`
	Style         string                          `yaml:"style,omitempty" json:"style,omitempty"`
	Explode       *bool                           `yaml:"explode,omitempty" json:"explode,omitempty"`
	AllowReserved bool                            `yaml:"allowReserved,omitempty" json:"allowReserved,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}
