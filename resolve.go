package openapiv3

import (
	"strings"

	"github.com/jeroenvervaeke/openapiv3/oaserrors"
)

// DefaultMaxDepth is the default maximum number of hops followed along a
// reference chain. Chains longer than this fail resolution; see
// WithMaxDepth to adjust the budget per call.
const DefaultMaxDepth = 32

// componentsRoot is the only top-level section the pointer scheme reaches
// into. The first pointer segment is matched against it before category
// dispatch, so sibling sections can be added later without changing the
// lower levels.
const componentsRoot = "components"

// Category binds an entity type T to its literal segment in a component
// pointer and to the matching map inside Components. The nine fixed
// descriptors (SchemaCategory, ResponseCategory, ...) are the only valid
// values.
type Category[T any] struct {
	segment string
	maps    func(*Components) map[string]*ReferenceOr[T]
}

// Segment returns the pointer segment literal bound to this category,
// e.g. "schemas".
func (c Category[T]) Segment() string {
	return c.segment
}

// ResolveOption configures a single resolution call.
type ResolveOption func(*resolveConfig)

type resolveConfig struct {
	maxDepth int
	logger   Logger
}

// WithMaxDepth sets the maximum number of reference hops followed before
// resolution fails with a resource limit error. Values below 1 are ignored.
func WithMaxDepth(depth int) ResolveOption {
	return func(cfg *resolveConfig) {
		if depth > 0 {
			cfg.maxDepth = depth
		}
	}
}

// WithResolveLogger attaches a logger for per-hop debug traces.
func WithResolveLogger(logger Logger) ResolveOption {
	return func(cfg *resolveConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

func newResolveConfig(opts []ResolveOption) resolveConfig {
	cfg := resolveConfig{
		maxDepth: DefaultMaxDepth,
		logger:   NopLogger{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Resolve returns the item a reference node denotes, or nil if it cannot
// be resolved. Inline nodes return their item directly without consulting
// doc (doc may be nil in that case); pointer nodes are dispatched through
// doc's Components, following chains of references until an inline item
// is reached.
//
// Every failure mode (nil node, malformed pointer, unknown category,
// missing name, dangling or cyclic chain) yields nil. Use ResolveStrict
// to tell cycles and exhausted hop budgets apart from plain absence.
func Resolve[T any](doc *Document, cat Category[T], node *ReferenceOr[T], opts ...ResolveOption) *T {
	item, _ := ResolveStrict(doc, cat, node, opts...)
	return item
}

// ResolveRef resolves a pointer string of the form
// "#/components/<category>/<name>" against doc, or returns nil if it
// cannot be resolved. The failure semantics match Resolve.
func ResolveRef[T any](doc *Document, cat Category[T], ref string, opts ...ResolveOption) *T {
	item, _ := ResolveRefStrict(doc, cat, ref, opts...)
	return item
}

// ResolveStrict behaves like Resolve but reports cycles and exhausted hop
// budgets as errors: a *oaserrors.ReferenceError with IsCircular set, or a
// *oaserrors.ResourceLimitError. A (nil, nil) return means the reference
// simply does not resolve.
func ResolveStrict[T any](doc *Document, cat Category[T], node *ReferenceOr[T], opts ...ResolveOption) (*T, error) {
	if node == nil {
		return nil, nil
	}
	if node.Value != nil {
		return node.Value, nil
	}
	if node.Ref == "" {
		return nil, nil
	}
	return ResolveRefStrict(doc, cat, node.Ref, opts...)
}

// ResolveRefStrict behaves like ResolveRef with the error semantics of
// ResolveStrict.
func ResolveRefStrict[T any](doc *Document, cat Category[T], ref string, opts ...ResolveOption) (*T, error) {
	cfg := newResolveConfig(opts)
	return resolveRef(doc, cat, ref, &cfg, make(map[string]struct{}), 0)
}

// resolveRef walks one pointer string and recurses along the chain it
// starts. seen holds every pointer already visited on this chain; meeting
// one again is a cycle.
func resolveRef[T any](doc *Document, cat Category[T], ref string, cfg *resolveConfig, seen map[string]struct{}, depth int) (*T, error) {
	if depth >= cfg.maxDepth {
		return nil, &oaserrors.ResourceLimitError{
			ResourceType: "ref_depth",
			Limit:        int64(cfg.maxDepth),
			Actual:       int64(depth + 1),
			Message:      "reference chain too long",
		}
	}
	if _, ok := seen[ref]; ok {
		return nil, &oaserrors.ReferenceError{Ref: ref, IsCircular: true}
	}
	seen[ref] = struct{}{}

	cfg.logger.Debug("resolving reference", "ref", ref, "category", cat.Segment(), "depth", depth)

	rest, ok := strings.CutPrefix(ref, "#/")
	if !ok {
		return nil, nil
	}
	root, rest, ok := strings.Cut(rest, "/")
	if !ok || root != componentsRoot {
		return nil, nil
	}
	if doc == nil || doc.Components == nil {
		return nil, nil
	}
	segment, name, ok := strings.Cut(rest, "/")
	if !ok || segment != cat.segment {
		return nil, nil
	}

	// The whole remaining tail is the component name, verbatim: names may
	// contain '/', and no sub-path descent into the resolved item happens.
	node, ok := cat.maps(doc.Components)[name]
	if !ok || node == nil {
		return nil, nil
	}
	if node.Value != nil {
		return node.Value, nil
	}
	if node.Ref == "" {
		return nil, nil
	}
	return resolveRef(doc, cat, node.Ref, cfg, seen, depth+1)
}
