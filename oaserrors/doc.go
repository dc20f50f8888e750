// Package oaserrors provides structured error types for the openapiv3 library.
//
// Import path: github.com/jeroenvervaeke/openapiv3/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors and implement
// appropriate recovery strategies.
//
// # Error Types
//
// The package provides three core error types:
//
//   - [ParseError]: YAML/JSON parsing failures and structural issues
//   - [ReferenceError]: reference resolution failures, including circular chains
//   - [ResourceLimitError]: resource exhaustion (reference depth, file size)
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrReference]: Matches any [ReferenceError]
//   - [ErrCircularReference]: Matches [ReferenceError] with IsCircular=true
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	doc, err := openapiv3.LoadFile("api.yaml")
//	if errors.Is(err, oaserrors.ErrParse) {
//	    // Handle parse error
//	}
//
// Extract error details with errors.As():
//
//	var refErr *oaserrors.ReferenceError
//	if errors.As(err, &refErr) {
//	    fmt.Printf("Failed to resolve ref: %s\n", refErr.Ref)
//	    if refErr.IsCircular {
//	        // Handle circular reference specifically
//	    }
//	}
//
// # Error Chaining
//
// Error types with a Cause field support error chaining via Unwrap(),
// so root causes can be found through the standard error chain.
package oaserrors
