// Package internalcheck holds static policy tests for the clamav bindings.
//
// The tests load the module's packages with golang.org/x/tools/go/packages
// and fail when native access leaks outside its designated places. The
// package has no API and should not be imported.
package internalcheck
