// Package errors provides the classified error primitives shared by docsite packages.
//
// A ClassifiedError carries a category, a severity, a retry strategy and free-form
// context. Categories drive presentation: the HTTP adapter maps them to status
// codes and the CLI adapter maps them to exit codes.
//
// Example usage:
//
//	err := errors.NotFoundError("documentation page not found").
//		WithContext("slug", slug).
//		WithCause(fs.ErrNotExist).
//		Build()
package errors
