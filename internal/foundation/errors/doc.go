// Package errors provides the classified error primitives shared by sitecfg.
//
// A ClassifiedError carries a category, a severity and structured context.
// Categories drive presentation: the CLI adapter maps them to exit codes and
// the HTTP adapter to status codes.
//
//	err := errors.ValidationError("link is not a well-formed URL").
//		WithContext("path", "nav[2].items[0]").
//		Build()
package errors
