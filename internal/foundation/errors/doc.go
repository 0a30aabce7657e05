// Package errors provides the classified error type used across coffeedocs.
//
// A ClassifiedError carries a category, a severity, a retry strategy and
// structured context. Errors are built through the fluent ErrorBuilder:
//
//	err := errors.NotFoundError("no page for path").
//		WithContext("path", r.URL.Path).
//		Build()
//
// HTTPErrorAdapter maps categories to status codes and JSON payloads;
// CLIErrorAdapter maps them to process exit codes.
package errors
