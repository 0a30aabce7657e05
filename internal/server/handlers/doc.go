// Package handlers contains HTTP handlers for the coffeedocs admin API.
//
// This package provides handlers for:
//   - Health, readiness and JSON metrics endpoints (monitoring)
//   - The route table and link verification reports (api)
//   - Shared response helper functions
//
// Errors are written through the foundation/errors HTTP adapter and every
// success payload is a type from server/responses.
package handlers
