// Package service implements the domain stores: per-resource caches that
// call the backend through the gateway ports and keep the last successful
// response as local state. Every store method sets its loading flag on
// entry, performs exactly one gateway call, and clears the flag on exit
// whether the call succeeded or failed.
package service

// Pagination tracks the client-side list window for a store. Total and
// TotalPages come back from the server; Page and PageSize are what the
// next list request will send.
type Pagination struct {
	Page       int
	PageSize   int
	Total      int
	TotalPages int
}
