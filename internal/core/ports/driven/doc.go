// Package driven provides interfaces for infrastructure adapters
// (secondary/outbound ports): the remote catalog, the search index, the
// document store, and the completion and embedding backends.
package driven
