// Package domain contains the core business types for the API documentation
// pipeline: catalog records, the canonical API model, rendered documents,
// inclusion filters and search results. It has no dependencies on adapters.
package domain
