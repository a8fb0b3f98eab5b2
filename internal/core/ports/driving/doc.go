// Package driving provides interfaces for user-facing adapters
// (primary/inbound ports): the pipeline runner, the retrieval source, and
// the chat client consumed by the CLI and MCP surfaces.
package driving
