// Package domain defines the core business entities for the Ilmify
// knowledge engine.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A catalogued resource with extracted text
//   - Chunk: A sentence-aligned passage, the atomic unit of search
//   - Index: The immutable collection of chunks plus build metadata
//   - Answer: An extractive answer assembled from ranked chunks
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
