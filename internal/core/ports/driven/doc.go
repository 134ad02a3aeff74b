// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Catalog: Lists the resources eligible for indexing
//   - TextExtractor: Extracts plain text from a resource file
//
// # Optional Interfaces
//
// These can be nil - the engine degrades gracefully:
//
//   - IndexCache: Persists a built index across sessions. Without it,
//     every session rebuilds from scratch (slower, still correct).
//   - RemoteRanker: Semantic search service. Without it (or when it
//     fails), the local keyword scorer answers every query.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or extractor package
package driven
