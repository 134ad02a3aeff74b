// Package driving defines the interfaces through which hosts drive the
// knowledge engine.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI adapter (and any future HTTP surface) consumes these; core
// services implement them.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driving
