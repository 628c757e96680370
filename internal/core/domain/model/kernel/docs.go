// Package kernel provides core domain primitives for the fulfillment system.
// It implements the fundamental building blocks shared by every aggregate in
// the domain model.
//
// The package currently contains a single primitive:
//   - UUID: a value object for unique identifiers with validation and
//     comparison capabilities
//
// Kernel primitives are immutable and thread-safe. They enforce their own
// invariants so that aggregates built on top of them are always in a valid
// state.
package kernel
