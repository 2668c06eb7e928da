// Package core defines the shared infrastructure of the connection-string
// pipelines.
//
// This package contains:
//   - The Error type constructed by both dialects' lexers and parsers
//   - The Location counter attached to every token
//
// The Golden Rule: pkg/core imports ONLY stdlib. The ado and jdbc dialects
// depend on core, not on each other; beyond this package they share only a
// design pattern.
package core
