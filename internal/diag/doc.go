// Package diag defines the core diagnostic model shared by all pipeline phases.
//
// Diagnostic is the central record: severity, a stable numeric code, a message,
// the primary source span, and optional notes pointing at related spans.
//
// Phases emit diagnostics through the Reporter interface so they stay decoupled
// from storage and formatting. BagReporter aggregates into a Bag, which supports
// sorting and deduplication for deterministic output. Rendering lives in
// internal/diagfmt; this package performs no formatting or IO.
//
// The collect-all policy is load-bearing: lexer, parser, and resolver keep
// reporting and recovering instead of aborting, so a single run yields the full
// diagnostic picture. A stage's success is defined as "its bag holds no errors".
package diag
