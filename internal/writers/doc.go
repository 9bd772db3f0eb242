// Package writers turns simulation and estimation rows into serialized
// outputs.
//
// Design:
//   - Writers own all presentation knowledge (TSV layout, JSON schemas).
//   - The core packages stay domain-only; apps stay orchestration-only.
//   - JSON goes through pkg/api (v1) for a stable wire format.
package writers
