// Package builder generates reproducible synthetic road-like graphs for
// exercising the shortest-path search: nodes scattered over a planar extent,
// random arcs between them, and arc weights derived from node geometry.
//
// The package offers the following key components:
//
//   - RandomGraph(nodes, arcs, opts...):
//     – places every node uniformly inside an orb.Bound;
//     – draws arcs with a uniformly random tail and head (self-loops and
//     repeats allowed, a repeat overwrites the weight);
//     – weighs each arc with a WeightFn of the two endpoint points.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, name scheme, weight function and extent.
//   - Node name schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//     – HexIDFn:           lowercase hexadecimal ("0","a","ff",…).
//     – SymbolNumberIDFn:  prefix + decimal ("v0","v1",…).
//   - Arc weight policies (WeightFn implementations):
//     – DistanceWeightFn:  stretch × planar distance (default stretch 1.2).
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[min,max).
//
// Guarantees:
//
//   - Determinism: the same seed and options produce the same node names,
//     positions, arcs and weights, in the same order.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - RandomGraph itself never panics; it returns sentinel errors wrapped with
//     method context.
package builder
