// Package widgets contains dumb render primitives used by page builders.
//
// Allowed here:
// - stateless drawing/composition helpers (pane chrome, stacks)
//
// Not allowed here:
// - key handling, scroll state, index math, or tab policy
package widgets
