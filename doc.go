// Package looptab provides an infinite scroll tab view for terminal UIs:
// a tab strip and a page surface that scroll without bound in either
// direction over a finite set of contents, kept mutually in sync, with an
// animated selection indicator.
//
// Allowed here:
// - index math, scroll position bookkeeping, tab/page synchronization
// - rendering of the strip, indicator and page window
//
// Not allowed here:
// - application state, persistence, or anything that talks to the outside
//   world; hosts embed Model in their own bubbletea program
package looptab
