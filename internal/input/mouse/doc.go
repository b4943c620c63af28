// Package mouse translates backend mouse events into sketch actions.
//
// The mapping preserves canvas-sketching conventions: a single primary-button
// click places a vertex, a double click finishes the polygon (the second
// click's implied vertex is suppressed because the tracker reports it as
// click-count 2, which maps to finish instead of add), and any higher click
// count maps to nothing. Pointer motion continuously updates the cursor
// position.
package mouse
