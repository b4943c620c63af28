// Package renderer turns drawing state into terminal frames.
//
// Rendering is split in two: BuildScene is a pure function from drawing state
// to a Scene (segments, vertices, toolbar buttons, status line), and Renderer
// rasterizes a Scene onto a backend. The split keeps everything up to the
// final cell writes testable without a terminal.
//
// Polylines are stored newest-first; the scene builder reverses them into
// drawing order. When a polyline is in progress and the pointer position is
// known, a preview segment connects the newest vertex to the pointer.
package renderer
