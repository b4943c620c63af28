// Package script runs startup Lua scripts against the drawing pipeline.
//
// A script sees a single global table, sketch, whose functions dispatch the
// same actions the mouse and keyboard produce, so scripted vertices are
// undoable like any others:
//
//	sketch.add_point(10, 5)
//	sketch.add_point(20, 5)
//	sketch.add_point(20, 10)
//	sketch.finish()
//
// The Lua state is sandboxed: file and code loading globals are removed.
package script
