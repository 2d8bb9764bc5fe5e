// Package engine turns a parsed ZPL command sequence into self-contained,
// absolute-coordinate drawing instructions and drives a rendering backend
// over them.
//
// The instruction builder is a single-pass state machine: modal commands
// (origin, fonts, barcode defaults, colors) accumulate into a private state
// value, and one instruction is emitted per completed field at each ^FS.
// Instructions carry fully resolved values, so backends never consult modal
// state.
package engine
