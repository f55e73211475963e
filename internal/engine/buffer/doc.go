// Package buffer provides a line-based text buffer with a caret,
// overwrite behavior, and virtual-space support. It is the reference
// host surface the editing engine operates against.
package buffer
