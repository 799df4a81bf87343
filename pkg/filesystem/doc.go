// Package filesystem provides filesystem implementations for xfiles.
//
// This package defines the FS interface the selection store persists
// through, with an OS-backed implementation and an afero adapter used for
// in-memory filesystems in tests.
package filesystem
