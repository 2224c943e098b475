// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdfdoc provides uniform open/append/save/close handles over PDF
// files, hiding the underlying object model from the batch engines.
// Implements: prd003-document-handles; docs/ARCHITECTURE § Document Handles.
//
// Every handle is owned by the engine invocation that created it and must be
// closed by the end of that invocation. Close is idempotent on both handle
// kinds. The contract orders releases: an engine closes its outputs before
// the sources they were assembled from.
package pdfdoc

// Document is an open, read-only source PDF.
type Document interface {
	// Path returns the file the document was opened from.
	Path() string

	// PageCount returns the number of pages.
	PageCount() int

	// Close releases the document. Safe to call more than once.
	Close() error
}

// Output is a writable document accumulator. Pages are appended one at a
// time; the append order is the final page order of the saved file.
type Output interface {
	// Append copies the 0-based page of src onto the end of the output.
	Append(src Document, pageIndex int) error

	// Truncate drops every appended page past the first n, undoing a
	// partial contribution after a failed append sequence. Truncating to
	// the current length or beyond is a no-op.
	Truncate(n int) error

	// Save serializes the accumulated pages to a new file at path,
	// creating missing parent directories first.
	Save(path string) error

	// Close releases the output. Safe to call more than once, including
	// after a failed Save.
	Close() error
}

// Library opens sources and creates outputs. The batch engines depend on
// this interface; tests substitute an instrumented implementation to verify
// that no handle outlives its batch call.
type Library interface {
	Open(path string) (Document, error)
	NewOutput() Output
}
