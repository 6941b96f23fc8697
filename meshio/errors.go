package meshio

import "errors"

// Sentinel errors returned while parsing a mesh file.
var (
	// ErrMissingHeader indicates the file's first line does not contain the
	// expected mesh type keyword.
	ErrMissingHeader = errors.New("meshio: mesh type information not found")

	// ErrUnexpectedKeyword indicates a block's keyword did not match what was
	// expected at that point in the file.
	ErrUnexpectedKeyword = errors.New("meshio: unexpected keyword")

	// ErrTruncated indicates the file ended before all declared entries were
	// read.
	ErrTruncated = errors.New("meshio: file truncated")

	// ErrMalformedNumber indicates a token that was expected to parse as a
	// number did not.
	ErrMalformedNumber = errors.New("meshio: malformed number")
)
