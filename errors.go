package amr

import (
	"errors"

	"github.com/jamesainslie/go-amr/docsplit"
	"github.com/jamesainslie/go-amr/linearize"
)

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrCountMismatch indicates the number of sentence annotations differs
	// from the number of graph blocks. The input is malformed and none of
	// its output may be used.
	ErrCountMismatch = linearize.ErrCountMismatch

	// ErrMissingDocID indicates a block appeared before any "# ::id" line
	// while splitting a file by document.
	ErrMissingDocID = docsplit.ErrMissingDocID

	// ErrInputNotFound indicates the input file does not exist.
	ErrInputNotFound = errors.New("amr: input file not found")
)
