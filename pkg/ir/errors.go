package ir

import "errors"

var (
	// ErrNoData indicates no received byte is available.
	ErrNoData = errors.New("no data")
	// ErrNoEdgeSource indicates the receiver has nothing to listen on.
	ErrNoEdgeSource = errors.New("no edge source")
)
