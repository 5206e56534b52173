package board

import "errors"

// ErrInvalidConfiguration is wrapped by New when dimensions or mine count are out of range
var ErrInvalidConfiguration = errors.New("invalid board configuration")
