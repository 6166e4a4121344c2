package rmspectrum

import "errors"

// ErrTableSize indicates a table whose length is not a power of two.
var ErrTableSize = errors.New("rmspectrum: table length must be a power of two")
