package clinic

import "errors"

var ErrNotFound = errors.New("clinic not found")
