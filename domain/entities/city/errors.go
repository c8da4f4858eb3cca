package city

import "errors"

var ErrUnknownCity = errors.New("unknown city")
