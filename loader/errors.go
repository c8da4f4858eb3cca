package loader

import "errors"

var (
	ErrDataFormat        = errors.New("invalid trip data")
	ErrMissingColumn     = errors.New("missing column")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidDuration   = errors.New("invalid duration")
	ErrInvalidBirthYear  = errors.New("invalid birth year")
	ErrUnsupportedFormat = errors.New("unsupported source format")
	ErrSourceNotFound    = errors.New("source not configured")
)
