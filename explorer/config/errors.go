package config

import "errors"

var ErrInvalidConfig = errors.New("invalid explorer config")
