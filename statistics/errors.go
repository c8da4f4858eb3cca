package statistics

import "errors"

var ErrUnsupportedStatistic = errors.New("unsupported statistic")
