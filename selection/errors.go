package selection

import "errors"

var ErrAborted = errors.New("selection aborted by the user")
