package report

import "errors"

var ErrUnknownReport = errors.New("unknown report")
