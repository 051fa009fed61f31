package search

import "errors"

var ErrPageOutOfRange = errors.New("page out of range")
