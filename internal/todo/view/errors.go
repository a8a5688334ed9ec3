package view

import "errors"

var ErrInvalidState = errors.New("invalid filter")
