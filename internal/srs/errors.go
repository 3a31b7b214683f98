package srs

import "errors"

// ErrInvalidArgument は呼び出し側の引数が不正なときに返されます。
var ErrInvalidArgument = errors.New("srs: invalid argument")
