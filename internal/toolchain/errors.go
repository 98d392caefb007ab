package toolchain

import "errors"

var ErrCommandFailed = errors.New("toolchain command failed")
