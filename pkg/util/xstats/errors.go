package xstats

import "errors"

// ErrInvalidSize 表示 Registry 容量不是正数。
var ErrInvalidSize = errors.New("xstats: registry size must be positive")
