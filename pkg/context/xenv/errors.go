package xenv

import "errors"

var (
	// ErrMissingEnv 表示环境变量未设置。
	ErrMissingEnv = errors.New("xenv: env var not set")

	// ErrEmptyEnv 表示环境变量值为空或纯空白。
	ErrEmptyEnv = errors.New("xenv: env var is empty")

	// ErrInvalidValue 表示环境变量值无法解析为目标类型。
	ErrInvalidValue = errors.New("xenv: invalid env value")
)
