package store

import "errors"

// 存储层错误类型，返回的错误均包装其中之一，可用 errors.Is 判断
var (
	ErrDuplicateTab   = errors.New("tab already exists")
	ErrUnknownTab     = errors.New("unknown tab")
	ErrRecordNotFound = errors.New("record not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrIO             = errors.New("io failure")
)
