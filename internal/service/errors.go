package service

import "errors"

var (
	ErrFileTooLarge = errors.New("file exceeds the maximum upload size")
	ErrEmptyMessage = errors.New("message must not be empty")
)
