package storage

import "errors"

var (
	ErrEventNotFound = errors.New("event not found")
	ErrGuestNotFound = errors.New("guest not found")
)
