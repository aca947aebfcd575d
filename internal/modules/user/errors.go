package user

import "errors"

var (
	ErrInvalidUsername = errors.New("invalid username")
	ErrUsernameTaken   = errors.New("username already taken")
	ErrNotFound        = errors.New("user not found")
)
