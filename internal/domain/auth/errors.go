package auth

import "errors"

var ErrInvalidCredentials = errors.New("Invalid email or password")
