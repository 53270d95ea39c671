package users

import "errors"

var (
	// ErrUserNotFound indicates a user lookup found no matching record
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyTaken indicates the email belongs to another user
	ErrEmailAlreadyTaken = errors.New("email already taken")
)
