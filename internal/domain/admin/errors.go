package admin

import "errors"

var (
	// ErrAdminNotFound is returned when an admin account is not found
	ErrAdminNotFound = errors.New("admin not found")

	// ErrAdminAlreadyExists is returned when the username is taken
	ErrAdminAlreadyExists = errors.New("admin already exists")
)
