// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

var (
	// ErrAlreadyExists indicates a unique constraint violation (e.g., username taken).
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidCredentials indicates an authentication failure. The same error is
	// returned for an unknown username and a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrPermissionDenied indicates a mutation attempt by a non-owner.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUploadFailed indicates a transport or host-side media upload failure.
	ErrUploadFailed = errors.New("upload failed")

	// ErrEmptyComment indicates a comment with empty or whitespace-only text.
	ErrEmptyComment = errors.New("comment text is empty")
)
