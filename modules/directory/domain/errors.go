package directory

import "github.com/go-faster/errors"

var (
	ErrLocationNotFound   = errors.New("location not found")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrRoleNotFound       = errors.New("role not found")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrAssignmentNotFound = errors.New("assignment not found")
)
