package services

import (
	"errors"
	"sort"
	"strings"
)

// Sentinel errors returned by services and mapped to HTTP statuses by handlers
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidStatus      = errors.New("invalid lesson status")
	ErrInvalidPlan        = errors.New("invalid plan")
	ErrEmptyMessage       = errors.New("empty message")
	ErrEmptyContext       = errors.New("empty context")
	ErrInvalidArgument    = errors.New("invalid argument")
)

// ValidationError carries per-field messages of a rejected form
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}
