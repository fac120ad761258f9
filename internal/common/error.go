// Package common defines shared constants and sentinel errors used across
// client and server layers of shopkeeper. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Account errors.
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Cart errors.
	ErrEmptyCart = errors.New("cart is empty, cannot place an order")

	// Validation errors.
	ErrInvalidArgument = errors.New("invalid argument")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// ErrStorage matches every *StorageError via errors.Is.
	ErrStorage = errors.New("storage failure")
)

// StorageError reports a failed store operation of a service component.
// The underlying driver error stays reachable through Unwrap.
type StorageError struct {
	Component string
	Op        string
	Err       error
}

func NewStorageError(component, op string, err error) *StorageError {
	return &StorageError{Component: component, Op: op, Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: failed to %s: %v", e.Component, e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool { return target == ErrStorage }
