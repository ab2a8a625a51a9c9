package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness conflict on insert.
	ErrAlreadyExists = errors.New("already exists")
	// ErrEmptyCart is returned by checkout when the cart is absent or has no items.
	ErrEmptyCart = errors.New("cart not found or is empty")
	// ErrUnauthorized indicates a missing or invalid credential.
	ErrUnauthorized = errors.New("unauthorized")
)

// NotFoundError names the entity and id that could not be resolved.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ValidationError rejects malformed or policy-violating input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// DuplicateError rejects an insert that would violate a uniqueness rule.
type DuplicateError struct {
	Reason string
}

func (e *DuplicateError) Error() string { return e.Reason }

func (e *DuplicateError) Is(target error) bool { return target == ErrAlreadyExists }

// ForbiddenError rejects an authenticated request lacking the required role
// or ownership.
type ForbiddenError struct {
	Reason string
}

func (e *ForbiddenError) Error() string { return e.Reason }

// InsufficientStockError names every product whose stock cannot cover the
// requested quantity, not just the first one encountered.
type InsufficientStockError struct {
	Products []string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("the following products are out of stock or have insufficient stock: %s", strings.Join(e.Products, ", "))
}
