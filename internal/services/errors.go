package services

import (
	"errors"
	"fmt"

	"catalog/internal/repositories"
)

// Error kinds surfaced by the services. Use errors.Is to tell them apart.
var (
	// ErrNotFound is returned when a referenced store or product does not exist.
	ErrNotFound = errors.New("not found")
	// ErrPreconditionFailed is returned when a structural or relational invariant is violated.
	ErrPreconditionFailed = errors.New("precondition failed")
)

// Messages carried by BusinessError.
const (
	MsgStoreNotFound       = "the store with the given id was not found"
	MsgProductNotFound     = "the product with the given id was not found"
	MsgStoreNotAssociated  = "store not associated with product"
	MsgInvalidCityCodeSize = "the city must be a three character code, e.g. BOG"
)

// BusinessError is a rule violation raised by a service. It unwraps to its Kind.
type BusinessError struct {
	Kind    error
	Entity  string // "store" or "product"
	Message string
}

func (e *BusinessError) Error() string {
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Kind
}

func storeNotFound() error {
	return &BusinessError{Kind: ErrNotFound, Entity: "store", Message: MsgStoreNotFound}
}

func productNotFound() error {
	return &BusinessError{Kind: ErrNotFound, Entity: "product", Message: MsgProductNotFound}
}

func storeNotAssociated() error {
	return &BusinessError{Kind: ErrPreconditionFailed, Entity: "store", Message: MsgStoreNotAssociated}
}

func invalidCityCode() error {
	return &BusinessError{Kind: ErrPreconditionFailed, Entity: "store", Message: MsgInvalidCityCodeSize}
}

// translate maps a repository lookup error to a BusinessError when the record is missing.
func translate(err error, notFound func() error, what string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return notFound()
	}
	return fmt.Errorf("failed to load %s: %w", what, err)
}
