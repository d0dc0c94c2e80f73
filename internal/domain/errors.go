package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRootNotFound = errors.New("root folder not found or not a directory")

	ErrNoMetadata        = errors.New("no JSON metadata file found in folder")
	ErrAmbiguousMetadata = errors.New("multiple JSON metadata files found in folder")
)

const (
	StoreRecord = "record store"
	StoreBlob   = "blob store"
)

type StoreError struct {
	Store     string
	Op        string
	Retryable bool
	Err       error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Store, e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func IsRetryable(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr) && storeErr.Retryable
}
