package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDestination = errors.New("invalid export destination")
	ErrInvalidProjectID   = errors.New("invalid project id")
)

// DatasetError reports a dataset that could not be extracted. It ends the
// extraction.
type DatasetError struct {
	DatasetID string
	Err       error
}

func (e *DatasetError) Error() string {
	return fmt.Sprintf("dataset %s: %v", e.DatasetID, e.Err)
}

func (e *DatasetError) Unwrap() error {
	return e.Err
}
