package services

import (
	"errors"
	"fmt"
)

// BatchDataError marks an unparseable metric during a ranking run. The run
// fails as a whole; there is no partial success.
type BatchDataError struct {
	CollectionID string
	Field        string
	Err          error
}

func (e *BatchDataError) Error() string {
	return fmt.Sprintf("bad metric data for collection %s field %s: %v", e.CollectionID, e.Field, e.Err)
}

func (e *BatchDataError) Unwrap() error {
	return e.Err
}

func IsBatchDataError(err error) bool {
	var batchErr *BatchDataError
	return errors.As(err, &batchErr)
}
