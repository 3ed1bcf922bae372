package xrplclient

import (
	"errors"
	"fmt"
)

// LedgerUnavailableError means the XRPL node could not be reached at all.
type LedgerUnavailableError struct {
	Err error
}

func (e *LedgerUnavailableError) Error() string {
	return fmt.Sprintf("ledger unavailable: %v", e.Err)
}

func (e *LedgerUnavailableError) Unwrap() error {
	return e.Err
}

func IsLedgerUnavailableError(err error) bool {
	var unavailable *LedgerUnavailableError
	return errors.As(err, &unavailable)
}

// LedgerQueryError carries the error message reported by the node itself.
type LedgerQueryError struct {
	Message string
}

func (e *LedgerQueryError) Error() string {
	return fmt.Sprintf("failed to retrieve NFTs: %s", e.Message)
}

func IsLedgerQueryError(err error) bool {
	var queryErr *LedgerQueryError
	return errors.As(err, &queryErr)
}

type SigningError struct {
	Err error
}

func (e *SigningError) Error() string {
	return fmt.Sprintf("failed to sign transaction: %v", e.Err)
}

func (e *SigningError) Unwrap() error {
	return e.Err
}

func IsSigningError(err error) bool {
	var signingErr *SigningError
	return errors.As(err, &signingErr)
}

type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("failed to submit transaction: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

func IsSubmissionError(err error) bool {
	var submissionErr *SubmissionError
	return errors.As(err, &submissionErr)
}
