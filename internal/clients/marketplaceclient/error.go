package marketplaceclient

import (
	"errors"
	"fmt"
)

// MalformedUpstreamResponseError means the marketplace answered 200 but the
// body did not match the expected schema. Unlike a non-200 status this is a
// hard fault and propagates to the caller.
type MalformedUpstreamResponseError struct {
	TokenID string
	Field   string
}

func (e *MalformedUpstreamResponseError) Error() string {
	return fmt.Sprintf("malformed marketplace response for token %s: missing %s", e.TokenID, e.Field)
}

func IsMalformedUpstreamResponseError(err error) bool {
	var malformed *MalformedUpstreamResponseError
	return errors.As(err, &malformed)
}
