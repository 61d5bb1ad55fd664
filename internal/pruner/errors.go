// Where: internal/pruner/errors.go
// What: Typed errors for the pruning run plus AWS error classification.
// Why: Callers branch on error category (fatal vs. skip) rather than on SDK strings.
package pruner

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// AuthenticationError reports credentials the platform rejected. It aborts
// the run: every later call would fail the same way.
type AuthenticationError struct {
	Op    string
	Cause error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("%s: authentication failed: %v", e.Op, e.Cause)
}

func (e *AuthenticationError) Unwrap() error { return e.Cause }

// AuthorizationError reports an operation the caller's IAM policy denies.
// The credentials themselves are valid, so the run recovers where a fallback
// exists instead of aborting.
type AuthorizationError struct {
	Op    string
	Cause error
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("%s: not authorized: %v", e.Op, e.Cause)
}

func (e *AuthorizationError) Unwrap() error { return e.Cause }

// TransientServiceError reports a throttle, timeout, or service fault. The
// run surfaces it instead of retrying; rerunning the tool is the retry.
type TransientServiceError struct {
	Op    string
	Cause error
}

func (e *TransientServiceError) Error() string {
	return fmt.Sprintf("%s: service unavailable: %v", e.Op, e.Cause)
}

func (e *TransientServiceError) Unwrap() error { return e.Cause }

// FunctionNotFoundError reports a function that disappeared between listing
// and enumeration. The run skips the function and continues.
type FunctionNotFoundError struct {
	FunctionName string
	Cause        error
}

func (e *FunctionNotFoundError) Error() string {
	return fmt.Sprintf("function %q not found", e.FunctionName)
}

func (e *FunctionNotFoundError) Unwrap() error { return e.Cause }

// DeletionError reports a single version deletion that failed. The run
// records it and moves on to the next candidate.
type DeletionError struct {
	FunctionName string
	Qualifier    string
	Cause        error
}

func (e *DeletionError) Error() string {
	return fmt.Sprintf("could not delete %s version %s: %v", e.FunctionName, e.Qualifier, e.Cause)
}

func (e *DeletionError) Unwrap() error { return e.Cause }

// credentialErrorCodes are the API error codes AWS services return for
// missing, invalid, or expired credentials. Every call fails the same way,
// so the run aborts.
var credentialErrorCodes = map[string]struct{}{
	"AuthFailure":                 {},
	"ExpiredToken":                {},
	"ExpiredTokenException":       {},
	"IncompleteSignature":         {},
	"InvalidClientTokenId":        {},
	"InvalidSignatureException":   {},
	"MissingAuthenticationToken":  {},
	"SignatureDoesNotMatch":       {},
	"UnrecognizedClientException": {},
}

// deniedErrorCodes are the codes for a valid caller whose policy denies one
// operation. Calls to other services can still succeed.
var deniedErrorCodes = map[string]struct{}{
	"AccessDenied":          {},
	"AccessDeniedException": {},
	"UnauthorizedOperation": {},
}

// classify wraps an SDK error by its API error code: credential codes become
// an AuthenticationError, policy denials an AuthorizationError, everything
// else a TransientServiceError. Callers that care about missing resources
// must check for those first.
func classify(op string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		if _, ok := credentialErrorCodes[code]; ok {
			return &AuthenticationError{Op: op, Cause: err}
		}
		if _, ok := deniedErrorCodes[code]; ok {
			return &AuthorizationError{Op: op, Cause: err}
		}
	}
	return &TransientServiceError{Op: op, Cause: err}
}
