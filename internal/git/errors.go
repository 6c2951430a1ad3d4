package git

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/transport"
)

// ErrorClass buckets a remote-operation failure for presentation.
type ErrorClass int

const (
	ClassUnknown ErrorClass = iota
	ClassNetwork
	ClassAuthentication
	ClassConflict
	ClassCancelled
)

func (c ErrorClass) String() string {
	switch c {
	case ClassNetwork:
		return "network"
	case ClassAuthentication:
		return "authentication"
	case ClassConflict:
		return "conflict"
	case ClassCancelled:
		return "cancelled"
	}
	return "unknown"
}

// ConflictError reports a non-fast-forward pull with the paths that differ
// between the local and remote heads.
type ConflictError struct {
	Paths []string
}

func (e *ConflictError) Error() string {
	if len(e.Paths) == 0 {
		return "merge conflict"
	}
	return fmt.Sprintf("merge conflict in %s", strings.Join(e.Paths, ", "))
}

// Classify maps an operation error onto its presentation class.
func Classify(err error) ErrorClass {
	if err == nil {
		return ClassUnknown
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return ClassCancelled
	}
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		return ClassConflict
	}
	if errors.Is(err, gogit.ErrNonFastForwardUpdate) {
		return ClassConflict
	}
	if errors.Is(err, transport.ErrAuthenticationRequired) || errors.Is(err, transport.ErrAuthorizationFailed) {
		return ClassAuthentication
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return ClassNetwork
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "context canceled") {
		return ClassCancelled
	}
	for _, marker := range []string{
		"connection refused",
		"connection reset",
		"no such host",
		"network is unreachable",
		"i/o timeout",
		"could not resolve",
		"repository not found",
	} {
		if strings.Contains(msg, marker) {
			return ClassNetwork
		}
	}
	if strings.Contains(msg, "auth") || strings.Contains(msg, "permission denied") {
		return ClassAuthentication
	}
	return ClassUnknown
}

// Explain renders err as a one-line status message for its class.
func Explain(err error) string {
	switch Classify(err) {
	case ClassNetwork:
		return "network error: " + err.Error()
	case ClassAuthentication:
		return "authentication failed: " + err.Error()
	case ClassConflict:
		return err.Error()
	case ClassCancelled:
		return "cancelled"
	}
	return err.Error()
}
