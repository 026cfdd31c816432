// Package errtypes defines the error kinds surfaced by qcdn components and
// the single place where they are mapped to gRPC and HTTP status codes.
//
// A kind is a typed string carrying a short human-readable source
// description. Components return kinds directly or wrap them with
// fmt.Errorf("...: %w", err); the transport boundary calls GRPCStatus or
// HTTPStatus exactly once.
package errtypes

import (
	"errors"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NotFound is the error to use when an entity does not exist.
type NotFound string

func (e NotFound) Error() string { return "not found: " + string(e) }

// IsNotFound marks the error as a NotFound.
func (e NotFound) IsNotFound() {}

// Precondition is the error to use when an operation would violate an
// invariant, e.g. creating a version whose name collides with a ready one,
// or hard-deleting a ready version.
type Precondition string

func (e Precondition) Error() string { return "precondition failed: " + string(e) }

// IsPrecondition marks the error as a Precondition.
func (e Precondition) IsPrecondition() {}

// DataCorruption is the error to use when received bytes do not match the
// declared size or hash.
type DataCorruption string

func (e DataCorruption) Error() string { return "data corruption: " + string(e) }

// IsDataCorruption marks the error as a DataCorruption.
func (e DataCorruption) IsDataCorruption() {}

// Aborted is the error to use for client protocol violations, e.g. sending
// upload meta twice.
type Aborted string

func (e Aborted) Error() string { return "aborted: " + string(e) }

// IsAborted marks the error as an Aborted.
func (e Aborted) IsAborted() {}

// Internal is the catch-all for database, I/O and unexpected state errors.
// The description must not leak storage paths or SQL.
type Internal string

func (e Internal) Error() string { return "internal error: " + string(e) }

// IsInternal marks the error as an Internal.
func (e Internal) IsInternal() {}

// Kind check interfaces, implemented by the types above. Checking through
// an interface keeps wrapped errors (errors.As walks the chain).
type (
	isNotFound       interface{ IsNotFound() }
	isPrecondition   interface{ IsPrecondition() }
	isDataCorruption interface{ IsDataCorruption() }
	isAborted        interface{ IsAborted() }
)

// GRPCStatus maps an error to its public gRPC status. nil maps to OK.
func GRPCStatus(err error) *status.Status {
	switch {
	case err == nil:
		return status.New(codes.OK, "")
	case errors.As(err, new(isNotFound)):
		return status.New(codes.NotFound, err.Error())
	case errors.As(err, new(isPrecondition)):
		return status.New(codes.FailedPrecondition, err.Error())
	case errors.As(err, new(isDataCorruption)):
		return status.New(codes.DataLoss, err.Error())
	case errors.As(err, new(isAborted)):
		return status.New(codes.Aborted, err.Error())
	default:
		return status.New(codes.Internal, "internal error")
	}
}

// GRPCError maps an error to one carrying a public gRPC status, or nil.
func GRPCError(err error) error {
	if err == nil {
		return nil
	}

	return GRPCStatus(err).Err()
}

// HTTPStatus maps an error to the HTTP status code of the read path.
// Only NotFound is surfaced distinctly; everything else collapses to 500.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, new(isNotFound)):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
