package errtypes

import (
	"fmt"
	"net/http"
	"testing"

	"google.golang.org/grpc/codes"
)

func TestGRPCStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"nil", nil, codes.OK},
		{"not found", NotFound("dir"), codes.NotFound},
		{"precondition", Precondition("version exists"), codes.FailedPrecondition},
		{"data corruption", DataCorruption("hash mismatch"), codes.DataLoss},
		{"aborted", Aborted("meta twice"), codes.Aborted},
		{"internal", Internal("db down"), codes.Internal},
		{"plain error", fmt.Errorf("something broke"), codes.Internal},
		{"wrapped not found", fmt.Errorf("resolving: %w", NotFound("file")), codes.NotFound},
		{"wrapped precondition", fmt.Errorf("a: %w", fmt.Errorf("b: %w", Precondition("x"))), codes.FailedPrecondition},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := GRPCStatus(tc.err).Code(); got != tc.want {
				t.Errorf("GRPCStatus(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestGRPCError_NilStaysNil(t *testing.T) {
	t.Parallel()

	if err := GRPCError(nil); err != nil {
		t.Errorf("GRPCError(nil) = %v", err)
	}
}

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"not found", NotFound("version"), http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("read path: %w", NotFound("x")), http.StatusNotFound},
		{"precondition collapses", Precondition("x"), http.StatusInternalServerError},
		{"plain error", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := HTTPStatus(tc.err); got != tc.want {
				t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}

func TestInternal_DoesNotLeakDetail(t *testing.T) {
	t.Parallel()

	// Unknown errors map to a generic message, not their own text.
	st := GRPCStatus(fmt.Errorf("SELECT * FROM secret"))

	if st.Message() != "internal error" {
		t.Errorf("internal status message = %q", st.Message())
	}
}
