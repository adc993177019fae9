package rpc

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/securelogin/internal/accounts"
	"github.com/dmitrijs2005/securelogin/internal/common"
)

type reason struct {
	name string
	err  error
	code codes.Code
}

// reasons pairs every account sentinel with its wire name and status code.
var reasons = []reason{
	{"USERNAME_TAKEN", accounts.ErrUsernameTaken, codes.AlreadyExists},
	{"INVALID_USERNAME", accounts.ErrInvalidUsername, codes.InvalidArgument},
	{"WEAK_PASSWORD", accounts.ErrWeakPassword, codes.InvalidArgument},
	{"PASSWORD_MISMATCH", accounts.ErrPasswordMismatch, codes.InvalidArgument},
	{"INVALID_CREDENTIALS", accounts.ErrInvalidCredentials, codes.Unauthenticated},
	{"USER_NOT_FOUND", accounts.ErrUserNotFound, codes.NotFound},
}

func lookup(err error) (reason, bool) {
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r, true
		}
	}
	return reason{}, false
}

// Reasons returns the wire names of every account error wrapped in err.
func Reasons(err error) []string {
	var out []string
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			out = append(out, r.name)
		}
	}
	return out
}

// ErrorFromReasons rebuilds the account errors named by reasons. Unknown
// names are kept as plain errors.
func ErrorFromReasons(names []string) error {
	errs := make([]error, 0, len(names))
	for _, name := range names {
		errs = append(errs, errorFromReason(name))
	}
	return errors.Join(errs...)
}

func errorFromReason(name string) error {
	for _, r := range reasons {
		if r.name == name {
			return r.err
		}
	}
	return fmt.Errorf("rpc: unknown failure %q", name)
}

// ToStatus converts a service error into a gRPC status error. Account errors
// keep their code and carry an ErrorInfo detail; anything else becomes
// Internal without leaking the cause.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	if r, ok := lookup(err); ok {
		st := status.New(r.code, r.err.Error())
		if withInfo, derr := st.WithDetails(&errdetails.ErrorInfo{Reason: r.name, Domain: ServiceName}); derr == nil {
			st = withInfo
		}
		return st.Err()
	}

	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}

// FromStatus converts a status error received by a client back into the
// account sentinel it was built from, or into a common error for transport
// conditions.
func FromStatus(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == ServiceName {
			return errorFromReason(info.GetReason())
		}
	}

	switch st.Code() {
	case codes.Unavailable:
		return fmt.Errorf("%w: %s", common.ErrUnavailable, st.Message())
	case codes.ResourceExhausted:
		return common.ErrRateLimited
	case codes.Internal:
		return common.ErrorInternal
	}
	return err
}
