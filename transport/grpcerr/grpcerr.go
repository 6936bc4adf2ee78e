// Package grpcerr maps catalog errors onto gRPC statuses.
package grpcerr

import (
	"context"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/next-trace/scg-catalog/catalog"
	apiError "github.com/next-trace/scg-catalog/error"
)

// Domain is the ErrorInfo domain attached to every converted status.
const Domain = "scg-catalog"

var codeTable = map[apiError.Status]codes.Code{
	apiError.StatusBadRequest:            codes.InvalidArgument,
	apiError.StatusUnauthorized:          codes.Unauthenticated,
	apiError.StatusForbidden:             codes.PermissionDenied,
	apiError.StatusNotFound:              codes.NotFound,
	apiError.StatusConflict:              codes.AlreadyExists,
	apiError.StatusGone:                  codes.NotFound,
	apiError.StatusPreconditionFailed:    codes.FailedPrecondition,
	apiError.StatusRequestEntityTooLarge: codes.ResourceExhausted,
	apiError.StatusUnsupportedMediaType:  codes.InvalidArgument,
	apiError.StatusExpectationFailed:     codes.FailedPrecondition,
	apiError.StatusUnprocessableEntity:   codes.InvalidArgument,
	apiError.StatusTooManyRequests:       codes.ResourceExhausted,
	apiError.StatusInternal:              codes.Internal,
	apiError.StatusNotImplemented:        codes.Unimplemented,
	apiError.StatusUnavailable:           codes.Unavailable,
}

// Code returns the gRPC code for s. Unknown statuses map to codes.Unknown.
func Code(s apiError.Status) codes.Code {
	if c, ok := codeTable[s]; ok {
		return c
	}

	return codes.Unknown
}

// ToStatus converts err into a gRPC status carrying the catalog code as ErrorInfo.Reason.
func ToStatus(err error) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}

	e := catalog.Ensure(err)
	st := status.New(Code(e.Status()), e.Title())

	withInfo, dErr := st.WithDetails(&errdetails.ErrorInfo{
		Reason: e.Code(),
		Domain: Domain,
		Metadata: map[string]string{
			"title":  e.Title(),
			"detail": e.Detail(),
		},
	})
	if dErr != nil {
		return st
	}

	return withInfo
}

// FromStatus rebuilds the catalog error carried by st, if any.
func FromStatus(st *status.Status) (*apiError.Error, bool) {
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != Domain {
			continue
		}

		def, ok := catalog.Lookup(info.GetReason())
		if !ok {
			return nil, false
		}

		md := info.GetMetadata()

		return def.New(md["title"], md["detail"]), true
	}

	return nil, false
}

// UnaryServerInterceptor converts handler errors into catalog-backed statuses.
// Errors that already carry a gRPC status pass through untouched.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		if _, ok := apiError.As(err); !ok {
			if _, isStatus := status.FromError(err); isStatus {
				return resp, err
			}
		}

		return resp, ToStatus(err).Err()
	}
}
