package convertrpc

import (
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"xdao.co/elbonian/elbonian"
)

const errorDomain = "elbonian.xdao.co"

// toStatus maps a numeral error onto a gRPC status. Malformed input is
// InvalidArgument, out of range input is OutOfRange. The rule ID, kind and
// offending symbol travel as an ErrorInfo detail.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	var e *elbonian.Error
	if !errors.As(err, &e) {
		return status.Error(codes.Internal, err.Error())
	}

	code := codes.Internal
	switch e.Kind {
	case elbonian.KindMalformed:
		code = codes.InvalidArgument
	case elbonian.KindBounds:
		code = codes.OutOfRange
	}
	st := status.New(code, e.Message)
	info := &errdetails.ErrorInfo{
		Reason:   e.RuleID,
		Domain:   errorDomain,
		Metadata: map[string]string{"kind": string(e.Kind)},
	}
	if e.Symbol != 0 {
		info.Metadata["symbol"] = string(e.Symbol)
	}
	if detailed, derr := st.WithDetails(info); derr == nil {
		st = detailed
	}
	return st.Err()
}

// mapRPC turns a status produced by toStatus back into an *elbonian.Error.
// Other failures (transport, deadlines) are returned unchanged.
func mapRPC(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	var kind elbonian.Kind
	switch st.Code() {
	case codes.InvalidArgument:
		kind = elbonian.KindMalformed
	case codes.OutOfRange:
		kind = elbonian.KindBounds
	default:
		return err
	}

	out := &elbonian.Error{Kind: kind, Message: st.Message()}
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != errorDomain {
			continue
		}
		out.RuleID = info.GetReason()
		if sym := info.GetMetadata()["symbol"]; len(sym) == 1 {
			out.Symbol = sym[0]
		}
	}
	return out
}
