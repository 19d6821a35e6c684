package model

import (
	"errors"
	"fmt"

	"xdao.co/elbonian/elbonian"
)

type ErrorCode string

const (
	ErrInvalidRequest   ErrorCode = "INVALID_REQUEST"
	ErrMalformedNumber  ErrorCode = "MALFORMED_NUMBER"
	ErrValueOutOfBounds ErrorCode = "VALUE_OUT_OF_BOUNDS"
	ErrInternal         ErrorCode = "INTERNAL"
)

// CodedError is a stable error with a machine-readable code and a human message.
//
// RuleID carries the numeral rule that failed, when there is one.
type CodedError struct {
	Code    ErrorCode `json:"code" yaml:"code"`
	RuleID  string    `json:"ruleID,omitempty" yaml:"ruleID,omitempty"`
	Message string    `json:"message" yaml:"message"`
}

func (e *CodedError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewError(code ErrorCode, message string) *CodedError {
	return &CodedError{Code: code, Message: message}
}

// FromError projects err onto the boundary error codes.
func FromError(err error) *CodedError {
	if err == nil {
		return nil
	}
	var ce *CodedError
	if errors.As(err, &ce) {
		return ce
	}
	var e *elbonian.Error
	if !errors.As(err, &e) {
		return NewError(ErrInternal, err.Error())
	}
	out := &CodedError{RuleID: e.RuleID, Message: e.Message}
	switch e.Kind {
	case elbonian.KindMalformed:
		out.Code = ErrMalformedNumber
	case elbonian.KindBounds:
		out.Code = ErrValueOutOfBounds
	default:
		out.Code = ErrInternal
	}
	return out
}
