// Package status carries execution status across RPC boundaries. A Status is
// a code plus an appendable list of error messages; the zero value is OK.
package status

import (
	"fmt"
	"strings"

	"github.com/strideql/stride/pkg/stridepb"
)

type Status struct {
	code stridepb.StatusCode
	msgs []string
}

var ok = Status{}

// OK returns the singleton OK status.
func OK() Status {
	return ok
}

func New(code stridepb.StatusCode, msg string) Status {
	return Status{code: code, msgs: []string{msg}}
}

func Errorf(code stridepb.StatusCode, format string, args ...interface{}) Status {
	return New(code, fmt.Sprintf(format, args...))
}

func Cancelled() Status {
	return Status{code: stridepb.StatusCode_CANCELLED}
}

func InternalErrorf(format string, args ...interface{}) Status {
	return Errorf(stridepb.StatusCode_INTERNAL_ERROR, format, args...)
}

// FromError projects an arbitrary error onto a Status. A nil error maps to
// OK; a Status error passes through unchanged.
func FromError(err error) Status {
	if err == nil {
		return ok
	}
	if s, isStatus := err.(Status); isStatus {
		return s
	}
	return New(stridepb.StatusCode_RUNTIME_ERROR, err.Error())
}

func FromProto(p *stridepb.StatusProto) Status {
	if p == nil {
		return ok
	}
	return Status{code: p.Code, msgs: append([]string(nil), p.ErrorMsgs...)}
}

func (s Status) ToProto() *stridepb.StatusProto {
	return &stridepb.StatusProto{Code: s.code, ErrorMsgs: append([]string(nil), s.msgs...)}
}

func (s Status) IsOK() bool {
	return s.code == stridepb.StatusCode_OK
}

func (s Status) IsCancelled() bool {
	return s.code == stridepb.StatusCode_CANCELLED
}

func (s Status) Code() stridepb.StatusCode {
	return s.code
}

func (s Status) Msgs() []string {
	return s.msgs
}

// Error implements the error interface. Calling it on an OK status is a bug;
// use AsError to convert a possibly-OK status into an error return.
func (s Status) Error() string {
	if len(s.msgs) == 0 {
		return s.code.String()
	}
	return fmt.Sprintf("%s: %s", s.code, strings.Join(s.msgs, "; "))
}

// AsError returns nil for OK and the status itself otherwise.
func (s Status) AsError() error {
	if s.IsOK() {
		return nil
	}
	return s
}

// AddDetail appends one more error message, keeping the code.
func (s *Status) AddDetail(msg string) {
	s.msgs = append(s.msgs, msg)
}

// AddError folds another status's messages into this one. The code never
// changes: the first non-OK status wins.
func (s *Status) AddError(other Status) {
	s.msgs = append(s.msgs, other.msgs...)
}
