package remote

import (
	"errors"
	"net"

	apperrors "shopsync/pkg/errors"
)

// ErrorKind is the user-facing classification of a remote failure.
type ErrorKind string

const (
	ErrorKindNetwork ErrorKind = "network"
	ErrorKindAuth    ErrorKind = "auth"
	ErrorKindOther   ErrorKind = "other"
)

// ClassifyError buckets a remote error for user messaging. Classification
// lives at this boundary so the engine itself never inspects transport
// details.
func ClassifyError(err error) ErrorKind {
	if err == nil {
		return ErrorKindOther
	}

	switch apperrors.GetErrorCode(err) {
	case apperrors.ErrCodeAuthenticationFailed:
		return ErrorKindAuth
	case apperrors.ErrCodeConnectionFailed, apperrors.ErrCodeNetworkUnavailable:
		return ErrorKindNetwork
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return ErrorKindNetwork
	}

	return ErrorKindOther
}
