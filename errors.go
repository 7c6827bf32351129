// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package tlsauth

import (
	"errors"
	"fmt"

	"github.com/pion/tlsauth/pkg/crypto/sigparams"
	"github.com/pion/tlsauth/pkg/protocol"
)

// Typed errors. Operations return them wrapped in a *protocol.InternalError.
var (
	ErrMissingMasterSecret = sigparams.ErrMissingMasterSecret
	ErrMissingClientRandom = errors.New("client random is not established")
	ErrMissingServerRandom = errors.New("server random is not established")
	ErrInvalidRandomLength = errors.New("handshake random has an invalid length")
	ErrMissingAlgorithm    = errors.New("negotiated signature algorithm is required at this version")
	ErrUnexpectedAlgorithm = errors.New("negotiated signature algorithm is not allowed at this version")
	ErrInsecureHash        = errors.New("negotiated hash algorithm is insecure")
	ErrUnsupportedVersion  = sigparams.ErrUnsupportedVersion

	errNilProvider        = errors.New("crypto provider must not be nil")
	errNilLoggerFactory   = errors.New("logger factory must not be nil")
	errNilState           = errors.New("handshake state must not be nil")
	errNilDigitallySigned = errors.New("signature must not be nil")
	errNilParams          = errors.New("key exchange parameters must not be nil")
)

// internalError wraps err into a *protocol.InternalError unless it already
// carries a typed protocol error.
func internalError(err error, format string, args ...interface{}) error {
	var (
		internalErr *protocol.InternalError
		fatalErr    *protocol.FatalError
	)
	if errors.As(err, &internalErr) || errors.As(err, &fatalErr) {
		return err
	}

	return &protocol.InternalError{Err: fmt.Errorf("%w: "+format, append([]interface{}{err}, args...)...)}
}
