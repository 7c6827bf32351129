// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sigparams

import (
	"errors"
	"fmt"

	"github.com/pion/tlsauth/pkg/protocol"
)

// Typed errors.
var (
	ErrIncompatibleSignature = errors.New("negotiated signature algorithm is incompatible with the key")
	ErrUnimplementedHash     = errors.New("unimplemented hash algorithm")
	ErrInvalidDSAHash        = errors.New("invalid DSA hash algorithm")
	ErrUnsupportedFamily     = errors.New("unsupported signature algorithm family")
	ErrUnsupportedSSL3Family = errors.New("unsupported CertificateVerify signature for SSL 3.0")
	ErrUnsupportedVersion    = errors.New("unsupported protocol version")
	ErrMissingMasterSecret   = errors.New("master secret is not established")
	ErrNoSignatureScheme     = errors.New("no compatible SignatureScheme offered by the peer")
)

func internalError(err error, format string, args ...interface{}) error {
	return &protocol.InternalError{Err: fmt.Errorf("%w: "+format, append([]interface{}{err}, args...)...)}
}
