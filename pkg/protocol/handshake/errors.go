// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"errors"

	"github.com/pion/tlsauth/pkg/protocol"
)

// Typed errors.
var (
	//nolint:err113
	errBufferTooSmall = &protocol.FatalError{Err: errors.New("buffer is too small")}
	//nolint:err113
	errLengthMismatch = &protocol.FatalError{Err: errors.New("data length and declared length do not match")}
	//nolint:err113
	errInvalidSignHashAlgorithm = &protocol.FatalError{Err: errors.New("invalid signature/hash algorithm pair")}
	//nolint:err113
	errInvalidEllipticCurveType = &protocol.FatalError{Err: errors.New("invalid or unknown elliptic curve type")}
	//nolint:err113
	errInvalidNamedCurve = &protocol.FatalError{Err: errors.New("invalid named curve")}
	//nolint:err113
	errInvalidDHParams = &protocol.FatalError{Err: errors.New("DH parameters must not be empty")}
	//nolint:err113
	errInvalidKeyExchange = &protocol.FatalError{Err: errors.New("server key exchange carries no or both DH and ECDH parameters")}
	//nolint:err113
	errInvalidPublicKey = &protocol.FatalError{Err: errors.New("ECDH public key is not a point on the named curve")}
	//nolint:err113
	errPublicKeyTooLong = &protocol.FatalError{Err: errors.New("ECDH public key must not be longer then 255 bytes")}
)
