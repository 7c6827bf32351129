// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package signer

import "errors"

// Typed errors.
var (
	ErrNoPrivateKey         = errors.New("no private key configured for role")
	ErrInvalidPrivateKey    = errors.New("invalid private key type")
	ErrInvalidPublicKey     = errors.New("invalid public key type")
	ErrKeyAlgorithmMismatch = errors.New("signature algorithm does not match the key type")
	ErrInvalidDigestLength  = errors.New("pre-hashed data has an unexpected length")
	ErrUnsupportedSignature = errors.New("unsupported signature algorithm")
	ErrNoCertificate        = errors.New("no certificate provided")
)
