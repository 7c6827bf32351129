// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package signature provides our implemented Signature Algorithms
package signature

import "fmt"

// Algorithm as defined in TLS 1.2
// https://www.iana.org/assignments/tls-parameters/tls-parameters.xhtml#tls-parameters-16
type Algorithm uint16

// SignatureAlgorithm enums.
const (
	Anonymous Algorithm = 0
	RSA       Algorithm = 1
	DSA       Algorithm = 2
	ECDSA     Algorithm = 3
)

// Algorithms returns all implemented Signature Algorithms.
func Algorithms() map[Algorithm]struct{} {
	return map[Algorithm]struct{}{
		Anonymous: {},
		RSA:       {},
		DSA:       {},
		ECDSA:     {},
	}
}

// Families returns the signature algorithms that identify a key type
// able to produce a signature.
func Families() []Algorithm {
	return []Algorithm{RSA, DSA, ECDSA}
}

func (a Algorithm) String() string {
	switch a {
	case Anonymous:
		return "anonymous"
	case RSA:
		return "rsa"
	case DSA:
		return "dsa"
	case ECDSA:
		return "ecdsa"
	default:
		return fmt.Sprintf("unknown(%d)", uint16(a))
	}
}
