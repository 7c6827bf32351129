// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package handshake provides the TLS wire structures carrying handshake signatures
package handshake

// Type is the unique identifier for each handshake message
// https://tools.ietf.org/html/rfc5246#section-7.4
type Type uint8

// Types of handshake messages carrying a signature.
const (
	TypeServerKeyExchange Type = 12
	TypeCertificateVerify Type = 15
)

// Message is the body of a Handshake datagram.
type Message interface {
	Marshal() ([]byte, error)
	Unmarshal(data []byte) error

	Type() Type
}

// String returns the string representation of this type.
func (t Type) String() string {
	switch t {
	case TypeServerKeyExchange:
		return "ServerKeyExchange"
	case TypeCertificateVerify:
		return "CertificateVerify"
	}

	return ""
}
