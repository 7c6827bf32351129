// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"github.com/pion/tlsauth/pkg/protocol"
	"golang.org/x/crypto/cryptobyte"
)

// KeyExchangeAlgorithm selects which parameters a ServerKeyExchange carries.
type KeyExchangeAlgorithm uint8

// KeyExchangeAlgorithm enums.
const (
	KeyExchangeDHE KeyExchangeAlgorithm = iota + 1
	KeyExchangeECDHE
)

// MessageServerKeyExchange supports ephemeral DH and ECDH key exchange
// signed by the server certificate key. KeyExchange and Version must be
// set before calling Unmarshal.
//
// https://tools.ietf.org/html/rfc5246#section-7.4.3
type MessageServerKeyExchange struct {
	Version     protocol.Version
	KeyExchange KeyExchangeAlgorithm

	DHParams   *ServerDHParams
	ECDHParams *ServerECDHParams
	Signed     DigitallySigned
}

// Type returns the Handshake Type.
func (m MessageServerKeyExchange) Type() Type {
	return TypeServerKeyExchange
}

// Marshal encodes the Handshake.
func (m *MessageServerKeyExchange) Marshal() ([]byte, error) {
	var builder cryptobyte.Builder

	switch {
	case m.DHParams != nil && m.ECDHParams == nil:
		m.DHParams.marshalTo(&builder)
	case m.ECDHParams != nil && m.DHParams == nil:
		m.ECDHParams.marshalTo(&builder)
	default:
		return nil, errInvalidKeyExchange
	}
	m.Signed.marshalTo(&builder)

	return builder.Bytes()
}

// Unmarshal populates the message from encoded data.
func (m *MessageServerKeyExchange) Unmarshal(data []byte) error {
	val := cryptobyte.String(data)

	m.DHParams, m.ECDHParams = nil, nil
	switch m.KeyExchange {
	case KeyExchangeDHE:
		m.DHParams = &ServerDHParams{}
		if err := m.DHParams.unmarshalFrom(&val); err != nil {
			return err
		}
	case KeyExchangeECDHE:
		m.ECDHParams = &ServerECDHParams{}
		if err := m.ECDHParams.unmarshalFrom(&val); err != nil {
			return err
		}
	default:
		return errInvalidKeyExchange
	}

	if err := m.Signed.unmarshalFrom(&val, m.Version); err != nil {
		return err
	}
	if !val.Empty() {
		return errLengthMismatch
	}

	return nil
}
