// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"github.com/pion/tlsauth/pkg/protocol"
)

// MessageCertificateVerify provide explicit verification of a
// client certificate. Version selects whether Unmarshal expects the
// hash/signature pair.
//
// https://tools.ietf.org/html/rfc5246#section-7.4.8
type MessageCertificateVerify struct {
	Version protocol.Version
	DigitallySigned
}

// Type returns the Handshake Type.
func (m MessageCertificateVerify) Type() Type {
	return TypeCertificateVerify
}

// Marshal encodes the Handshake.
func (m *MessageCertificateVerify) Marshal() ([]byte, error) {
	return m.DigitallySigned.Marshal()
}

// Unmarshal populates the message from encoded data.
func (m *MessageCertificateVerify) Unmarshal(data []byte) error {
	return m.DigitallySigned.Unmarshal(data, m.Version)
}
