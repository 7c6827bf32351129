// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"crypto/tls"

	"github.com/pion/tlsauth/pkg/crypto/signaturehash"
	"github.com/pion/tlsauth/pkg/protocol"
	"golang.org/x/crypto/cryptobyte"
)

// DigitallySigned is a signature optionally preceded by the hash/signature
// pair that produced it. The pair is present iff the negotiated version is
// TLS 1.2 or later.
//
// https://tools.ietf.org/html/rfc5246#section-4.7
type DigitallySigned struct {
	Algorithm *signaturehash.Algorithm
	Signature []byte
}

// Marshal encodes the DigitallySigned element.
func (d *DigitallySigned) Marshal() ([]byte, error) {
	var builder cryptobyte.Builder
	d.marshalTo(&builder)

	return builder.Bytes()
}

// Unmarshal populates the element from encoded data sent at version.
func (d *DigitallySigned) Unmarshal(data []byte, version protocol.Version) error {
	val := cryptobyte.String(data)
	if err := d.unmarshalFrom(&val, version); err != nil {
		return err
	}
	if !val.Empty() {
		return errLengthMismatch
	}

	return nil
}

func (d *DigitallySigned) marshalTo(builder *cryptobyte.Builder) {
	if d.Algorithm != nil {
		builder.AddBytes(d.Algorithm.Marshal())
	}
	builder.AddUint16LengthPrefixed(func(sigBuilder *cryptobyte.Builder) {
		sigBuilder.AddBytes(d.Signature)
	})
}

func (d *DigitallySigned) unmarshalFrom(val *cryptobyte.String, version protocol.Version) error {
	d.Algorithm = nil
	if version.HasSignatureAlgorithms() {
		var scheme uint16
		if !val.ReadUint16(&scheme) {
			return errBufferTooSmall
		}

		alg := &signaturehash.Algorithm{}
		if err := alg.Unmarshal(tls.SignatureScheme(scheme)); err != nil {
			return errInvalidSignHashAlgorithm
		}
		d.Algorithm = alg
	}

	var sig cryptobyte.String
	if !val.ReadUint16LengthPrefixed(&sig) {
		return errBufferTooSmall
	}
	d.Signature = append([]byte{}, sig...)

	return nil
}
