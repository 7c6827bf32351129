// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"github.com/pion/tlsauth/pkg/crypto/elliptic"
	"golang.org/x/crypto/cryptobyte"
)

// ServerDHParams are the ephemeral Diffie-Hellman parameters of a
// ServerKeyExchange. Values are big-endian unsigned integers kept exactly
// as they appear on the wire.
//
// https://tools.ietf.org/html/rfc5246#section-7.4.3
type ServerDHParams struct {
	P         []byte
	G         []byte
	PublicKey []byte
}

// Marshal encodes the parameters.
func (p *ServerDHParams) Marshal() ([]byte, error) {
	var builder cryptobyte.Builder
	p.marshalTo(&builder)

	return builder.Bytes()
}

// Unmarshal populates the parameters from encoded data.
func (p *ServerDHParams) Unmarshal(data []byte) error {
	val := cryptobyte.String(data)
	if err := p.unmarshalFrom(&val); err != nil {
		return err
	}
	if !val.Empty() {
		return errLengthMismatch
	}

	return nil
}

func (p *ServerDHParams) marshalTo(builder *cryptobyte.Builder) {
	if len(p.P) == 0 || len(p.G) == 0 || len(p.PublicKey) == 0 {
		builder.SetError(errInvalidDHParams)

		return
	}
	for _, v := range [][]byte{p.P, p.G, p.PublicKey} {
		v := v
		builder.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
			b.AddBytes(v)
		})
	}
}

func (p *ServerDHParams) unmarshalFrom(val *cryptobyte.String) error {
	var prime, generator, publicKey cryptobyte.String
	if !val.ReadUint16LengthPrefixed(&prime) ||
		!val.ReadUint16LengthPrefixed(&generator) ||
		!val.ReadUint16LengthPrefixed(&publicKey) {
		return errBufferTooSmall
	}
	if prime.Empty() || generator.Empty() || publicKey.Empty() {
		return errInvalidDHParams
	}

	p.P = append([]byte{}, prime...)
	p.G = append([]byte{}, generator...)
	p.PublicKey = append([]byte{}, publicKey...)

	return nil
}

// ServerECDHParams are the ephemeral ECDH parameters of a
// ServerKeyExchange, restricted to named curves.
//
// https://tools.ietf.org/html/rfc8422#section-5.4
type ServerECDHParams struct {
	Curve     elliptic.Curve
	PublicKey []byte
}

// Marshal encodes the parameters.
func (p *ServerECDHParams) Marshal() ([]byte, error) {
	var builder cryptobyte.Builder
	p.marshalTo(&builder)

	return builder.Bytes()
}

// Unmarshal populates the parameters from encoded data.
func (p *ServerECDHParams) Unmarshal(data []byte) error {
	val := cryptobyte.String(data)
	if err := p.unmarshalFrom(&val); err != nil {
		return err
	}
	if !val.Empty() {
		return errLengthMismatch
	}

	return nil
}

func (p *ServerECDHParams) marshalTo(builder *cryptobyte.Builder) {
	if len(p.PublicKey) > 255 {
		builder.SetError(errPublicKeyTooLong)

		return
	}

	builder.AddUint8(uint8(elliptic.CurveTypeNamedCurve))
	builder.AddUint16(uint16(p.Curve))
	builder.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(p.PublicKey)
	})
}

func (p *ServerECDHParams) unmarshalFrom(val *cryptobyte.String) error {
	var curveType uint8
	if !val.ReadUint8(&curveType) {
		return errBufferTooSmall
	}
	if elliptic.CurveType(curveType) != elliptic.CurveTypeNamedCurve {
		return errInvalidEllipticCurveType
	}

	var curve uint16
	if !val.ReadUint16(&curve) {
		return errBufferTooSmall
	}
	if _, ok := elliptic.Curves()[elliptic.Curve(curve)]; !ok {
		return errInvalidNamedCurve
	}

	var publicKey cryptobyte.String
	if !val.ReadUint8LengthPrefixed(&publicKey) || publicKey.Empty() {
		return errBufferTooSmall
	}
	if err := elliptic.Curve(curve).ValidatePublicKey(publicKey); err != nil {
		return errInvalidPublicKey
	}

	p.Curve = elliptic.Curve(curve)
	p.PublicKey = append([]byte{}, publicKey...)

	return nil
}
