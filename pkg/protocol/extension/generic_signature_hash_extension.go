// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package extension

import (
	"crypto/tls"

	"github.com/pion/tlsauth/pkg/crypto/signaturehash"
	"golang.org/x/crypto/cryptobyte"
)

// marshalGenericSignatureHashAlgorithm encodes a list of (hash, signature)
// pairs, one byte each, under the given extension type.
func marshalGenericSignatureHashAlgorithm(typeValue TypeValue, sigHashAlgs []signaturehash.Algorithm) ([]byte, error) {
	var builder cryptobyte.Builder
	builder.AddUint16(uint16(typeValue))
	builder.AddUint16LengthPrefixed(func(extBuilder *cryptobyte.Builder) {
		extBuilder.AddUint16LengthPrefixed(func(algBuilder *cryptobyte.Builder) {
			for i := range sigHashAlgs {
				algBuilder.AddBytes(sigHashAlgs[i].Marshal())
			}
		})
	})

	return builder.Bytes()
}

// unmarshalGenericSignatureHashAlgorithm appends every recognised pair to dst.
// Unknown hash or signature identifiers are skipped.
func unmarshalGenericSignatureHashAlgorithm(typeValue TypeValue, data []byte, dst *[]signaturehash.Algorithm) error {
	val := cryptobyte.String(data)
	var extension uint16
	if !val.ReadUint16(&extension) || TypeValue(extension) != typeValue {
		return errInvalidExtensionType
	}

	var extData cryptobyte.String
	if !val.ReadUint16LengthPrefixed(&extData) {
		return errBufferTooSmall
	}

	var algData cryptobyte.String
	if !extData.ReadUint16LengthPrefixed(&algData) || !extData.Empty() {
		return errLengthMismatch
	}

	for !algData.Empty() {
		var scheme uint16
		if !algData.ReadUint16(&scheme) {
			return errLengthMismatch
		}

		var alg signaturehash.Algorithm
		if err := alg.Unmarshal(tls.SignatureScheme(scheme)); err == nil {
			*dst = append(*dst, alg)
		}
	}

	return nil
}
