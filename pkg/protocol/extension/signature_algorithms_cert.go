// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package extension

import (
	"github.com/pion/tlsauth/pkg/crypto/signaturehash"
)

// SignatureAlgorithmsCert lists the pairs a peer accepts in certificate
// signatures. When absent, SupportedSignatureAlgorithms applies to
// certificates as well. The wire layout is the same as that extension.
//
// https://tools.ietf.org/html/rfc8446#section-4.2.3
type SignatureAlgorithmsCert struct {
	SignatureHashAlgorithms []signaturehash.Algorithm
}

// TypeValue returns the extension TypeValue.
func (s SignatureAlgorithmsCert) TypeValue() TypeValue {
	return SignatureAlgorithmsCertTypeValue
}

// Marshal encodes the extension.
func (s *SignatureAlgorithmsCert) Marshal() ([]byte, error) {
	return marshalGenericSignatureHashAlgorithm(SignatureAlgorithmsCertTypeValue, s.SignatureHashAlgorithms)
}

// Unmarshal populates the extension from encoded data. Unknown pairs are
// dropped.
func (s *SignatureAlgorithmsCert) Unmarshal(data []byte) error {
	s.SignatureHashAlgorithms = []signaturehash.Algorithm{}

	return unmarshalGenericSignatureHashAlgorithm(SignatureAlgorithmsCertTypeValue, data, &s.SignatureHashAlgorithms)
}
