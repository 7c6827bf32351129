// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package signaturehash provides the SignatureHashAlgorithm as defined in TLS 1.2
package signaturehash

import (
	"crypto/tls"
	"fmt"

	"github.com/pion/tlsauth/pkg/crypto/hash"
	"github.com/pion/tlsauth/pkg/crypto/signature"
)

// Algorithm is a signature/hash algorithm pairs which may be used in
// digital signatures.
//
// https://tools.ietf.org/html/rfc5246#section-7.4.1.4.1
type Algorithm struct {
	Hash      hash.Algorithm
	Signature signature.Algorithm
}

// Algorithms are all the known SignatureHash Algorithms, in order of
// preference.
func Algorithms() []Algorithm {
	return []Algorithm{
		{hash.SHA256, signature.ECDSA},
		{hash.SHA384, signature.ECDSA},
		{hash.SHA512, signature.ECDSA},
		{hash.SHA256, signature.RSA},
		{hash.SHA384, signature.RSA},
		{hash.SHA512, signature.RSA},
		{hash.SHA1, signature.ECDSA},
		{hash.SHA1, signature.RSA},
		{hash.SHA1, signature.DSA},
	}
}

// Compatible reports whether a pair negotiated through the
// signature_algorithms extension may be used with a key of the given
// signature family. Only the signature half is considered.
func Compatible(family signature.Algorithm, alg Algorithm) bool {
	switch family {
	case signature.RSA:
		return alg.Signature == signature.RSA
	case signature.DSA:
		return alg.Signature == signature.DSA
	case signature.ECDSA:
		return alg.Signature == signature.ECDSA
	case signature.Anonymous:
		return false
	default:
		return false
	}
}

// Marshal encodes the pair as the 2-byte SignatureAndHashAlgorithm.
func (a *Algorithm) Marshal() []byte {
	return []byte{byte(a.Hash), byte(a.Signature)}
}

// Unmarshal populates the pair from a TLS 1.2 SignatureScheme value,
// hash in the high byte and signature in the low byte.
func (a *Algorithm) Unmarshal(scheme tls.SignatureScheme) error {
	hashAlg := hash.Algorithm(scheme >> 8)
	sigAlg := signature.Algorithm(scheme & 0xFF)

	if _, ok := signature.Algorithms()[sigAlg]; !ok {
		return fmt.Errorf("SignatureScheme %04x: %w", uint16(scheme), errInvalidSignatureAlgorithm)
	}
	if _, ok := hash.Algorithms()[hashAlg]; !ok {
		return fmt.Errorf("SignatureScheme %04x: %w", uint16(scheme), errInvalidHashAlgorithm)
	}

	a.Hash = hashAlg
	a.Signature = sigAlg

	return nil
}

// SignatureScheme returns the pair as a tls.SignatureScheme value.
func (a Algorithm) SignatureScheme() tls.SignatureScheme {
	return tls.SignatureScheme(uint16(a.Hash)<<8 | uint16(a.Signature))
}

func (a Algorithm) String() string {
	return fmt.Sprintf("%s+%s", a.Signature, a.Hash)
}

// ParseSignatureSchemes translates []tls.SignatureScheme to []Algorithm.
// It returns default signature scheme list if no SignatureScheme is passed.
func ParseSignatureSchemes(sigs []tls.SignatureScheme, insecureHashes bool) ([]Algorithm, error) {
	if len(sigs) == 0 {
		return Algorithms(), nil
	}
	out := []Algorithm{}
	for _, ss := range sigs {
		var alg Algorithm
		if err := alg.Unmarshal(ss); err != nil {
			return nil, err
		}
		if alg.Hash == hash.None {
			return nil, fmt.Errorf("SignatureScheme %04x: %w", uint16(ss), errInvalidHashAlgorithm)
		}
		if alg.Signature == signature.Anonymous {
			return nil, fmt.Errorf("SignatureScheme %04x: %w", uint16(ss), errInvalidSignatureAlgorithm)
		}

		if alg.Hash.Insecure() && !insecureHashes {
			continue
		}

		out = append(out, alg)
	}

	if len(out) == 0 {
		return nil, errNoAvailableSignatureSchemes
	}

	return out, nil
}
