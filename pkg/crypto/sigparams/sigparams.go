// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package sigparams resolves the signing parameters and the exact bytes
// to sign for a digitally-signed handshake element.
package sigparams

import (
	"fmt"

	"github.com/pion/tlsauth/pkg/crypto/hash"
	"github.com/pion/tlsauth/pkg/crypto/signature"
	"github.com/pion/tlsauth/pkg/crypto/signaturehash"
)

// Params determines which hash is applied before the raw signature
// primitive. Create values with RSAParams, DSSParams or ECDSAParams.
type Params struct {
	Signature signature.Algorithm
	Hash      hash.Algorithm
}

// RSAParams returns the parameters of an RSA PKCS#1 v1.5 signature.
func RSAParams(h hash.Algorithm) Params {
	return Params{Signature: signature.RSA, Hash: h}
}

// DSSParams returns the parameters of a DSA signature, which always uses SHA-1.
func DSSParams() Params {
	return Params{Signature: signature.DSA, Hash: hash.SHA1}
}

// ECDSAParams returns the parameters of an ECDSA signature.
func ECDSAParams(h hash.Algorithm) Params {
	return Params{Signature: signature.ECDSA, Hash: h}
}

func (p Params) String() string {
	return fmt.Sprintf("%s(%s)", p.Signature, p.Hash)
}

// Resolve maps a key family and the optional pair negotiated through the
// signature_algorithms extension to signing parameters. A nil negotiated
// pair selects the fixed pre-TLS 1.2 hash of the family.
//
// Every error returned is a *protocol.InternalError.
func Resolve(family signature.Algorithm, negotiated *signaturehash.Algorithm) (Params, error) { //nolint:cyclop
	switch family {
	case signature.RSA:
		if negotiated == nil {
			return RSAParams(hash.MD5SHA1), nil
		}
		if negotiated.Signature != signature.RSA {
			return Params{}, internalError(ErrIncompatibleSignature, "%s with an %s key", negotiated, family)
		}
		switch negotiated.Hash {
		case hash.SHA512, hash.SHA384, hash.SHA256, hash.SHA1:
			return RSAParams(negotiated.Hash), nil
		case hash.None, hash.MD5, hash.SHA224, hash.MD5SHA1:
			return Params{}, internalError(ErrUnimplementedHash, "%s", negotiated)
		default:
			return Params{}, internalError(ErrUnimplementedHash, "%s", negotiated)
		}

	case signature.DSA:
		if negotiated == nil {
			return DSSParams(), nil
		}
		if negotiated.Signature != signature.DSA {
			return Params{}, internalError(ErrIncompatibleSignature, "%s with an %s key", negotiated, family)
		}
		switch negotiated.Hash {
		case hash.SHA1:
			return DSSParams(), nil
		case hash.None, hash.MD5, hash.SHA224, hash.SHA256, hash.SHA384, hash.SHA512, hash.MD5SHA1:
			return Params{}, internalError(ErrInvalidDSAHash, "%s", negotiated)
		default:
			return Params{}, internalError(ErrInvalidDSAHash, "%s", negotiated)
		}

	case signature.ECDSA:
		if negotiated == nil {
			return ECDSAParams(hash.SHA1), nil
		}
		if negotiated.Signature != signature.ECDSA {
			return Params{}, internalError(ErrIncompatibleSignature, "%s with an %s key", negotiated, family)
		}
		switch negotiated.Hash {
		case hash.SHA512, hash.SHA384, hash.SHA256, hash.SHA1:
			return ECDSAParams(negotiated.Hash), nil
		case hash.None, hash.MD5, hash.SHA224, hash.MD5SHA1:
			return Params{}, internalError(ErrUnimplementedHash, "%s", negotiated)
		default:
			return Params{}, internalError(ErrUnimplementedHash, "%s", negotiated)
		}

	case signature.Anonymous:
		return Params{}, internalError(ErrUnsupportedFamily, "%s", family)
	default:
		return Params{}, internalError(ErrUnsupportedFamily, "%s", family)
	}
}

// Select returns the first pair of the peer's signature_algorithms list
// usable with a key of the given family.
func Select(
	peer []signaturehash.Algorithm,
	family signature.Algorithm,
	insecureHashes bool,
) (signaturehash.Algorithm, error) {
	for _, alg := range peer {
		alg := alg
		if !signaturehash.Compatible(family, alg) {
			continue
		}
		if alg.Hash.Insecure() && !insecureHashes {
			continue
		}
		if _, err := Resolve(family, &alg); err != nil {
			continue
		}

		return alg, nil
	}

	return signaturehash.Algorithm{}, internalError(ErrNoSignatureScheme, "%s key", family)
}
