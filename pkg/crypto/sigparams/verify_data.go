// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sigparams

import (
	"github.com/pion/tlsauth/pkg/crypto/hash"
	"github.com/pion/tlsauth/pkg/crypto/signature"
	"github.com/pion/tlsauth/pkg/crypto/signaturehash"
	"github.com/pion/tlsauth/pkg/crypto/ssl3"
	"github.com/pion/tlsauth/pkg/protocol"
)

// VerifyData is the parameters and the exact bytes handed to the
// signature primitive.
type VerifyData struct {
	Params Params
	Data   []byte
}

// BuildVerifyData applies the legacy pre-hashing rule. RSA with the
// combined MD5+SHA1 hash signs the digest of message; every other
// parameter set signs message itself and hashes inside the primitive.
func BuildVerifyData(params Params, message []byte) VerifyData {
	if params == RSAParams(hash.MD5SHA1) {
		return VerifyData{Params: params, Data: hash.MD5SHA1.Digest(message)}
	}

	return VerifyData{Params: params, Data: message}
}

// PrepareCertificateVerify returns what a CertificateVerify of the given
// version signs over the handshake transcript. The master secret is only
// read for SSL 3.0, and negotiated only for TLS 1.2 and later.
//
// Every error returned is a *protocol.InternalError.
func PrepareCertificateVerify(
	version protocol.Version,
	family signature.Algorithm,
	negotiated *signaturehash.Algorithm,
	masterSecret []byte,
	transcript []byte,
) (VerifyData, error) {
	switch {
	case version.Equal(protocol.VersionSSL3_0):
		return prepareSSL3(family, masterSecret, transcript)

	case version.Equal(protocol.Version1_0), version.Equal(protocol.Version1_1):
		params, err := Resolve(family, nil)
		if err != nil {
			return VerifyData{}, err
		}

		return BuildVerifyData(params, transcript), nil

	case version.HasSignatureAlgorithms():
		params, err := Resolve(family, negotiated)
		if err != nil {
			return VerifyData{}, err
		}

		return VerifyData{Params: params, Data: transcript}, nil

	default:
		return VerifyData{}, internalError(ErrUnsupportedVersion, "%s", version)
	}
}

func prepareSSL3(family signature.Algorithm, masterSecret, transcript []byte) (VerifyData, error) {
	var (
		params Params
		digest func(masterSecret, handshakeMessages []byte) []byte
	)

	switch family {
	case signature.RSA:
		params, digest = RSAParams(hash.MD5SHA1), ssl3.CertificateVerify
	case signature.DSA:
		params, digest = DSSParams(), ssl3.CertificateVerifySHA1
	case signature.ECDSA, signature.Anonymous:
		return VerifyData{}, internalError(ErrUnsupportedSSL3Family, "%s", family)
	default:
		return VerifyData{}, internalError(ErrUnsupportedSSL3Family, "%s", family)
	}

	if len(masterSecret) == 0 {
		return VerifyData{}, internalError(ErrMissingMasterSecret, "SSL 3.0 CertificateVerify")
	}

	return VerifyData{Params: params, Data: digest(masterSecret, transcript)}, nil
}
