// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package tlsauth

import (
	"github.com/pion/tlsauth/pkg/crypto/signature"
	"github.com/pion/tlsauth/pkg/crypto/signaturehash"
	"github.com/pion/tlsauth/pkg/protocol/extension"
)

// helloSignatureAlgorithms returns the signature_algorithms and
// signature_algorithms_cert lists of an encoded hello extension block.
// Either may be nil when the peer did not send it.
func helloSignatureAlgorithms(
	rawExtensions []byte,
) (*extension.SupportedSignatureAlgorithms, *extension.SignatureAlgorithmsCert, error) {
	extensions, err := extension.Unmarshal(rawExtensions)
	if err != nil {
		return nil, nil, err
	}

	var (
		sigAlgs  *extension.SupportedSignatureAlgorithms
		certAlgs *extension.SignatureAlgorithmsCert
	)
	for _, e := range extensions {
		switch ext := e.(type) {
		case *extension.SupportedSignatureAlgorithms:
			sigAlgs = ext
		case *extension.SignatureAlgorithmsCert:
			certAlgs = ext
		}
	}

	return sigAlgs, certAlgs, nil
}

// NegotiateFromHello picks the pair a local key of the given family signs
// with from the peer's encoded hello extension block.
func (a *Authenticator) NegotiateFromHello(
	family signature.Algorithm,
	rawExtensions []byte,
) (signaturehash.Algorithm, error) {
	sigAlgs, _, err := helloSignatureAlgorithms(rawExtensions)
	if err != nil {
		a.log.Debugf("malformed hello extensions: %v", err)

		return signaturehash.Algorithm{}, err
	}

	return a.NegotiateSignatureScheme(family, sigAlgs)
}

// CertificateSignatureAllowed reports whether the peer accepts a certificate
// signed with alg. signature_algorithms_cert governs when present,
// signature_algorithms otherwise.
//
// https://tools.ietf.org/html/rfc8446#section-4.2.3
func (a *Authenticator) CertificateSignatureAllowed(
	rawExtensions []byte,
	alg signaturehash.Algorithm,
) (bool, error) {
	sigAlgs, certAlgs, err := helloSignatureAlgorithms(rawExtensions)
	if err != nil {
		a.log.Debugf("malformed hello extensions: %v", err)

		return false, err
	}

	var accepted []signaturehash.Algorithm
	switch {
	case certAlgs != nil:
		accepted = certAlgs.SignatureHashAlgorithms
	case sigAlgs != nil:
		accepted = sigAlgs.SignatureHashAlgorithms
	}

	for _, offered := range accepted {
		if offered == alg {
			return true, nil
		}
	}
	a.log.Debugf("peer does not accept %s certificates", alg)

	return false, nil
}
