// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package tlsauth implements the signature negotiation and verification
// rules of the TLS handshake: CertificateVerify and signed ServerKeyExchange
// parameters for SSL 3.0 through TLS 1.3.
package tlsauth

import (
	"github.com/pion/logging"
	"github.com/pion/tlsauth/pkg/crypto/sigparams"
	"github.com/pion/tlsauth/pkg/crypto/signature"
	"github.com/pion/tlsauth/pkg/crypto/signaturehash"
	"github.com/pion/tlsauth/pkg/protocol"
	"github.com/pion/tlsauth/pkg/protocol/extension"
)

// Provider performs the raw signature primitives. The data passed in is
// exactly what sigparams prepared: a legacy MD5+SHA-1 digest for
// sigparams.RSAParams(hash.MD5SHA1), the message to hash otherwise.
//
// signer.Provider implements it over Go keys.
type Provider interface {
	// Sign signs data with the private key of role.
	Sign(role protocol.Role, params sigparams.Params, data []byte) ([]byte, error)
	// Verify checks sig over data against the public key of role's peer.
	Verify(role protocol.Role, params sigparams.Params, data, sig []byte) bool
}

// Authenticator creates and checks handshake signatures. It holds no
// per-connection state and is safe for concurrent use by many connections.
type Authenticator struct {
	provider       Provider
	insecureHashes bool
	local          []signaturehash.Algorithm
	log            logging.LeveledLogger
}

// NewAuthenticator creates an Authenticator. WithProvider is required.
func NewAuthenticator(opts ...Option) (*Authenticator, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		if err := o.apply(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.provider == nil {
		return nil, errNilProvider
	}

	local, err := signaturehash.ParseSignatureSchemes(cfg.schemes, cfg.insecureHashes)
	if err != nil {
		return nil, err
	}

	return &Authenticator{
		provider:       cfg.provider,
		insecureHashes: cfg.insecureHashes,
		local:          local,
		log:            cfg.loggerFactory.NewLogger("tlsauth"),
	}, nil
}

// SignatureAlgorithms returns the signature_algorithms extension advertising
// the local preference.
func (a *Authenticator) SignatureAlgorithms() *extension.SupportedSignatureAlgorithms {
	return &extension.SupportedSignatureAlgorithms{
		SignatureHashAlgorithms: append([]signaturehash.Algorithm{}, a.local...),
	}
}

// SignatureCompatible reports whether a negotiated pair may be used with a
// key of the given family.
func SignatureCompatible(family signature.Algorithm, alg signaturehash.Algorithm) bool {
	return signaturehash.Compatible(family, alg)
}

// NegotiateSignatureScheme picks the pair a local key of the given family
// signs with from the peer's signature_algorithms extension. Pairs missing
// from the local preference are skipped.
func (a *Authenticator) NegotiateSignatureScheme(
	family signature.Algorithm,
	peer *extension.SupportedSignatureAlgorithms,
) (signaturehash.Algorithm, error) {
	var offered []signaturehash.Algorithm
	if peer != nil {
		for _, alg := range peer.SignatureHashAlgorithms {
			if a.allowed(alg) {
				offered = append(offered, alg)
			}
		}
	}

	alg, err := sigparams.Select(offered, family, a.insecureHashes)
	if err != nil {
		a.log.Warnf("no signature scheme for %s key among %d offered", family, len(offered))

		return signaturehash.Algorithm{}, err
	}

	return alg, nil
}

func (a *Authenticator) allowed(alg signaturehash.Algorithm) bool {
	for _, local := range a.local {
		if local == alg {
			return true
		}
	}

	return false
}

// requireTag enforces the tag presence contract on the signing side.
func (a *Authenticator) requireTag(version protocol.Version, negotiated *signaturehash.Algorithm) error {
	switch {
	case version.HasSignatureAlgorithms() && negotiated == nil:
		return internalError(ErrMissingAlgorithm, "%s", version)
	case version.HasSignatureAlgorithms() && negotiated.Hash.Insecure() && !a.insecureHashes:
		return internalError(ErrInsecureHash, "%s", negotiated)
	case !version.HasSignatureAlgorithms() && negotiated != nil:
		return internalError(ErrUnexpectedAlgorithm, "%s at %s", negotiated, version)
	default:
		return nil
	}
}

// acceptTag is the verifying side of the same contract. A rejected tag is an
// authentication failure, never an error.
func (a *Authenticator) acceptTag(
	version protocol.Version,
	family signature.Algorithm,
	alg *signaturehash.Algorithm,
) bool {
	switch {
	case version.HasSignatureAlgorithms() && alg == nil:
		a.log.Debugf("rejecting untagged signature at %s", version)

		return false
	case version.HasSignatureAlgorithms() && !signaturehash.Compatible(family, *alg):
		a.log.Debugf("rejecting %s signature for %s key", alg, family)

		return false
	case version.HasSignatureAlgorithms() && alg.Hash.Insecure() && !a.insecureHashes:
		a.log.Debugf("rejecting insecure %s signature", alg)

		return false
	case version.HasSignatureAlgorithms():
		return true
	case alg != nil:
		a.log.Debugf("rejecting tagged signature at %s", version)

		return false
	default:
		return true
	}
}

// paramsVerifyData resolves what signed key exchange parameters cover. Only
// CertificateVerify uses the SSL 3.0 master secret digest, so SSL 3.0 shares
// the TLS 1.0 rule here.
func paramsVerifyData(
	version protocol.Version,
	family signature.Algorithm,
	alg *signaturehash.Algorithm,
	data []byte,
) (sigparams.VerifyData, error) {
	switch {
	case version.HasSignatureAlgorithms():
		params, err := sigparams.Resolve(family, alg)
		if err != nil {
			return sigparams.VerifyData{}, err
		}

		return sigparams.VerifyData{Params: params, Data: data}, nil

	case !version.Less(protocol.VersionSSL3_0):
		params, err := sigparams.Resolve(family, nil)
		if err != nil {
			return sigparams.VerifyData{}, err
		}

		return sigparams.BuildVerifyData(params, data), nil

	default:
		return sigparams.VerifyData{}, internalError(ErrUnsupportedVersion, "%s", version)
	}
}

func copyAlgorithm(alg *signaturehash.Algorithm) *signaturehash.Algorithm {
	if alg == nil {
		return nil
	}
	out := *alg

	return &out
}
