// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package signer implements the raw signature primitives over Go keys:
// RSA PKCS#1 v1.5, DSA and ECDSA.
package signer

import (
	"crypto"
	"crypto/dsa" //nolint:staticcheck
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"encoding/asn1"
	"fmt"
	"io"
	"math/big"
	"sync"

	"github.com/pion/tlsauth/pkg/crypto/hash"
	"github.com/pion/tlsauth/pkg/crypto/signature"
	"github.com/pion/tlsauth/pkg/crypto/sigparams"
	"github.com/pion/tlsauth/pkg/protocol"
)

type dsaSignature struct {
	R, S *big.Int
}

// Provider holds the private key of each local role and the public key
// of each endpoint. Sign uses the private key registered for the given
// role, Verify checks against the public key of the role's peer.
type Provider struct {
	rand io.Reader

	mu          sync.RWMutex
	privateKeys map[protocol.Role]crypto.PrivateKey
	publicKeys  map[protocol.Role]crypto.PublicKey
}

// New creates an empty Provider.
func New() *Provider {
	return &Provider{
		rand:        rand.Reader,
		privateKeys: map[protocol.Role]crypto.PrivateKey{},
		publicKeys:  map[protocol.Role]crypto.PublicKey{},
	}
}

// Family returns the signature family of a public key.
func Family(pub crypto.PublicKey) (signature.Algorithm, error) {
	switch pub.(type) {
	case *rsa.PublicKey:
		return signature.RSA, nil
	case *dsa.PublicKey:
		return signature.DSA, nil
	case *ecdsa.PublicKey:
		return signature.ECDSA, nil
	default:
		return signature.Anonymous, fmt.Errorf("%w: %T", ErrInvalidPublicKey, pub)
	}
}

// SetPrivateKey registers the private key used when signing as role. Its
// public half is registered for role as well.
func (p *Provider) SetPrivateKey(role protocol.Role, key crypto.PrivateKey) error {
	var pub crypto.PublicKey
	switch k := key.(type) {
	case *dsa.PrivateKey:
		pub = &k.PublicKey
	case crypto.Signer:
		pub = k.Public()
	default:
		return fmt.Errorf("%w: %T", ErrInvalidPrivateKey, key)
	}
	if _, err := Family(pub); err != nil {
		return fmt.Errorf("%w: %T", ErrInvalidPrivateKey, key)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.privateKeys[role] = key
	p.publicKeys[role] = pub

	return nil
}

// SetTLSCertificate registers the leaf private key of a tls.Certificate.
func (p *Provider) SetTLSCertificate(role protocol.Role, cert tls.Certificate) error {
	return p.SetPrivateKey(role, cert.PrivateKey)
}

// SetPublicKey registers the public key of the endpoint playing role.
func (p *Provider) SetPublicKey(role protocol.Role, pub crypto.PublicKey) error {
	if _, err := Family(pub); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.publicKeys[role] = pub

	return nil
}

// SetCertificates registers the public key of the leaf certificate sent by
// the endpoint playing role. Chain validation is the caller's concern.
func (p *Provider) SetCertificates(role protocol.Role, rawCertificates [][]byte) error {
	if len(rawCertificates) == 0 {
		return ErrNoCertificate
	}
	certificate, err := x509.ParseCertificate(rawCertificates[0])
	if err != nil {
		return err
	}

	return p.SetPublicKey(role, certificate.PublicKey)
}

// PublicKey returns the public key registered for role.
func (p *Provider) PublicKey(role protocol.Role) (crypto.PublicKey, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	pub, ok := p.publicKeys[role]

	return pub, ok
}

// Sign signs data with the private key of role. For RSA with the combined
// MD5+SHA1 hash data must already be the 36 byte digest; for every other
// parameter set data is hashed with params.Hash first.
func (p *Provider) Sign(role protocol.Role, params sigparams.Params, data []byte) ([]byte, error) {
	p.mu.RLock()
	key, ok := p.privateKeys[role]
	p.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoPrivateKey, role)
	}

	digest, err := digestFor(params, data)
	if err != nil {
		return nil, err
	}

	switch params.Signature {
	case signature.RSA:
		s, ok := key.(crypto.Signer)
		if !ok {
			return nil, ErrKeyAlgorithmMismatch
		}
		if _, ok := s.Public().(*rsa.PublicKey); !ok {
			return nil, ErrKeyAlgorithmMismatch
		}

		return s.Sign(p.rand, digest, params.Hash.CryptoHash())
	case signature.ECDSA:
		s, ok := key.(crypto.Signer)
		if !ok {
			return nil, ErrKeyAlgorithmMismatch
		}
		if _, ok := s.Public().(*ecdsa.PublicKey); !ok {
			return nil, ErrKeyAlgorithmMismatch
		}

		return s.Sign(p.rand, digest, params.Hash.CryptoHash())
	case signature.DSA:
		k, ok := key.(*dsa.PrivateKey)
		if !ok {
			return nil, ErrKeyAlgorithmMismatch
		}
		r, s, err := dsa.Sign(p.rand, k, digest) //nolint:staticcheck
		if err != nil {
			return nil, err
		}

		return asn1.Marshal(dsaSignature{R: r, S: s})
	case signature.Anonymous:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSignature, params.Signature)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSignature, params.Signature)
	}
}

// Verify checks sig over data against the public key of the peer of role.
// Any mismatch, malformed signature or missing key reports false.
func (p *Provider) Verify(role protocol.Role, params sigparams.Params, data, sig []byte) bool { //nolint:cyclop
	p.mu.RLock()
	pub, ok := p.publicKeys[role.Peer()]
	p.mu.RUnlock()
	if !ok {
		return false
	}

	digest, err := digestFor(params, data)
	if err != nil {
		return false
	}

	switch params.Signature {
	case signature.RSA:
		pubKey, ok := pub.(*rsa.PublicKey)
		if !ok {
			return false
		}

		return rsa.VerifyPKCS1v15(pubKey, params.Hash.CryptoHash(), digest, sig) == nil
	case signature.ECDSA:
		pubKey, ok := pub.(*ecdsa.PublicKey)
		if !ok {
			return false
		}

		return ecdsa.VerifyASN1(pubKey, digest, sig)
	case signature.DSA:
		pubKey, ok := pub.(*dsa.PublicKey)
		if !ok {
			return false
		}
		dsaSig := &dsaSignature{}
		if rest, err := asn1.Unmarshal(sig, dsaSig); err != nil || len(rest) != 0 {
			return false
		}
		if dsaSig.R.Sign() <= 0 || dsaSig.S.Sign() <= 0 {
			return false
		}

		return dsa.Verify(pubKey, digest, dsaSig.R, dsaSig.S) //nolint:staticcheck
	case signature.Anonymous:
		return false
	default:
		return false
	}
}

func digestFor(params sigparams.Params, data []byte) ([]byte, error) {
	if params.Hash == hash.MD5SHA1 {
		if len(data) != hash.MD5SHA1.Size() {
			return nil, ErrInvalidDigestLength
		}

		return data, nil
	}

	digest := params.Hash.Digest(data)
	if digest == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSignature, params)
	}

	return digest, nil
}
