// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sigparams

import (
	"errors"
	"testing"

	"github.com/pion/tlsauth/pkg/crypto/hash"
	"github.com/pion/tlsauth/pkg/crypto/signature"
	"github.com/pion/tlsauth/pkg/crypto/signaturehash"
	"github.com/pion/tlsauth/pkg/protocol"
	"github.com/stretchr/testify/assert"
)

func pair(h hash.Algorithm, s signature.Algorithm) *signaturehash.Algorithm {
	return &signaturehash.Algorithm{Hash: h, Signature: s}
}

func TestResolve(t *testing.T) {
	cases := map[string]struct {
		family     signature.Algorithm
		negotiated *signaturehash.Algorithm
		expected   Params
		err        error
	}{
		"RSALegacy":             {signature.RSA, nil, RSAParams(hash.MD5SHA1), nil},
		"RSASHA1":               {signature.RSA, pair(hash.SHA1, signature.RSA), RSAParams(hash.SHA1), nil},
		"RSASHA256":             {signature.RSA, pair(hash.SHA256, signature.RSA), RSAParams(hash.SHA256), nil},
		"RSASHA384":             {signature.RSA, pair(hash.SHA384, signature.RSA), RSAParams(hash.SHA384), nil},
		"RSASHA512":             {signature.RSA, pair(hash.SHA512, signature.RSA), RSAParams(hash.SHA512), nil},
		"RSAMD5":                {signature.RSA, pair(hash.MD5, signature.RSA), Params{}, ErrUnimplementedHash},
		"RSASHA224":             {signature.RSA, pair(hash.SHA224, signature.RSA), Params{}, ErrUnimplementedHash},
		"RSAWithECDSA":          {signature.RSA, pair(hash.SHA256, signature.ECDSA), Params{}, ErrIncompatibleSignature},
		"RSAWithDSA":            {signature.RSA, pair(hash.SHA1, signature.DSA), Params{}, ErrIncompatibleSignature},
		"DSALegacy":             {signature.DSA, nil, DSSParams(), nil},
		"DSASHA1":               {signature.DSA, pair(hash.SHA1, signature.DSA), DSSParams(), nil},
		"DSASHA256":             {signature.DSA, pair(hash.SHA256, signature.DSA), Params{}, ErrInvalidDSAHash},
		"DSAMD5":                {signature.DSA, pair(hash.MD5, signature.DSA), Params{}, ErrInvalidDSAHash},
		"DSAWithRSA":            {signature.DSA, pair(hash.SHA1, signature.RSA), Params{}, ErrIncompatibleSignature},
		"ECDSALegacy":           {signature.ECDSA, nil, ECDSAParams(hash.SHA1), nil},
		"ECDSASHA1":             {signature.ECDSA, pair(hash.SHA1, signature.ECDSA), ECDSAParams(hash.SHA1), nil},
		"ECDSASHA256":           {signature.ECDSA, pair(hash.SHA256, signature.ECDSA), ECDSAParams(hash.SHA256), nil},
		"ECDSASHA384":           {signature.ECDSA, pair(hash.SHA384, signature.ECDSA), ECDSAParams(hash.SHA384), nil},
		"ECDSASHA512":           {signature.ECDSA, pair(hash.SHA512, signature.ECDSA), ECDSAParams(hash.SHA512), nil},
		"ECDSANone":             {signature.ECDSA, pair(hash.None, signature.ECDSA), Params{}, ErrUnimplementedHash},
		"ECDSAWithRSA":          {signature.ECDSA, pair(hash.SHA256, signature.RSA), Params{}, ErrIncompatibleSignature},
		"AnonymousFamily":       {signature.Anonymous, nil, Params{}, ErrUnsupportedFamily},
		"UnknownFamily":         {signature.Algorithm(42), pair(hash.SHA256, signature.Algorithm(42)), Params{}, ErrUnsupportedFamily},
		"UnknownNegotiatedHash": {signature.RSA, pair(hash.Algorithm(77), signature.RSA), Params{}, ErrUnimplementedHash},
	}

	for name, testCase := range cases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			params, err := Resolve(testCase.family, testCase.negotiated)
			if testCase.err != nil {
				assert.ErrorIs(t, err, testCase.err)

				var internal *protocol.InternalError
				assert.True(t, errors.As(err, &internal))

				return
			}
			assert.NoError(t, err)
			assert.Equal(t, testCase.expected, params)
		})
	}
}

func TestResolveLegacyDefaultsDiffer(t *testing.T) {
	rsa, err := Resolve(signature.RSA, nil)
	assert.NoError(t, err)
	ecdsa, err := Resolve(signature.ECDSA, nil)
	assert.NoError(t, err)

	assert.Equal(t, hash.MD5SHA1, rsa.Hash)
	assert.Equal(t, hash.SHA1, ecdsa.Hash)
	assert.NotEqual(t, rsa, ecdsa)
}

func TestSelect(t *testing.T) {
	peer := []signaturehash.Algorithm{
		{Hash: hash.SHA256, Signature: signature.ECDSA},
		{Hash: hash.SHA224, Signature: signature.RSA},
		{Hash: hash.SHA1, Signature: signature.RSA},
		{Hash: hash.SHA384, Signature: signature.RSA},
		{Hash: hash.SHA256, Signature: signature.DSA},
	}

	alg, err := Select(peer, signature.ECDSA, false)
	assert.NoError(t, err)
	assert.Equal(t, *pair(hash.SHA256, signature.ECDSA), alg)

	alg, err = Select(peer, signature.RSA, false)
	assert.NoError(t, err)
	assert.Equal(t, *pair(hash.SHA384, signature.RSA), alg)

	alg, err = Select(peer, signature.RSA, true)
	assert.NoError(t, err)
	assert.Equal(t, *pair(hash.SHA1, signature.RSA), alg)

	_, err = Select(peer, signature.DSA, true)
	assert.ErrorIs(t, err, ErrNoSignatureScheme)
}
