// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package tlsauth

import (
	"bytes"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/pion/tlsauth/pkg/crypto/hash"
	"github.com/pion/tlsauth/pkg/crypto/signature"
	"github.com/pion/tlsauth/pkg/crypto/signaturehash"
	"github.com/pion/tlsauth/pkg/crypto/sigparams"
	"github.com/pion/tlsauth/pkg/protocol"
	"github.com/pion/tlsauth/pkg/protocol/handshake"
	"github.com/pion/transport/v3/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMasterSecret = bytes.Repeat([]byte{0x42}, 48)

func handshakeStates(version protocol.Version) (client, server *State) {
	client = &State{
		Version:      version,
		Role:         protocol.RoleClient,
		ClientRandom: bytes.Repeat([]byte{0x01}, handshake.RandomLength),
		ServerRandom: bytes.Repeat([]byte{0x02}, handshake.RandomLength),
		MasterSecret: testMasterSecret,
	}
	serverState := *client
	serverState.Role = protocol.RoleServer

	return client, &serverState
}

// negotiatedFor returns the pair used at TLS 1.2 and later, nil before.
func negotiatedFor(version protocol.Version, family signature.Algorithm) *signaturehash.Algorithm {
	if !version.HasSignatureAlgorithms() {
		return nil
	}
	if family == signature.DSA {
		return &signaturehash.Algorithm{Hash: hash.SHA1, Signature: family}
	}

	return &signaturehash.Algorithm{Hash: hash.SHA256, Signature: family}
}

func TestCertificateVerifyRoundTrip(t *testing.T) {
	versions := []protocol.Version{
		protocol.VersionSSL3_0, protocol.Version1_0, protocol.Version1_1, protocol.Version1_2, protocol.Version1_3,
	}
	transcript := []byte("ClientHello ServerHello Certificate ServerHelloDone ClientKeyExchange")

	for _, family := range signature.Families() {
		auth := newTestAuthenticator(t, family)

		for _, version := range versions {
			version := version
			t.Run(fmt.Sprintf("%s/%s", version, family), func(t *testing.T) {
				client, server := handshakeStates(version)
				negotiated := negotiatedFor(version, family)

				if version.Equal(protocol.VersionSSL3_0) && family == signature.ECDSA {
					_, err := auth.CreateCertificateVerify(client, family, negotiated, transcript)
					assertInternalError(t, err, sigparams.ErrUnsupportedSSL3Family)

					return
				}

				digSig, err := auth.CreateCertificateVerify(client, family, negotiated, transcript)
				require.NoError(t, err)
				assert.Equal(t, negotiated, digSig.Algorithm)
				assert.NotEmpty(t, digSig.Signature)

				// The wire round trip keeps the tag presence of the version.
				raw, err := digSig.Marshal()
				require.NoError(t, err)
				received := &handshake.DigitallySigned{}
				require.NoError(t, received.Unmarshal(raw, version))

				ok, err := auth.CheckCertificateVerify(server, family, received, transcript)
				require.NoError(t, err)
				assert.True(t, ok)

				ok, err = auth.CheckCertificateVerify(server, family, received, []byte("another transcript"))
				require.NoError(t, err)
				assert.False(t, ok)

				tampered := &handshake.DigitallySigned{
					Algorithm: received.Algorithm,
					Signature: append([]byte{}, received.Signature...),
				}
				tampered.Signature[len(tampered.Signature)/2] ^= 0x80
				ok, err = auth.CheckCertificateVerify(server, family, tampered, transcript)
				require.NoError(t, err)
				assert.False(t, ok)
			})
		}
	}
}

func TestCertificateVerifyTLS12RSA(t *testing.T) {
	auth := newTestAuthenticator(t, signature.RSA)
	client, server := handshakeStates(protocol.Version1_2)
	negotiated := &signaturehash.Algorithm{Hash: hash.SHA256, Signature: signature.RSA}

	digSig, err := auth.CreateCertificateVerify(client, signature.RSA, negotiated, []byte("abc"))
	require.NoError(t, err)

	raw, err := (&handshake.MessageCertificateVerify{Version: protocol.Version1_2, DigitallySigned: *digSig}).Marshal()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x04, 0x01}, raw[:2])

	ok, err := auth.CheckCertificateVerify(server, signature.RSA, digSig, []byte("abc"))
	require.NoError(t, err)
	assert.True(t, ok)

	digSig.Signature[0] ^= 0x01
	ok, err = auth.CheckCertificateVerify(server, signature.RSA, digSig, []byte("abc"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCertificateVerifyTagRules(t *testing.T) {
	auth := newTestAuthenticator(t, signature.RSA)
	transcript := []byte("transcript")

	legacyClient, legacyServer := handshakeStates(protocol.Version1_1)
	legacy, err := auth.CreateCertificateVerify(legacyClient, signature.RSA, nil, transcript)
	require.NoError(t, err)

	modernClient, modernServer := handshakeStates(protocol.Version1_2)
	modern, err := auth.CreateCertificateVerify(modernClient, signature.RSA, &signaturehash.Algorithm{
		Hash: hash.SHA256, Signature: signature.RSA,
	}, transcript)
	require.NoError(t, err)

	for name, tc := range map[string]struct {
		state  *State
		digSig *handshake.DigitallySigned
		valid  bool
	}{
		"TLS12Tagged": {
			state:  modernServer,
			digSig: modern,
			valid:  true,
		},
		"TLS12Untagged": {
			state:  modernServer,
			digSig: &handshake.DigitallySigned{Signature: modern.Signature},
		},
		"TLS12IncompatibleTag": {
			state: modernServer,
			digSig: &handshake.DigitallySigned{
				Algorithm: &signaturehash.Algorithm{Hash: hash.SHA256, Signature: signature.ECDSA},
				Signature: modern.Signature,
			},
		},
		"TLS12WrongHash": {
			state: modernServer,
			digSig: &handshake.DigitallySigned{
				Algorithm: &signaturehash.Algorithm{Hash: hash.SHA384, Signature: signature.RSA},
				Signature: modern.Signature,
			},
		},
		"TLS11Untagged": {
			state:  legacyServer,
			digSig: legacy,
			valid:  true,
		},
		"TLS11Tagged": {
			state: legacyServer,
			digSig: &handshake.DigitallySigned{
				Algorithm: &signaturehash.Algorithm{Hash: hash.SHA1, Signature: signature.RSA},
				Signature: legacy.Signature,
			},
		},
		"TLS11GivenModernSignature": {
			state:  legacyServer,
			digSig: &handshake.DigitallySigned{Signature: modern.Signature},
		},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			ok, err := auth.CheckCertificateVerify(tc.state, signature.RSA, tc.digSig, transcript)
			require.NoError(t, err)
			assert.Equal(t, tc.valid, ok)

			// The companion path enforces the same tag rules.
			if !tc.valid {
				ok, err = auth.Verify(tc.state, tc.digSig, signature.RSA, transcript)
				require.NoError(t, err)
				assert.False(t, ok)
			}
		})
	}
}

func TestCertificateVerifyErrors(t *testing.T) {
	auth := newTestAuthenticator(t, signature.RSA)
	transcript := []byte("transcript")

	t.Run("MissingAlgorithm", func(t *testing.T) {
		client, _ := handshakeStates(protocol.Version1_2)
		_, err := auth.CreateCertificateVerify(client, signature.RSA, nil, transcript)
		assertInternalError(t, err, ErrMissingAlgorithm)
	})

	t.Run("UnexpectedAlgorithm", func(t *testing.T) {
		client, _ := handshakeStates(protocol.Version1_0)
		_, err := auth.CreateCertificateVerify(client, signature.RSA, &signaturehash.Algorithm{
			Hash: hash.SHA256, Signature: signature.RSA,
		}, transcript)
		assertInternalError(t, err, ErrUnexpectedAlgorithm)
	})

	t.Run("IncompatibleAlgorithm", func(t *testing.T) {
		client, _ := handshakeStates(protocol.Version1_2)
		_, err := auth.CreateCertificateVerify(client, signature.RSA, &signaturehash.Algorithm{
			Hash: hash.SHA256, Signature: signature.DSA,
		}, transcript)
		assertInternalError(t, err, sigparams.ErrIncompatibleSignature)
	})

	t.Run("UnimplementedHash", func(t *testing.T) {
		_, server := handshakeStates(protocol.Version1_2)
		_, err := auth.CheckCertificateVerify(server, signature.RSA, &handshake.DigitallySigned{
			Algorithm: &signaturehash.Algorithm{Hash: hash.SHA224, Signature: signature.RSA},
			Signature: []byte{0x01},
		}, transcript)
		assertInternalError(t, err, sigparams.ErrUnimplementedHash)
	})

	t.Run("MissingMasterSecret", func(t *testing.T) {
		client, _ := handshakeStates(protocol.VersionSSL3_0)
		client.MasterSecret = nil
		_, err := auth.CreateCertificateVerify(client, signature.RSA, nil, transcript)
		assertInternalError(t, err, ErrMissingMasterSecret)
	})

	t.Run("UnsupportedVersion", func(t *testing.T) {
		client, _ := handshakeStates(protocol.Version{Major: 2, Minor: 0})
		_, err := auth.CreateCertificateVerify(client, signature.RSA, nil, transcript)
		assertInternalError(t, err, ErrUnsupportedVersion)
	})

	t.Run("WrongKeyFamily", func(t *testing.T) {
		client, _ := handshakeStates(protocol.Version1_2)
		_, err := auth.CreateCertificateVerify(client, signature.ECDSA, &signaturehash.Algorithm{
			Hash: hash.SHA256, Signature: signature.ECDSA,
		}, transcript)
		assert.Error(t, err)
		var internalErr *protocol.InternalError
		assert.ErrorAs(t, err, &internalErr)
	})

	t.Run("NilArguments", func(t *testing.T) {
		_, err := auth.CreateCertificateVerify(nil, signature.RSA, nil, transcript)
		assertInternalError(t, err, errNilState)

		_, server := handshakeStates(protocol.Version1_2)
		_, err = auth.CheckCertificateVerify(server, signature.RSA, nil, transcript)
		assertInternalError(t, err, errNilDigitallySigned)
	})
}

func TestInsecureHashes(t *testing.T) {
	transcript := []byte("transcript")
	sha1RSA := &signaturehash.Algorithm{Hash: hash.SHA1, Signature: signature.RSA}

	permissive := newTestAuthenticator(t, signature.RSA)
	strict := newTestAuthenticator(t, signature.RSA, WithInsecureHashes(false))

	client, server := handshakeStates(protocol.Version1_2)
	digSig, err := permissive.CreateCertificateVerify(client, signature.RSA, sha1RSA, transcript)
	require.NoError(t, err)

	ok, err := permissive.CheckCertificateVerify(server, signature.RSA, digSig, transcript)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = strict.CheckCertificateVerify(server, signature.RSA, digSig, transcript)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = strict.CreateCertificateVerify(client, signature.RSA, sha1RSA, transcript)
	assertInternalError(t, err, ErrInsecureHash)

	// Legacy versions always use MD5+SHA-1 and are not affected.
	legacyClient, legacyServer := handshakeStates(protocol.Version1_0)
	legacy, err := strict.CreateCertificateVerify(legacyClient, signature.RSA, nil, transcript)
	require.NoError(t, err)
	ok, err = strict.CheckCertificateVerify(legacyServer, signature.RSA, legacy, transcript)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCertificateVerifyConcurrentConnections(t *testing.T) {
	lim := test.TimeOut(time.Second * 30)
	defer lim.Stop()

	report := test.CheckRoutines(t)
	defer report()

	auth := newTestAuthenticator(t, signature.ECDSA)

	var wg sync.WaitGroup
	results := make([]error, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			version := protocol.Version1_2
			if i%2 == 1 {
				version = protocol.Version1_0
			}
			client, server := handshakeStates(version)
			client.ClientRandom = bytes.Repeat([]byte{byte(i)}, handshake.RandomLength)
			transcript := []byte(fmt.Sprintf("connection %d", i))

			digSig, err := auth.CreateCertificateVerify(client, signature.ECDSA, negotiatedFor(version, signature.ECDSA), transcript)
			if err != nil {
				results[i] = err

				return
			}
			ok, err := auth.CheckCertificateVerify(server, signature.ECDSA, digSig, transcript)
			switch {
			case err != nil:
				results[i] = err
			case !ok:
				results[i] = fmt.Errorf("connection %d: signature rejected", i) //nolint:err113
			}
		}(i)
	}
	wg.Wait()

	for _, err := range results {
		assert.NoError(t, err)
	}
}
