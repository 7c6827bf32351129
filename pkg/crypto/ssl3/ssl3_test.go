// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package ssl3

import (
	"bytes"
	"crypto/md5"  //nolint:gosec
	"crypto/sha1" //nolint:gosec
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCertificateVerify(t *testing.T) {
	masterSecret := bytes.Repeat([]byte{0x0b}, 48)
	msgs := []byte("client hello | server hello | certificate")

	digest := CertificateVerify(masterSecret, msgs)
	assert.Len(t, digest, md5.Size+sha1.Size)
	assert.Equal(t, digest, CertificateVerify(masterSecret, msgs))

	// MD5(ms + pad2 + MD5(msgs + ms + pad1))
	innerMD5 := md5.Sum(append(append(append([]byte{}, msgs...), masterSecret...), bytes.Repeat([]byte{0x36}, 48)...)) // #nosec
	outerMD5 := md5.Sum(append(append(append([]byte{}, masterSecret...), bytes.Repeat([]byte{0x5c}, 48)...), innerMD5[:]...)) // #nosec
	assert.Equal(t, outerMD5[:], digest[:md5.Size])

	innerSHA := sha1.Sum(append(append(append([]byte{}, msgs...), masterSecret...), bytes.Repeat([]byte{0x36}, 40)...)) // #nosec
	outerSHA := sha1.Sum(append(append(append([]byte{}, masterSecret...), bytes.Repeat([]byte{0x5c}, 40)...), innerSHA[:]...)) // #nosec
	assert.Equal(t, outerSHA[:], digest[md5.Size:])

	assert.Equal(t, digest[md5.Size:], CertificateVerifySHA1(masterSecret, msgs))
}

func TestCertificateVerifyDependsOnMasterSecret(t *testing.T) {
	msgs := []byte("transcript")

	a := CertificateVerify(bytes.Repeat([]byte{0x01}, 48), msgs)
	b := CertificateVerify(bytes.Repeat([]byte{0x02}, 48), msgs)
	assert.NotEqual(t, a, b)
}
