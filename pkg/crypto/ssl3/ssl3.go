// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package ssl3 implements the SSL 3.0 CertificateVerify digest keyed by the master secret
//
// https://www.rfc-editor.org/rfc/rfc6101#section-5.6.8
package ssl3

import (
	"crypto/md5"  //nolint:gosec
	"crypto/sha1" //nolint:gosec
	"hash"
)

const (
	md5PadLength  = 48
	sha1PadLength = 40

	pad1 = 0x36
	pad2 = 0x5c
)

// CertificateVerify returns MD5 || SHA1 of the handshake messages, each
// computed as H(master_secret + pad_2 + H(handshake_messages + master_secret + pad_1)).
// This is what an RSA key signs in an SSL 3.0 CertificateVerify.
func CertificateVerify(masterSecret, handshakeMessages []byte) []byte {
	out := make([]byte, 0, md5.Size+sha1.Size)
	out = append(out, sum(md5.New, md5PadLength, masterSecret, handshakeMessages)...)

	return append(out, sum(sha1.New, sha1PadLength, masterSecret, handshakeMessages)...)
}

// CertificateVerifySHA1 returns only the SHA1 half of CertificateVerify,
// which is what a DSS key signs.
func CertificateVerifySHA1(masterSecret, handshakeMessages []byte) []byte {
	return sum(sha1.New, sha1PadLength, masterSecret, handshakeMessages)
}

func sum(newHash func() hash.Hash, padLength int, masterSecret, handshakeMessages []byte) []byte {
	inner := newHash()
	inner.Write(handshakeMessages)
	inner.Write(masterSecret)
	inner.Write(padding(pad1, padLength))

	outer := newHash()
	outer.Write(masterSecret)
	outer.Write(padding(pad2, padLength))
	outer.Write(inner.Sum(nil))

	return outer.Sum(nil)
}

func padding(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}

	return out
}
