// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package hash provides the hash algorithms used by TLS signatures
package hash

import (
	"crypto"
	"crypto/md5"  //nolint:gosec
	"crypto/sha1" //nolint:gosec
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
)

// Algorithm is used to indicate the hash algorithm used
// https://www.iana.org/assignments/tls-parameters/tls-parameters.xhtml#tls-parameters-18
type Algorithm uint16

// Supported hash algorithms.
const (
	None   Algorithm = 0 // Blacklisted
	MD5    Algorithm = 1 // Blacklisted
	SHA1   Algorithm = 2
	SHA224 Algorithm = 3
	SHA256 Algorithm = 4
	SHA384 Algorithm = 5
	SHA512 Algorithm = 6

	// MD5SHA1 is the concatenated MD5 and SHA-1 digest signed by RSA keys
	// before TLS 1.2. It has no wire value and never appears in a
	// signature_algorithms extension.
	MD5SHA1 Algorithm = 0x0100
)

// String makes hashAlgorithm printable.
func (a Algorithm) String() string {
	switch a {
	case None:
		return "none"
	case MD5:
		return "md5" // [RFC3279]
	case SHA1:
		return "sha-1" // [RFC3279]
	case SHA224:
		return "sha-224" // [RFC4055]
	case SHA256:
		return "sha-256" // [RFC4055]
	case SHA384:
		return "sha-384" // [RFC4055]
	case SHA512:
		return "sha-512" // [RFC4055]
	case MD5SHA1:
		return "md5+sha-1"
	default:
		return fmt.Sprintf("unknown(%d)", uint16(a))
	}
}

// Digest performs a digest on the passed value.
func (a Algorithm) Digest(b []byte) []byte {
	switch a {
	case None:
		return nil
	case MD5:
		hash := md5.Sum(b) // #nosec

		return hash[:]
	case SHA1:
		hash := sha1.Sum(b) // #nosec

		return hash[:]
	case SHA224:
		hash := sha256.Sum224(b)

		return hash[:]
	case SHA256:
		hash := sha256.Sum256(b)

		return hash[:]
	case SHA384:
		hash := sha512.Sum384(b)

		return hash[:]
	case SHA512:
		hash := sha512.Sum512(b)

		return hash[:]
	case MD5SHA1:
		md5Hash := md5.Sum(b)   // #nosec
		sha1Hash := sha1.Sum(b) // #nosec

		out := make([]byte, 0, md5.Size+sha1.Size)
		out = append(out, md5Hash[:]...)

		return append(out, sha1Hash[:]...)
	default:
		return nil
	}
}

// Size returns the length in bytes of the digest, or 0 when unknown.
func (a Algorithm) Size() int {
	switch a {
	case MD5:
		return md5.Size
	case SHA1:
		return sha1.Size
	case SHA224:
		return sha256.Size224
	case SHA256:
		return sha256.Size
	case SHA384:
		return sha512.Size384
	case SHA512:
		return sha512.Size
	case MD5SHA1:
		return md5.Size + sha1.Size
	default:
		return 0
	}
}

// Insecure returns if the given HashAlgorithm is considered insecure for TLS 1.2 signatures.
func (a Algorithm) Insecure() bool {
	switch a {
	case None, MD5, SHA1, MD5SHA1:
		return true
	default:
		return false
	}
}

// CryptoHash returns the crypto.Hash implementation for the given HashAlgorithm.
func (a Algorithm) CryptoHash() crypto.Hash {
	switch a {
	case None:
		return crypto.Hash(0)
	case MD5:
		return crypto.MD5
	case SHA1:
		return crypto.SHA1
	case SHA224:
		return crypto.SHA224
	case SHA256:
		return crypto.SHA256
	case SHA384:
		return crypto.SHA384
	case SHA512:
		return crypto.SHA512
	case MD5SHA1:
		return crypto.MD5SHA1
	default:
		return crypto.Hash(0)
	}
}

// Algorithms returns all the hash algorithms that can appear on the wire.
func Algorithms() map[Algorithm]struct{} {
	return map[Algorithm]struct{}{
		None:   {},
		MD5:    {},
		SHA1:   {},
		SHA224: {},
		SHA256: {},
		SHA384: {},
		SHA512: {},
	}
}
