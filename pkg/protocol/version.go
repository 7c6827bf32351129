// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package protocol provides the TLS protocol versions, roles and error types
package protocol

import "fmt"

// Version enums.
var (
	VersionSSL3_0 = Version{Major: 0x03, Minor: 0x00} //nolint:gochecknoglobals,revive,stylecheck
	Version1_0    = Version{Major: 0x03, Minor: 0x01} //nolint:gochecknoglobals
	Version1_1    = Version{Major: 0x03, Minor: 0x02} //nolint:gochecknoglobals
	Version1_2    = Version{Major: 0x03, Minor: 0x03} //nolint:gochecknoglobals
	Version1_3    = Version{Major: 0x03, Minor: 0x04} //nolint:gochecknoglobals
)

// Version is the minor/major value in the RecordLayer
// and ClientHello/ServerHello
//
// https://tools.ietf.org/html/rfc5246#section-6.2.1
type Version struct {
	Major, Minor uint8
}

// Equal determines if two protocol versions are equal.
func (v Version) Equal(x Version) bool {
	return v.Major == x.Major && v.Minor == x.Minor
}

// Less reports whether v is an older protocol version than x.
func (v Version) Less(x Version) bool {
	if v.Major != x.Major {
		return v.Major < x.Major
	}

	return v.Minor < x.Minor
}

// HasSignatureAlgorithms reports whether digitally-signed elements carry an
// explicit hash/signature pair at this version (TLS 1.2 and later).
func (v Version) HasSignatureAlgorithms() bool {
	return !v.Less(Version1_2)
}

func (v Version) String() string {
	switch {
	case v.Equal(VersionSSL3_0):
		return "SSL 3.0"
	case v.Equal(Version1_0):
		return "TLS 1.0"
	case v.Equal(Version1_1):
		return "TLS 1.1"
	case v.Equal(Version1_2):
		return "TLS 1.2"
	case v.Equal(Version1_3):
		return "TLS 1.3"
	default:
		return fmt.Sprintf("%#02x%02x", v.Major, v.Minor)
	}
}

// IsValidVersion returns true if v is one of the versions defined above.
func IsValidVersion(v Version) bool {
	return v.Equal(VersionSSL3_0) || v.Equal(Version1_0) || v.Equal(Version1_1) ||
		v.Equal(Version1_2) || v.Equal(Version1_3)
}

// Role is the side of the handshake the local endpoint plays.
type Role uint8

// Role enums.
const (
	RoleClient Role = iota + 1
	RoleServer
)

// Peer returns the role of the remote endpoint.
func (r Role) Peer() Role {
	switch r {
	case RoleClient:
		return RoleServer
	case RoleServer:
		return RoleClient
	default:
		return r
	}
}

func (r Role) String() string {
	switch r {
	case RoleClient:
		return "client"
	case RoleServer:
		return "server"
	default:
		return "unknown"
	}
}
