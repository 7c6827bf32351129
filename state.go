// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package tlsauth

import (
	"github.com/pion/tlsauth/pkg/protocol"
	"github.com/pion/tlsauth/pkg/protocol/handshake"
)

// State is the snapshot of handshake state an operation reads. It is owned
// by the handshake driver and never modified here.
type State struct {
	// Version is the negotiated protocol version.
	Version protocol.Version
	// Role is the side the local endpoint plays.
	Role protocol.Role

	ClientRandom []byte
	ServerRandom []byte
	// MasterSecret is only read by SSL 3.0 CertificateVerify.
	MasterSecret []byte
}

// randoms returns client_random || server_random.
func (s *State) randoms() ([]byte, error) {
	switch {
	case len(s.ClientRandom) == 0:
		return nil, internalError(ErrMissingClientRandom, "%s", s.Role)
	case len(s.ServerRandom) == 0:
		return nil, internalError(ErrMissingServerRandom, "%s", s.Role)
	case len(s.ClientRandom) != handshake.RandomLength:
		return nil, internalError(ErrInvalidRandomLength, "client random is %d bytes", len(s.ClientRandom))
	case len(s.ServerRandom) != handshake.RandomLength:
		return nil, internalError(ErrInvalidRandomLength, "server random is %d bytes", len(s.ServerRandom))
	}

	out := make([]byte, 0, 2*handshake.RandomLength)
	out = append(out, s.ClientRandom...)

	return append(out, s.ServerRandom...), nil
}
