// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package tlsauth

import (
	"github.com/pion/tlsauth/pkg/crypto/signature"
	"github.com/pion/tlsauth/pkg/crypto/signaturehash"
	"github.com/pion/tlsauth/pkg/protocol/handshake"
)

type keyExchangeParams interface {
	Marshal() ([]byte, error)
}

// keyExchangeMessage returns client_random || server_random || params, the
// bytes a ServerKeyExchange signature covers.
func keyExchangeMessage(state *State, params keyExchangeParams) ([]byte, error) {
	plaintext, err := state.randoms()
	if err != nil {
		return nil, err
	}

	raw, err := params.Marshal()
	if err != nil {
		return nil, internalError(err, "encode key exchange parameters")
	}

	return append(plaintext, raw...), nil
}

func (a *Authenticator) signParams(
	state *State,
	family signature.Algorithm,
	negotiated *signaturehash.Algorithm,
	params keyExchangeParams,
) (*handshake.DigitallySigned, error) {
	if state == nil {
		return nil, internalError(errNilState, "sign key exchange")
	}

	plaintext, err := keyExchangeMessage(state, params)
	if err != nil {
		a.log.Warnf("sign key exchange: %v", err)

		return nil, err
	}

	return a.sign(state, family, negotiated, plaintext)
}

func (a *Authenticator) verifyParams(
	state *State,
	family signature.Algorithm,
	params keyExchangeParams,
	digSig *handshake.DigitallySigned,
) (bool, error) {
	if state == nil {
		return false, internalError(errNilState, "verify key exchange")
	}

	plaintext, err := keyExchangeMessage(state, params)
	if err != nil {
		a.log.Warnf("verify key exchange: %v", err)

		return false, err
	}

	return a.Verify(state, digSig, family, plaintext)
}

// SignDHParams signs ServerDHParams together with both handshake randoms.
func (a *Authenticator) SignDHParams(
	state *State,
	family signature.Algorithm,
	negotiated *signaturehash.Algorithm,
	params *handshake.ServerDHParams,
) (*handshake.DigitallySigned, error) {
	if params == nil {
		return nil, internalError(errNilParams, "DH")
	}

	return a.signParams(state, family, negotiated, params)
}

// SignECDHParams signs ServerECDHParams together with both handshake randoms.
func (a *Authenticator) SignECDHParams(
	state *State,
	family signature.Algorithm,
	negotiated *signaturehash.Algorithm,
	params *handshake.ServerECDHParams,
) (*handshake.DigitallySigned, error) {
	if params == nil {
		return nil, internalError(errNilParams, "ECDH")
	}

	return a.signParams(state, family, negotiated, params)
}

// VerifyDHParams checks the peer's signature over ServerDHParams as received.
func (a *Authenticator) VerifyDHParams(
	state *State,
	family signature.Algorithm,
	params *handshake.ServerDHParams,
	digSig *handshake.DigitallySigned,
) (bool, error) {
	if params == nil {
		return false, internalError(errNilParams, "DH")
	}

	return a.verifyParams(state, family, params, digSig)
}

// VerifyECDHParams checks the peer's signature over ServerECDHParams as
// received.
func (a *Authenticator) VerifyECDHParams(
	state *State,
	family signature.Algorithm,
	params *handshake.ServerECDHParams,
	digSig *handshake.DigitallySigned,
) (bool, error) {
	if params == nil {
		return false, internalError(errNilParams, "ECDH")
	}

	return a.verifyParams(state, family, params, digSig)
}

// SignServerKeyExchange fills msg.Signed for whichever parameters msg
// carries and stamps it with the negotiated version.
func (a *Authenticator) SignServerKeyExchange(
	state *State,
	family signature.Algorithm,
	negotiated *signaturehash.Algorithm,
	msg *handshake.MessageServerKeyExchange,
) error {
	if msg == nil {
		return internalError(errNilParams, "ServerKeyExchange")
	}

	var (
		signed *handshake.DigitallySigned
		err    error
	)
	switch {
	case msg.DHParams != nil && msg.ECDHParams == nil:
		signed, err = a.SignDHParams(state, family, negotiated, msg.DHParams)
	case msg.ECDHParams != nil && msg.DHParams == nil:
		signed, err = a.SignECDHParams(state, family, negotiated, msg.ECDHParams)
	default:
		return internalError(errNilParams, "ServerKeyExchange")
	}
	if err != nil {
		return err
	}

	msg.Version = state.Version
	msg.Signed = *signed

	return nil
}

// VerifyServerKeyExchange checks the signature of a received
// ServerKeyExchange.
func (a *Authenticator) VerifyServerKeyExchange(
	state *State,
	family signature.Algorithm,
	msg *handshake.MessageServerKeyExchange,
) (bool, error) {
	if msg == nil {
		return false, internalError(errNilParams, "ServerKeyExchange")
	}

	switch {
	case msg.DHParams != nil && msg.ECDHParams == nil:
		return a.VerifyDHParams(state, family, msg.DHParams, &msg.Signed)
	case msg.ECDHParams != nil && msg.DHParams == nil:
		return a.VerifyECDHParams(state, family, msg.ECDHParams, &msg.Signed)
	default:
		return false, internalError(errNilParams, "ServerKeyExchange")
	}
}
