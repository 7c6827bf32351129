// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package tlsauth

import (
	"github.com/pion/tlsauth/pkg/crypto/sigparams"
	"github.com/pion/tlsauth/pkg/crypto/signature"
	"github.com/pion/tlsauth/pkg/crypto/signaturehash"
	"github.com/pion/tlsauth/pkg/protocol/handshake"
)

// CreateCertificateVerify signs the handshake transcript with the key of
// state.Role. negotiated is required at TLS 1.2 and later and must be nil
// before.
func (a *Authenticator) CreateCertificateVerify(
	state *State,
	family signature.Algorithm,
	negotiated *signaturehash.Algorithm,
	transcript []byte,
) (*handshake.DigitallySigned, error) {
	if state == nil {
		return nil, internalError(errNilState, "CertificateVerify")
	}
	if err := a.requireTag(state.Version, negotiated); err != nil {
		a.log.Warnf("CertificateVerify: %v", err)

		return nil, err
	}

	verifyData, err := sigparams.PrepareCertificateVerify(
		state.Version, family, negotiated, state.MasterSecret, transcript,
	)
	if err != nil {
		a.log.Warnf("CertificateVerify: %v", err)

		return nil, err
	}
	a.log.Tracef("[%s] sign CertificateVerify %s: %s", state.Role, state.Version, verifyData.Params)

	sig, err := a.provider.Sign(state.Role, verifyData.Params, verifyData.Data)
	if err != nil {
		return nil, internalError(err, "sign CertificateVerify")
	}

	return &handshake.DigitallySigned{
		Algorithm: copyAlgorithm(negotiated),
		Signature: sig,
	}, nil
}

// CheckCertificateVerify verifies the peer's CertificateVerify over the
// handshake transcript. A signature that does not authenticate returns
// false with a nil error.
func (a *Authenticator) CheckCertificateVerify(
	state *State,
	family signature.Algorithm,
	digSig *handshake.DigitallySigned,
	transcript []byte,
) (bool, error) {
	switch {
	case state == nil:
		return false, internalError(errNilState, "CertificateVerify")
	case digSig == nil:
		return false, internalError(errNilDigitallySigned, "CertificateVerify")
	}
	if !a.acceptTag(state.Version, family, digSig.Algorithm) {
		return false, nil
	}

	verifyData, err := sigparams.PrepareCertificateVerify(
		state.Version, family, digSig.Algorithm, state.MasterSecret, transcript,
	)
	if err != nil {
		a.log.Warnf("CertificateVerify: %v", err)

		return false, err
	}
	a.log.Tracef("[%s] verify CertificateVerify %s: %s", state.Role, state.Version, verifyData.Params)

	if !a.provider.Verify(state.Role, verifyData.Params, verifyData.Data, digSig.Signature) {
		a.log.Debugf("[%s] CertificateVerify signature mismatch", state.Role)

		return false, nil
	}

	return true, nil
}

// Verify checks the peer's signature over data using the negotiated version
// of state. It applies the same tag rules as CheckCertificateVerify but
// never the SSL 3.0 master secret digest.
func (a *Authenticator) Verify(
	state *State,
	digSig *handshake.DigitallySigned,
	family signature.Algorithm,
	data []byte,
) (bool, error) {
	switch {
	case state == nil:
		return false, internalError(errNilState, "verify")
	case digSig == nil:
		return false, internalError(errNilDigitallySigned, "verify")
	}
	if !a.acceptTag(state.Version, family, digSig.Algorithm) {
		return false, nil
	}

	verifyData, err := paramsVerifyData(state.Version, family, digSig.Algorithm, data)
	if err != nil {
		a.log.Warnf("verify: %v", err)

		return false, err
	}
	a.log.Tracef("[%s] verify %s: %s", state.Role, state.Version, verifyData.Params)

	if !a.provider.Verify(state.Role, verifyData.Params, verifyData.Data, digSig.Signature) {
		a.log.Debugf("[%s] signature mismatch", state.Role)

		return false, nil
	}

	return true, nil
}

// sign is the signing counterpart of Verify.
func (a *Authenticator) sign(
	state *State,
	family signature.Algorithm,
	negotiated *signaturehash.Algorithm,
	data []byte,
) (*handshake.DigitallySigned, error) {
	if err := a.requireTag(state.Version, negotiated); err != nil {
		a.log.Warnf("sign: %v", err)

		return nil, err
	}

	verifyData, err := paramsVerifyData(state.Version, family, negotiated, data)
	if err != nil {
		a.log.Warnf("sign: %v", err)

		return nil, err
	}
	a.log.Tracef("[%s] sign %s: %s", state.Role, state.Version, verifyData.Params)

	sig, err := a.provider.Sign(state.Role, verifyData.Params, verifyData.Data)
	if err != nil {
		return nil, internalError(err, "sign")
	}

	return &handshake.DigitallySigned{
		Algorithm: copyAlgorithm(negotiated),
		Signature: sig,
	}, nil
}
