// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package protocol

import "fmt"

// FatalError indicates that the handshake can not continue.
// It is mainly caused by a peer sending malformed data.
type FatalError struct {
	Err error
}

// InternalError indicates and internal error caused by the implementation,
// and the handshake of the current connection must be aborted.
// It is mainly caused by bugs in the handshake driver or tried to use
// unimplemented features.
type InternalError struct {
	Err error
}

// TemporaryError indicates that the connection is still available, but the request was failed temporary.
type TemporaryError struct {
	Err error
}

// Unwrap implements Go1.13 error unwrapper.
func (e *FatalError) Unwrap() error { return e.Err }

func (e *FatalError) Error() string { return fmt.Sprintf("tls fatal: %v", e.Err) }

// Unwrap implements Go1.13 error unwrapper.
func (e *InternalError) Unwrap() error { return e.Err }

func (e *InternalError) Error() string { return fmt.Sprintf("tls internal: %v", e.Err) }

// Unwrap implements Go1.13 error unwrapper.
func (e *TemporaryError) Unwrap() error { return e.Err }

func (e *TemporaryError) Error() string { return fmt.Sprintf("tls temporary: %v", e.Err) }
