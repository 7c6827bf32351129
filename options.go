// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package tlsauth

import (
	"crypto/tls"

	"github.com/pion/logging"
)

// Option configures an Authenticator.
type Option interface {
	apply(*config) error
}

type config struct {
	provider       Provider
	loggerFactory  logging.LoggerFactory
	insecureHashes bool
	schemes        []tls.SignatureScheme
}

func defaultConfig() *config {
	return &config{
		loggerFactory:  logging.NewDefaultLoggerFactory(),
		insecureHashes: true,
	}
}

type option func(*config) error

func (o option) apply(c *config) error { return o(c) }

// WithProvider sets the crypto provider performing the raw sign and verify
// primitives. It is required.
func WithProvider(provider Provider) Option {
	return option(func(c *config) error {
		if provider == nil {
			return errNilProvider
		}
		c.provider = provider

		return nil
	})
}

// WithLoggerFactory sets the logger factory for creating loggers.
func WithLoggerFactory(factory logging.LoggerFactory) Option {
	return option(func(c *config) error {
		if factory == nil {
			return errNilLoggerFactory
		}
		c.loggerFactory = factory

		return nil
	})
}

// WithInsecureHashes allows negotiated pairs using SHA-1 or MD5 at TLS 1.2
// and later. Enabled by default. Legacy versions are unaffected.
func WithInsecureHashes(allow bool) Option {
	return option(func(c *config) error {
		c.insecureHashes = allow

		return nil
	})
}

// WithSignatureSchemes sets the local signature scheme preference, most
// preferred first. When unset every supported pair is offered.
func WithSignatureSchemes(schemes ...tls.SignatureScheme) Option {
	return option(func(c *config) error {
		c.schemes = append([]tls.SignatureScheme{}, schemes...)

		return nil
	})
}
