// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sum

import "code.hybscloud.com/atomix"

// Default fallback strings used when no Config is supplied or a derived
// string would be blank.
const (
	DefaultFallbackCode    = "Unspecified"
	DefaultFallbackMessage = "An unspecified error has occurred."
)

// Config governs the capture boundary: how captured errors and panics
// are logged, how Codes are derived, and which fallback strings stand in
// for blank derivations.
//
// There is no ambient global configuration. A *Config is built once with
// [NewConfig] and passed explicitly to every constructor that can
// capture; the dependency is visible in every signature that needs it.
// A nil *Config is valid everywhere and means all defaults: no-op
// logger, probe-chain derivation, [DefaultFallbackCode] and
// [DefaultFallbackMessage].
//
// Config is written only inside NewConfig and read-only thereafter, so a
// single value may be shared by any number of goroutines.
type Config struct {
	logger       func(error)
	factory      CodeFactory
	fallbackCode Code
	fallbackMsg  string

	// captured counts capture-boundary hits. Shared-read diagnostic,
	// atomic because one Config serves concurrent chains.
	captured atomix.Uint64
}

// Option mutates a Config under construction.
type Option func(*Config)

// NewConfig builds a Config from opts. Unset options keep their defaults.
func NewConfig(opts ...Option) *Config {
	c := &Config{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithLogger sets the capture logger, invoked exactly once with each
// error or recovered panic swallowed by a capturing constructor.
// The default is a no-op.
func WithLogger(f func(error)) Option {
	return func(c *Config) { c.logger = f }
}

// WithCodeFactory sets the Code derivation override consulted first by
// [CodeOf], before the Coder/errors.As/Stringer probe chain.
func WithCodeFactory(f CodeFactory) Option {
	return func(c *Config) { c.factory = f }
}

// WithFallbackCode sets the Code substituted when derivation yields a
// blank identifier. Default [DefaultFallbackCode].
func WithFallbackCode(id string) Option {
	return func(c *Config) { c.fallbackCode = Code{id: id} }
}

// WithFallbackMessage sets the message substituted when a derived
// message is blank. Default [DefaultFallbackMessage].
func WithFallbackMessage(msg string) Option {
	return func(c *Config) { c.fallbackMsg = msg }
}

// FallbackCode returns the configured fallback Code. Nil-safe.
func (c *Config) FallbackCode() Code {
	if c == nil || c.fallbackCode.IsZero() {
		return Code{id: DefaultFallbackCode}
	}
	return c.fallbackCode
}

// FallbackMessage returns the configured fallback message. Nil-safe.
func (c *Config) FallbackMessage() string {
	if c == nil || blank(c.fallbackMsg) {
		return DefaultFallbackMessage
	}
	return c.fallbackMsg
}

// Captured returns the number of errors and panics swallowed at capture
// boundaries using this Config. Always 0 for a nil Config.
func (c *Config) Captured() uint64 {
	if c == nil {
		return 0
	}
	return c.captured.Load()
}

// codeFactory returns the derivation override, nil for defaults. Nil-safe.
func (c *Config) codeFactory() CodeFactory {
	if c == nil {
		return nil
	}
	return c.factory
}

// capture routes one swallowed error through the configured logger and
// bumps the counter. Invoked exactly once per captured failure. Nil-safe:
// with no Config the logger is a no-op and nothing escapes.
func (c *Config) capture(err error) {
	if c == nil {
		return
	}
	c.captured.Add(1)
	if c.logger != nil {
		c.logger(err)
	}
}
