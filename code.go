// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sum

import (
	"errors"
	"fmt"
	"strings"
)

// Code is an immutable structured error identifier.
// Two Codes are equal iff their identifier strings are equal.
type Code struct {
	id string
}

// NewCode returns a Code wrapping id. id must be non-empty; derivation
// paths ([CodeOf], [ErrFrom]) substitute the configured fallback for
// blank identifiers, direct construction does not.
func NewCode(id string) Code {
	return Code{id: id}
}

// String returns the identifier.
func (c Code) String() string {
	return c.id
}

// IsZero reports whether c is the zero Code (empty identifier).
func (c Code) IsZero() bool {
	return c.id == ""
}

// Err is the canonical failure payload: a Code paired with a
// human-readable message. Err implements error and [Coder].
type Err struct {
	code    Code
	message string
}

// NewErr returns an Err pairing code with message.
func NewErr(code Code, message string) Err {
	return Err{code: code, message: message}
}

// Code returns the structured identifier.
func (e Err) Code() Code {
	return e.code
}

// Message returns the human-readable description.
func (e Err) Message() string {
	return e.message
}

// ErrorCode implements [Coder].
func (e Err) ErrorCode() Code {
	return e.code
}

// Error implements the error interface as "code: message".
func (e Err) Error() string {
	return e.code.id + ": " + e.message
}

// Coder is the structural interface for explicit Code derivation.
// Error and enum-like types implement it to declare their own Code,
// resolved at compile time — no runtime type introspection.
type Coder interface {
	ErrorCode() Code
}

// CodeFactory overrides Code derivation process-wide via
// [WithCodeFactory]. CodeFor returns (code, true) to claim v, or
// (zero, false) to fall through to the default probe chain.
type CodeFactory interface {
	CodeFor(v any) (Code, bool)
}

// CodeFactoryFunc adapts a function to the [CodeFactory] interface.
type CodeFactoryFunc func(v any) (Code, bool)

// CodeFor implements [CodeFactory].
func (f CodeFactoryFunc) CodeFor(v any) (Code, bool) {
	return f(v)
}

// CodeOf derives a Code from an arbitrary value. The probe order is:
// cfg's CodeFactory override, the [Coder] interface, the wrap chain of
// an error value (errors.As), then fmt.Stringer for enum-like constants.
// A blank result at any step falls through; if nothing yields a
// non-blank identifier, the configured fallback code is returned.
//
// CodeOf is pure and deterministic for a fixed cfg, performs no I/O and
// never panics: any panic out of a probed method degrades to the
// fallback.
func CodeOf(cfg *Config, v any) (code Code) {
	defer func() {
		if recover() != nil {
			code = cfg.FallbackCode()
		}
	}()
	if f := cfg.codeFactory(); f != nil {
		if c, ok := f.CodeFor(v); ok && !blank(c.id) {
			return c
		}
	}
	if c, ok := v.(Coder); ok {
		if derived := c.ErrorCode(); !blank(derived.id) {
			return derived
		}
	}
	if err, ok := v.(error); ok {
		var c Coder
		if errors.As(err, &c) {
			if derived := c.ErrorCode(); !blank(derived.id) {
				return derived
			}
		}
	}
	if s, ok := v.(fmt.Stringer); ok {
		if id := strings.TrimSpace(s.String()); id != "" {
			return Code{id: id}
		}
	}
	return cfg.FallbackCode()
}

// ErrFrom derives an Err from a captured error: the Code via [CodeOf],
// the message from err.Error(). A blank message substitutes the
// configured fallback message. Never panics; a nil err yields the
// fallback code and message.
func ErrFrom(cfg *Config, err error) Err {
	if err == nil {
		return Err{code: cfg.FallbackCode(), message: cfg.FallbackMessage()}
	}
	msg := err.Error()
	if blank(msg) {
		msg = cfg.FallbackMessage()
	}
	return Err{code: CodeOf(cfg, err), message: msg}
}

// blank reports whether s is empty or whitespace-only.
func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
