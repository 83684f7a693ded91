// Copyright (c) 2025-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multiaddr

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidFormat is returned when the text form of an address does
	// not begin with the '/' delimiter.
	ErrInvalidFormat = ErrorKind("ErrInvalidFormat")

	// ErrUnknownSegment is returned when a segment name in the text form or
	// a segment code in the binary form does not match any supported
	// variant.
	ErrUnknownSegment = ErrorKind("ErrUnknownSegment")

	// ErrMissingData is returned when a segment in the text form requires a
	// payload but no further token remains.
	ErrMissingData = ErrorKind("ErrMissingData")

	// ErrInvalidIP is returned when an IPv4 or IPv6 payload token is not a
	// valid textual address of the required family.
	ErrInvalidIP = ErrorKind("ErrInvalidIP")

	// ErrInvalidPort is returned when a port payload token is not an
	// unsigned 16-bit decimal integer.
	ErrInvalidPort = ErrorKind("ErrInvalidPort")

	// ErrInvalidBase58 is returned when a content hash payload token
	// contains characters outside of the base58 alphabet.
	ErrInvalidBase58 = ErrorKind("ErrInvalidBase58")

	// ErrInvalidHash is returned when content hash bytes do not form a
	// structurally valid multihash.
	ErrInvalidHash = ErrorKind("ErrInvalidHash")

	// ErrHashTooLong is returned when the declared length of a content hash
	// in the binary form exceeds the maximum allowed.
	ErrHashTooLong = ErrorKind("ErrHashTooLong")

	// ErrInvalidVarInt is returned when a variable length integer in the
	// binary form is not minimally encoded or exceeds the supported range.
	ErrInvalidVarInt = ErrorKind("ErrInvalidVarInt")

	// ErrExtraBytes is returned when undecoded bytes remain after the final
	// segment of the binary form or after a complete content hash within
	// its declared length window.
	ErrExtraBytes = ErrorKind("ErrExtraBytes")

	// ErrUnsupportedAddress is returned when an address does not have the
	// segment layout required by a conversion, such as converting an
	// address without a leading IP and TCP pair to a TCP address.
	ErrUnsupportedAddress = ErrorKind("ErrUnsupportedAddress")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to decoding or encoding multiaddrs.  It
// has full support for errors.Is and errors.As, so the caller can ascertain
// the specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
