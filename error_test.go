// Copyright (c) 2025-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multiaddr

import (
	"errors"
	"io"
	"testing"
)

// TestErrorKindStringer tests the stringized output for the ErrorKind type.
func TestErrorKindStringer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrInvalidFormat, "ErrInvalidFormat"},
		{ErrUnknownSegment, "ErrUnknownSegment"},
		{ErrMissingData, "ErrMissingData"},
		{ErrInvalidIP, "ErrInvalidIP"},
		{ErrInvalidPort, "ErrInvalidPort"},
		{ErrInvalidBase58, "ErrInvalidBase58"},
		{ErrInvalidHash, "ErrInvalidHash"},
		{ErrHashTooLong, "ErrHashTooLong"},
		{ErrInvalidVarInt, "ErrInvalidVarInt"},
		{ErrExtraBytes, "ErrExtraBytes"},
		{ErrUnsupportedAddress, "ErrUnsupportedAddress"},
	}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestError tests the error output for the Error type.
func TestError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   Error
		want string
	}{{
		Error{Description: "some error"},
		"some error",
	}, {
		Error{Description: "human-readable error"},
		"human-readable error",
	}}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("Error #%d\n got: %s want: %s", i, result,
				test.want)
			continue
		}
	}
}

// TestErrorKindIsAs ensures both ErrorKind and Error can be identified as being
// a specific error kind via errors.Is and unwrapped via errors.As.
func TestErrorKindIsAs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
		wantAs    ErrorKind
	}{{
		name:      "ErrInvalidFormat == ErrInvalidFormat",
		err:       ErrInvalidFormat,
		target:    ErrInvalidFormat,
		wantMatch: true,
		wantAs:    ErrInvalidFormat,
	}, {
		name:      "Error.ErrInvalidFormat == ErrInvalidFormat",
		err:       makeError(ErrInvalidFormat, ""),
		target:    ErrInvalidFormat,
		wantMatch: true,
		wantAs:    ErrInvalidFormat,
	}, {
		name:      "Error.ErrInvalidFormat == Error.ErrInvalidFormat",
		err:       makeError(ErrInvalidFormat, ""),
		target:    makeError(ErrInvalidFormat, ""),
		wantMatch: true,
		wantAs:    ErrInvalidFormat,
	}, {
		name:      "ErrInvalidFormat != ErrUnknownSegment",
		err:       ErrInvalidFormat,
		target:    ErrUnknownSegment,
		wantMatch: false,
		wantAs:    ErrInvalidFormat,
	}, {
		name:      "Error.ErrInvalidFormat != ErrUnknownSegment",
		err:       makeError(ErrInvalidFormat, ""),
		target:    ErrUnknownSegment,
		wantMatch: false,
		wantAs:    ErrInvalidFormat,
	}, {
		name:      "ErrInvalidFormat != Error.ErrUnknownSegment",
		err:       ErrInvalidFormat,
		target:    makeError(ErrUnknownSegment, ""),
		wantMatch: false,
		wantAs:    ErrInvalidFormat,
	}, {
		name:      "Error.ErrInvalidFormat != Error.ErrUnknownSegment",
		err:       makeError(ErrInvalidFormat, ""),
		target:    makeError(ErrUnknownSegment, ""),
		wantMatch: false,
		wantAs:    ErrInvalidFormat,
	}, {
		name:      "Error.ErrInvalidHash != io.EOF",
		err:       makeError(ErrInvalidHash, ""),
		target:    io.EOF,
		wantMatch: false,
		wantAs:    ErrInvalidHash,
	}}
	for _, test := range tests {
		// Ensure the error matches or not depending on the expected result.
		result := errors.Is(test.err, test.target)
		if result != test.wantMatch {
			t.Errorf("%s: incorrect error identification -- got %v, want %v",
				test.name, result, test.wantMatch)
			continue
		}

		// Ensure the underlying error kind can be unwrapped and is the
		// expected kind.
		var kind ErrorKind
		if !errors.As(test.err, &kind) {
			t.Errorf("%s: unable to unwrap to error kind", test.name)
			continue
		}
		if kind != test.wantAs {
			t.Errorf("%s: unexpected unwrapped error kind -- got %v, want %v",
				test.name, kind, test.wantAs)
			continue
		}
	}
}
