// Copyright (c) 2025-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package multiaddr implements a self-describing network address format.

# Multiaddr Overview

A multiaddr describes a layered network protocol stack as an ordered sequence
of typed segments.  Each segment identifies one protocol and, depending on
the protocol, carries a parameter such as an IPv4 or IPv6 address, a port, or
a content hash.  For example, the address of a TCP service on a known IPv4
host is two segments, and appending a content hash segment to it names a
specific peer reachable at that service:

	/ip4/104.131.131.82/tcp/4001/ipfs/QmcgpsyWgH8Y8ajJz1Cu72KnS5uo2Aa2LpzU7kinSupNKC

Every address has two interchangeable encodings that this package converts
between through the shared Address and Segment model:

  - A text form, shown above, in which each segment contributes a '/'
    delimited name and payload.  Use DecodeAddress and the String method.

  - A binary wire form in which each segment contributes its variant's wire
    code as a varint followed by a payload of known shape, with content
    hashes framed by a varint byte length.  Use Serialize, Deserialize,
    Bytes, and NewAddressFromBytes.

The binary form deliberately has no address-level length header or
terminator, so a caller reading from a stream must bound the stream to
exactly one address's worth of bytes.  The reader treats clean stream
exhaustion between segments as the end of the address and anything else as an
error.

Addresses and segments are immutable once constructed and may therefore be
shared freely across goroutines.

# Errors

Errors returned by this package are either the raw errors of an underlying
reader or writer, such as io.ErrUnexpectedEOF for a truncated stream, or an
Error whose ErrorKind describes the malformed input.  Both support the
standard library errors.Is and errors.As functions, so callers can
distinguish, for example, an unrecognized segment name from an invalid port
literal:

	addr, err := multiaddr.DecodeAddress("/ip4/127.0.0.1/tcp/staking")
	if errors.Is(err, multiaddr.ErrInvalidPort) {
		// The port token is not a decimal uint16.
	}
*/
package multiaddr
