// Copyright (c) 2025-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multiaddr

import (
	"fmt"
	"net"
	"strings"
)

// Address is an ordered sequence of segments describing a layered network
// protocol stack, such as an IPv4 address carrying TCP on a given port.
// Segment order is semantically significant and duplicate segments are
// permitted.  The empty sequence is a valid address.
//
// Addresses are immutable once constructed, so they are safe for concurrent
// access without synchronization.  The zero value is the empty address.
type Address struct {
	segments []Segment
}

// NewAddress returns an address composed of the given segments in order.  The
// segments are copied, so the caller remains free to modify the passed slice.
func NewAddress(segments ...Segment) Address {
	if len(segments) == 0 {
		return Address{}
	}
	segs := make([]Segment, len(segments))
	copy(segs, segments)
	return Address{segments: segs}
}

// Len returns the number of segments in the address.
func (addr Address) Len() int {
	return len(addr.segments)
}

// Segments returns the ordered segments the address is composed of.  The
// returned slice is a fresh copy the caller may modify.
func (addr Address) Segments() []Segment {
	if len(addr.segments) == 0 {
		return nil
	}
	segs := make([]Segment, len(addr.segments))
	copy(segs, addr.segments)
	return segs
}

// IsEqual returns whether the address is composed of the same segment
// sequence as the given address.
func (addr Address) IsEqual(other Address) bool {
	if len(addr.segments) != len(other.segments) {
		return false
	}
	for i := range addr.segments {
		if !addr.segments[i].IsEqual(other.segments[i]) {
			return false
		}
	}
	return true
}

// Append returns a new address with the given segments appended to the
// receiver's sequence.  Neither the receiver nor the arguments are modified.
func (addr Address) Append(segments ...Segment) Address {
	if len(segments) == 0 {
		return addr
	}
	segs := make([]Segment, 0, len(addr.segments)+len(segments))
	segs = append(segs, addr.segments...)
	segs = append(segs, segments...)
	return Address{segments: segs}
}

// Encapsulate returns a new address consisting of the receiver's segment
// sequence followed by the segment sequence of the given address.
func (addr Address) Encapsulate(other Address) Address {
	return addr.Append(other.segments...)
}

// SplitLast returns the address with its final segment removed along with
// that final segment.  The boolean indicates whether a segment was split
// off, which is only false for the empty address.  The receiver is not
// modified.
//
// This is the usual way to peel a trailing content hash identifier off of a
// routing prefix.
func (addr Address) SplitLast() (Address, Segment, bool) {
	if len(addr.segments) == 0 {
		return Address{}, Segment{}, false
	}
	last := len(addr.segments) - 1
	return NewAddress(addr.segments[:last]...), addr.segments[last], true
}

// String returns the address in its text form, which is the concatenation of
// the text forms of its segments.  The empty address renders to the empty
// string.
func (addr Address) String() string {
	var builder strings.Builder
	for _, seg := range addr.segments {
		builder.WriteString(seg.String())
	}
	return builder.String()
}

// MarshalText implements the encoding.TextMarshaler interface by rendering
// the address in its text form.
func (addr Address) MarshalText() ([]byte, error) {
	return []byte(addr.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface by decoding
// the text form of an address.  Empty text is the empty address, mirroring
// MarshalText.
func (addr *Address) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*addr = Address{}
		return nil
	}
	decoded, err := DecodeAddress(string(text))
	if err != nil {
		return err
	}
	*addr = decoded
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface by
// producing the binary wire encoding of the address.
func (addr Address) MarshalBinary() ([]byte, error) {
	return addr.Bytes()
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface by
// decoding the binary wire encoding of an address.
func (addr *Address) UnmarshalBinary(data []byte) error {
	decoded, err := NewAddressFromBytes(data)
	if err != nil {
		return err
	}
	*addr = decoded
	return nil
}

// TCPAddr converts an address that begins with an IP segment followed by a
// TCP segment into the equivalent net.TCPAddr.  Any further segments are
// ignored.  This is a pure conversion that performs no name resolution or
// network activity.
func (addr Address) TCPAddr() (*net.TCPAddr, error) {
	ip, port, err := addr.ipPortPair(SegmentTCP)
	if err != nil {
		return nil, err
	}
	return &net.TCPAddr{IP: ip, Port: int(port)}, nil
}

// UDPAddr converts an address that begins with an IP segment followed by a
// UDP segment into the equivalent net.UDPAddr.  Any further segments are
// ignored.  This is a pure conversion that performs no name resolution or
// network activity.
func (addr Address) UDPAddr() (*net.UDPAddr, error) {
	ip, port, err := addr.ipPortPair(SegmentUDP)
	if err != nil {
		return nil, err
	}
	return &net.UDPAddr{IP: ip, Port: int(port)}, nil
}

// ipPortPair extracts the IP and port of an address that begins with an IPv4
// or IPv6 segment followed by a port segment of the given transport variant.
func (addr Address) ipPortPair(transport SegmentType) (net.IP, uint16, error) {
	if len(addr.segments) < 2 {
		str := fmt.Sprintf("address %q does not begin with an IP and "+
			"%v segment pair", addr, transport)
		return nil, 0, makeError(ErrUnsupportedAddress, str)
	}
	ipSeg, portSeg := addr.segments[0], addr.segments[1]
	if ipSeg.typ != SegmentIP4 && ipSeg.typ != SegmentIP6 {
		str := fmt.Sprintf("address %q does not begin with an IP "+
			"segment", addr)
		return nil, 0, makeError(ErrUnsupportedAddress, str)
	}
	if portSeg.typ != transport {
		str := fmt.Sprintf("address %q does not carry a %v segment "+
			"after its IP segment", addr, transport)
		return nil, 0, makeError(ErrUnsupportedAddress, str)
	}
	return net.IP(ipSeg.ip.AsSlice()), portSeg.port, nil
}
