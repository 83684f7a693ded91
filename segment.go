// Copyright (c) 2025-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multiaddr

import (
	"bytes"
	"fmt"
	"net"
	"net/netip"
	"strconv"

	"github.com/mr-tron/base58"
	"github.com/multiformats/go-multihash"
)

// SegmentType identifies a segment variant.  The numeric value of each type
// is the stable wire code the variant is identified by in the binary
// encoding, while its string form is the stable name the variant is
// identified by in the text encoding.
type SegmentType uint16

// These constants define the supported segment variants along with their wire
// codes.
const (
	// SegmentIP4 is an IPv4 address carried as 4 raw bytes in network
	// order.
	SegmentIP4 SegmentType = 4

	// SegmentTCP is a TCP port carried as 2 big-endian bytes.
	SegmentTCP SegmentType = 6

	// SegmentUDP is a UDP port carried as 2 big-endian bytes.
	SegmentUDP SegmentType = 17

	// SegmentDCCP is a DCCP port carried as 2 big-endian bytes.
	SegmentDCCP SegmentType = 33

	// SegmentIP6 is an IPv6 address carried as 16 raw bytes in network
	// order.
	SegmentIP6 SegmentType = 41

	// SegmentSCTP is an SCTP port carried as 2 big-endian bytes.
	SegmentSCTP SegmentType = 132

	// SegmentUDT is a bare UDT protocol marker with no payload.
	SegmentUDT SegmentType = 301

	// SegmentUTP is a bare uTP protocol marker with no payload.
	SegmentUTP SegmentType = 302

	// SegmentIPFS is a content hash carried as a varint byte length
	// followed by that many bytes of encoded multihash.
	SegmentIPFS SegmentType = 421

	// SegmentHTTPS is a bare HTTPS protocol marker with no payload.
	SegmentHTTPS SegmentType = 443

	// SegmentHTTP is a bare HTTP protocol marker with no payload.
	SegmentHTTP SegmentType = 480
)

// segmentTypeStrings is a map of segment types back to their name for pretty
// printing and for producing the text encoding.  It is the single source of
// truth for the supported variants consulted by both codecs.
var segmentTypeStrings = map[SegmentType]string{
	SegmentIP4:   "ip4",
	SegmentTCP:   "tcp",
	SegmentUDP:   "udp",
	SegmentDCCP:  "dccp",
	SegmentIP6:   "ip6",
	SegmentSCTP:  "sctp",
	SegmentUDT:   "udt",
	SegmentUTP:   "utp",
	SegmentIPFS:  "ipfs",
	SegmentHTTPS: "https",
	SegmentHTTP:  "http",
}

// segmentTypeNames is a map of names back to their segment type.  It is the
// reverse of segmentTypeStrings and is generated at init time so the two can
// never disagree.
var segmentTypeNames = make(map[string]SegmentType)

func init() {
	for styp, name := range segmentTypeStrings {
		segmentTypeNames[name] = styp
	}
}

// String returns the SegmentType in human-readable form, which is also the
// name the variant is identified by in the text encoding.
func (st SegmentType) String() string {
	if s, ok := segmentTypeStrings[st]; ok {
		return s
	}
	return fmt.Sprintf("Unknown SegmentType (%d)", uint16(st))
}

// SegmentTypes returns all supported segment types in increasing wire code
// order.  The returned slice is a fresh copy the caller may modify.
func SegmentTypes() []SegmentType {
	return []SegmentType{SegmentIP4, SegmentTCP, SegmentUDP, SegmentDCCP,
		SegmentIP6, SegmentSCTP, SegmentUDT, SegmentUTP, SegmentIPFS,
		SegmentHTTPS, SegmentHTTP}
}

// Segment is a single typed component of a multiaddr.  Depending on the
// variant it carries an IP address, a port, a content hash, or no payload at
// all.  Segments are immutable once constructed and are safe for concurrent
// access.
//
// The zero value is not a valid segment.  Use one of the New*Segment
// functions or decode an address to obtain valid segments.
type Segment struct {
	typ  SegmentType
	ip   netip.Addr
	port uint16
	hash multihash.Multihash
}

// NewIP4Segment returns an IPv4 address segment for the given address bytes
// in network order.
func NewIP4Segment(addr [4]byte) Segment {
	return Segment{typ: SegmentIP4, ip: netip.AddrFrom4(addr)}
}

// NewIP6Segment returns an IPv6 address segment for the given address bytes
// in network order.  An IPv4-mapped IPv6 address is retained in its IPv6 form
// and is not equal to the corresponding IPv4 segment.
func NewIP6Segment(addr [16]byte) Segment {
	return Segment{typ: SegmentIP6, ip: netip.AddrFrom16(addr)}
}

// NewIPSegment returns an IPv4 or IPv6 address segment depending on the form
// of the given IP address.  Addresses that are representable as IPv4, which
// includes IPv4-mapped IPv6 addresses, produce an IPv4 segment.
func NewIPSegment(ip net.IP) (Segment, error) {
	if ip4 := ip.To4(); ip4 != nil {
		addr, _ := netip.AddrFromSlice(ip4)
		return Segment{typ: SegmentIP4, ip: addr}, nil
	}
	if ip16 := ip.To16(); ip16 != nil {
		addr, _ := netip.AddrFromSlice(ip16)
		return Segment{typ: SegmentIP6, ip: addr}, nil
	}
	str := fmt.Sprintf("invalid IP address length %d", len(ip))
	return Segment{}, makeError(ErrInvalidIP, str)
}

// NewTCPSegment returns a TCP port segment.
func NewTCPSegment(port uint16) Segment {
	return Segment{typ: SegmentTCP, port: port}
}

// NewUDPSegment returns a UDP port segment.
func NewUDPSegment(port uint16) Segment {
	return Segment{typ: SegmentUDP, port: port}
}

// NewDCCPSegment returns a DCCP port segment.
func NewDCCPSegment(port uint16) Segment {
	return Segment{typ: SegmentDCCP, port: port}
}

// NewSCTPSegment returns an SCTP port segment.
func NewSCTPSegment(port uint16) Segment {
	return Segment{typ: SegmentSCTP, port: port}
}

// NewUDTSegment returns a bare UDT protocol marker segment.
func NewUDTSegment() Segment {
	return Segment{typ: SegmentUDT}
}

// NewUTPSegment returns a bare uTP protocol marker segment.
func NewUTPSegment() Segment {
	return Segment{typ: SegmentUTP}
}

// NewHTTPSegment returns a bare HTTP protocol marker segment.
func NewHTTPSegment() Segment {
	return Segment{typ: SegmentHTTP}
}

// NewHTTPSSegment returns a bare HTTPS protocol marker segment.
func NewHTTPSSegment() Segment {
	return Segment{typ: SegmentHTTPS}
}

// NewIPFSSegment returns a content hash segment carrying the given encoded
// multihash.  The hash bytes are copied, so the caller remains free to modify
// the passed slice.
func NewIPFSSegment(hash multihash.Multihash) Segment {
	h := make(multihash.Multihash, len(hash))
	copy(h, hash)
	return Segment{typ: SegmentIPFS, hash: h}
}

// Type returns the variant of the segment.
func (seg Segment) Type() SegmentType {
	return seg.typ
}

// IPAddr returns the IP address carried by an IPv4 or IPv6 segment.  The zero
// Addr is returned for all other variants.
func (seg Segment) IPAddr() netip.Addr {
	return seg.ip
}

// Port returns the port carried by a TCP, UDP, DCCP, or SCTP segment.  Zero
// is returned for all other variants.
func (seg Segment) Port() uint16 {
	return seg.port
}

// Hash returns a copy of the encoded multihash carried by a content hash
// segment.  Nil is returned for all other variants.
func (seg Segment) Hash() multihash.Multihash {
	if seg.hash == nil {
		return nil
	}
	h := make(multihash.Multihash, len(seg.hash))
	copy(h, seg.hash)
	return h
}

// IsEqual returns whether the segment has the same variant and payload as the
// given segment.
func (seg Segment) IsEqual(other Segment) bool {
	return seg.typ == other.typ && seg.ip == other.ip &&
		seg.port == other.port && bytes.Equal(seg.hash, other.hash)
}

// String returns the segment in its text form, consisting of the '/'
// delimiter, the variant name, and, for variants that carry a payload,
// another delimiter followed by the payload in its canonical text form.
func (seg Segment) String() string {
	switch seg.typ {
	case SegmentIP4, SegmentIP6:
		return "/" + seg.typ.String() + "/" + seg.ip.String()
	case SegmentTCP, SegmentUDP, SegmentDCCP, SegmentSCTP:
		port := strconv.FormatUint(uint64(seg.port), 10)
		return "/" + seg.typ.String() + "/" + port
	case SegmentIPFS:
		return "/" + seg.typ.String() + "/" + base58.Encode(seg.hash)
	}
	return "/" + seg.typ.String()
}
