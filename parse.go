// Copyright (c) 2025-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multiaddr

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/multiformats/go-multihash"
)

// DecodeAddress decodes the text form of a multiaddr into an Address.
//
// The input must begin with the '/' delimiter and consists of segment names
// alternating with their payloads, such as "/ip4/127.0.0.1/tcp/9108".  Marker
// variants have no payload, so only their name appears.  The input "/" is the
// empty address.
//
// Tokens are consumed strictly left to right, so the first offending token
// terminates decoding with an error that identifies it.
func DecodeAddress(addr string) (Address, error) {
	if !strings.HasPrefix(addr, "/") {
		str := fmt.Sprintf("address %q does not begin with /", addr)
		return Address{}, makeError(ErrInvalidFormat, str)
	}
	if addr == "/" {
		return Address{}, nil
	}

	tokens := strings.Split(addr[1:], "/")
	segments := make([]Segment, 0, len(tokens)/2+1)
	for i := 0; i < len(tokens); i++ {
		name := tokens[i]
		styp, ok := segmentTypeNames[name]
		if !ok {
			str := fmt.Sprintf("unrecognized segment type %q", name)
			return Address{}, makeError(ErrUnknownSegment, str)
		}

		// Marker variants consume no payload token.
		switch styp {
		case SegmentUDT, SegmentUTP, SegmentHTTPS, SegmentHTTP:
			segments = append(segments, Segment{typ: styp})
			continue
		}

		i++
		if i >= len(tokens) {
			str := fmt.Sprintf("missing segment data after %q", name)
			return Address{}, makeError(ErrMissingData, str)
		}
		seg, err := parseSegmentData(styp, tokens[i])
		if err != nil {
			return Address{}, err
		}
		segments = append(segments, seg)
	}

	return Address{segments: segments}, nil
}

// parseSegmentData parses the payload token of a segment according to the
// grammar of the given variant and returns the assembled segment.
func parseSegmentData(styp SegmentType, data string) (Segment, error) {
	switch styp {
	case SegmentIP4:
		// Dotted decimal form only.  IPv6 forms, including the
		// IPv4-mapped form, belong to ip6 segments.
		ip, err := netip.ParseAddr(data)
		if err != nil || !ip.Is4() {
			str := fmt.Sprintf("invalid IPv4 address %q", data)
			return Segment{}, makeError(ErrInvalidIP, str)
		}
		return Segment{typ: SegmentIP4, ip: ip}, nil

	case SegmentIP6:
		// Any IPv6 textual form, including the IPv4-mapped form, which
		// is retained as such.  Dotted decimal and zone-qualified
		// forms are rejected.
		ip, err := netip.ParseAddr(data)
		if err != nil || ip.Is4() || ip.Zone() != "" {
			str := fmt.Sprintf("invalid IPv6 address %q", data)
			return Segment{}, makeError(ErrInvalidIP, str)
		}
		return Segment{typ: SegmentIP6, ip: ip}, nil

	case SegmentTCP, SegmentUDP, SegmentDCCP, SegmentSCTP:
		port, err := strconv.ParseUint(data, 10, 16)
		if err != nil {
			str := fmt.Sprintf("invalid port %q: %v", data, err)
			return Segment{}, makeError(ErrInvalidPort, str)
		}
		return Segment{typ: styp, port: uint16(port)}, nil

	case SegmentIPFS:
		decoded, err := base58.Decode(data)
		if err != nil {
			str := fmt.Sprintf("invalid base58 content hash %q: %v",
				data, err)
			return Segment{}, makeError(ErrInvalidBase58, str)
		}
		n, hash, err := multihash.MHFromBytes(decoded)
		if err != nil {
			str := fmt.Sprintf("invalid content hash %q: %v", data,
				err)
			return Segment{}, makeError(ErrInvalidHash, str)
		}
		if n != len(decoded) {
			str := fmt.Sprintf("content hash %q has %d trailing "+
				"bytes", data, len(decoded)-n)
			return Segment{}, makeError(ErrInvalidHash, str)
		}
		return NewIPFSSegment(hash), nil
	}

	str := fmt.Sprintf("unrecognized segment type %q", styp)
	return Segment{}, makeError(ErrUnknownSegment, str)
}
