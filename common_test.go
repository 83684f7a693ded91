// Copyright (c) 2025-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multiaddr

import (
	"encoding/hex"
	"testing"

	"github.com/multiformats/go-multihash"
)

// testHashB58 is the base58 text form of the encoded multihash that is used
// as the content hash payload throughout the tests.
const testHashB58 = "QmcgpsyWgH8Y8ajJz1Cu72KnS5uo2Aa2LpzU7kinSupNKC"

// hexToBytes converts the passed hex string into bytes and will panic if there
// is an error.  This is only provided for the hard-coded constants so errors in
// the source code can be detected.  It will only (and must only) be called with
// hard-coded values.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

// testHashBytes returns the encoded multihash whose base58 text form is
// testHashB58.  It is a sha2-256 multihash, so it consists of the code 0x12
// and the digest length 0x20 followed by 32 bytes of digest.
func testHashBytes() []byte {
	return hexToBytes("1220d52ebb89d85b02a284948203a62ff28389c57c9f42be" +
		"ec4ec20db76a68911c0b")
}

// testHash returns the multihash that is used as the content hash payload
// throughout the tests.
func testHash(t *testing.T) multihash.Multihash {
	t.Helper()

	hash, err := multihash.Cast(testHashBytes())
	if err != nil {
		t.Fatalf("Cast: unexpected error %v", err)
	}
	return hash
}

// baseAddress returns an address composed of a host, a transport, and a
// content hash, which is the usual shape of a full peer address, for use in
// the tests.  Its text form is:
//
//	/ip4/104.131.131.82/tcp/4001/ipfs/<testHashB58>
func baseAddress(t *testing.T) Address {
	t.Helper()

	return NewAddress(NewIP4Segment([4]byte{104, 131, 131, 82}),
		NewTCPSegment(4001), NewIPFSSegment(testHash(t)))
}

// baseAddressEncoded returns the binary wire encoding of the address returned
// by baseAddress.
func baseAddressEncoded() []byte {
	encoded := []byte{
		0x04,                   // SegmentIP4
		0x68, 0x83, 0x83, 0x52, // 104.131.131.82
		0x06,       // SegmentTCP
		0x0f, 0xa1, // Port 4001
		0xa5, 0x03, // SegmentIPFS
		0x22, // Hash length 34
	}
	return append(encoded, testHashBytes()...)
}
