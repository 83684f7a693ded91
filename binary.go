// Copyright (c) 2025-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multiaddr

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"net/netip"

	"github.com/multiformats/go-multihash"
	"github.com/multiformats/go-varint"
)

const (
	// maxHashLen is the maximum allowed byte length of the encoded
	// multihash carried by a content hash segment.  It is far larger than
	// any standard multihash while still preventing unreasonable
	// allocations when decoding a corrupt length prefix.
	maxHashLen = 1024
)

// byteReader adapts an io.Reader to io.ByteReader without any internal
// buffering, so the underlying reader is never consumed beyond the bytes the
// decoder actually needs.
type byteReader struct {
	r io.Reader
}

// ReadByte reads and returns a single byte from the underlying reader.
func (br byteReader) ReadByte() (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(br.r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// newByteReader returns r itself when it already implements io.ByteReader and
// an unbuffered adapter around it otherwise.
func newByteReader(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return byteReader{r: r}
}

// readUint16BE reads two bytes from r and interprets them as a big-endian
// unsigned integer.
func readUint16BE(r io.Reader) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, io.ErrUnexpectedEOF
		}
		return 0, err
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

// writeUint16BE writes the given unsigned integer to w as two big-endian
// bytes.
func writeUint16BE(w io.Writer, v uint16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

// writeUvarint writes the varint encoding of the given unsigned integer to w.
func writeUvarint(w io.Writer, v uint64) error {
	var buf [varint.MaxLenUvarint63]byte
	n := varint.PutUvarint(buf[:], v)
	_, err := w.Write(buf[:n])
	return err
}

// readSegment reads the payload of the segment identified by the given wire
// code from r and returns the assembled segment.  The byte reader br must
// wrap the same underlying stream as r.
func readSegment(r io.Reader, br io.ByteReader, code uint64) (Segment, error) {
	if code > math.MaxUint16 {
		str := fmt.Sprintf("invalid segment code %d", code)
		return Segment{}, makeError(ErrUnknownSegment, str)
	}

	styp := SegmentType(code)
	switch styp {
	case SegmentIP4:
		var buf [4]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			if errors.Is(err, io.EOF) {
				return Segment{}, io.ErrUnexpectedEOF
			}
			return Segment{}, err
		}
		return Segment{typ: styp, ip: netip.AddrFrom4(buf)}, nil

	case SegmentIP6:
		var buf [16]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			if errors.Is(err, io.EOF) {
				return Segment{}, io.ErrUnexpectedEOF
			}
			return Segment{}, err
		}
		return Segment{typ: styp, ip: netip.AddrFrom16(buf)}, nil

	case SegmentTCP, SegmentUDP, SegmentDCCP, SegmentSCTP:
		port, err := readUint16BE(r)
		if err != nil {
			return Segment{}, err
		}
		return Segment{typ: styp, port: port}, nil

	case SegmentIPFS:
		// The multihash has no self-terminating structure, so its
		// total encoded length is carried as a varint ahead of it.
		// The decoder is handed exactly that window of bytes and must
		// consume all of it.
		length, err := varint.ReadUvarint(br)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return Segment{}, io.ErrUnexpectedEOF
			}
			if errors.Is(err, varint.ErrOverflow) ||
				errors.Is(err, varint.ErrNotMinimal) {

				str := fmt.Sprintf("invalid content hash "+
					"length varint: %v", err)
				return Segment{}, makeError(ErrInvalidVarInt,
					str)
			}
			return Segment{}, err
		}
		if length > maxHashLen {
			str := fmt.Sprintf("content hash length %d exceeds "+
				"max allowed %d", length, maxHashLen)
			return Segment{}, makeError(ErrHashTooLong, str)
		}
		window := make([]byte, length)
		if _, err := io.ReadFull(r, window); err != nil {
			if errors.Is(err, io.EOF) {
				return Segment{}, io.ErrUnexpectedEOF
			}
			return Segment{}, err
		}
		n, hash, err := multihash.MHFromBytes(window)
		if err != nil {
			str := fmt.Sprintf("invalid content hash: %v", err)
			return Segment{}, makeError(ErrInvalidHash, str)
		}
		if n != len(window) {
			str := fmt.Sprintf("unexpected extra bytes after "+
				"content hash: %d byte hash in %d byte window",
				n, len(window))
			return Segment{}, makeError(ErrExtraBytes, str)
		}
		return NewIPFSSegment(hash), nil

	case SegmentUDT, SegmentUTP, SegmentHTTPS, SegmentHTTP:
		return Segment{typ: styp}, nil
	}

	str := fmt.Sprintf("invalid segment code %d", code)
	return Segment{}, makeError(ErrUnknownSegment, str)
}

// writeSegment writes the wire encoding of the segment to w.
func writeSegment(w io.Writer, seg *Segment) error {
	if _, ok := segmentTypeStrings[seg.typ]; !ok {
		str := fmt.Sprintf("unsupported segment type %v", seg.typ)
		return makeError(ErrUnknownSegment, str)
	}
	if err := writeUvarint(w, uint64(seg.typ)); err != nil {
		return err
	}

	switch seg.typ {
	case SegmentIP4:
		buf := seg.ip.As4()
		_, err := w.Write(buf[:])
		return err

	case SegmentIP6:
		buf := seg.ip.As16()
		_, err := w.Write(buf[:])
		return err

	case SegmentTCP, SegmentUDP, SegmentDCCP, SegmentSCTP:
		return writeUint16BE(w, seg.port)

	case SegmentIPFS:
		if err := writeUvarint(w, uint64(len(seg.hash))); err != nil {
			return err
		}
		_, err := w.Write(seg.hash)
		return err
	}

	// Marker variants are the bare code.
	return nil
}

// SerializeSize returns the number of bytes it would take to serialize the
// segment.
func (seg Segment) SerializeSize() int {
	n := varint.UvarintSize(uint64(seg.typ))
	switch seg.typ {
	case SegmentIP4:
		n += 4
	case SegmentIP6:
		n += 16
	case SegmentTCP, SegmentUDP, SegmentDCCP, SegmentSCTP:
		n += 2
	case SegmentIPFS:
		n += varint.UvarintSize(uint64(len(seg.hash))) + len(seg.hash)
	}
	return n
}

// SerializeSize returns the number of bytes it would take to serialize the
// address.
func (addr *Address) SerializeSize() int {
	var n int
	for i := range addr.segments {
		n += addr.segments[i].SerializeSize()
	}
	return n
}

// Serialize writes the binary wire encoding of the address to w, which is the
// concatenation of the encodings of its segments with no overall length
// header or terminator.  The empty address writes nothing.
//
// Serialization itself cannot fail, so any returned error is from the
// underlying writer.
func (addr *Address) Serialize(w io.Writer) error {
	for i := range addr.segments {
		if err := writeSegment(w, &addr.segments[i]); err != nil {
			return err
		}
	}
	return nil
}

// Bytes returns the binary wire encoding of the address as a byte slice.
func (addr *Address) Bytes() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, addr.SerializeSize()))
	if err := addr.Serialize(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Deserialize decodes an address from its binary wire encoding by reading
// segments from r until the stream is exhausted.  The format carries no
// address-level length or terminator, so the caller must bound r to exactly
// one address's worth of bytes, for example with io.LimitReader.
//
// A stream that ends cleanly between segments is a complete address, and an
// empty stream is the empty address.  A stream that ends anywhere else fails
// with io.ErrUnexpectedEOF, and readable bytes remaining after the final
// segment fail with ErrExtraBytes.  The receiver is not modified unless
// decoding succeeds, though r may have been partially consumed on failure.
func (addr *Address) Deserialize(r io.Reader) error {
	br := newByteReader(r)
	var segments []Segment
	for {
		code, err := varint.ReadUvarint(br)
		if err != nil {
			// Stream exhaustion before the first byte of a new
			// segment code is the end of the address.
			if errors.Is(err, io.EOF) {
				break
			}
			if errors.Is(err, varint.ErrOverflow) ||
				errors.Is(err, varint.ErrNotMinimal) {

				str := fmt.Sprintf("invalid segment code "+
					"varint: %v", err)
				return makeError(ErrInvalidVarInt, str)
			}
			return err
		}

		seg, err := readSegment(r, br, code)
		if err != nil {
			return err
		}
		segments = append(segments, seg)
	}

	// The stream must be fully exhausted since the format has no
	// terminator of its own.
	var probe [1]byte
	if n, _ := r.Read(probe[:]); n > 0 {
		str := "unexpected extra bytes after final segment"
		return makeError(ErrExtraBytes, str)
	}

	addr.segments = segments
	return nil
}

// NewAddressFromBytes decodes an address from its binary wire encoding.  The
// entire slice must be consumed by the decode, and an empty slice is the
// empty address.
func NewAddressFromBytes(b []byte) (Address, error) {
	var addr Address
	if err := addr.Deserialize(bytes.NewReader(b)); err != nil {
		return Address{}, err
	}
	return addr, nil
}
