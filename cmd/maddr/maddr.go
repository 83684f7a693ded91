// Copyright (c) 2025-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// maddr is a utility for converting multiaddrs between their text and binary
// encodings and inspecting the segments they are composed of.
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/decred/go-multiaddr"
	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"
	"github.com/multiformats/go-multihash"

	// Register the full set of hash algorithms selectable with -a.
	_ "github.com/multiformats/go-multihash/register/all"
)

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

func usage(parser *flags.Parser) {
	parser.WriteHelp(os.Stderr)
	os.Exit(2)
}

type config struct {
	Decode  bool   `short:"d" long:"decode" description:"interpret the address argument as the hex encoded binary form"`
	Hex     bool   `short:"x" long:"hex" description:"print the hex encoded binary form of the address"`
	Sum     string `short:"s" long:"sum" description:"hash the named file and append the result as an ipfs segment"`
	Algo    string `short:"a" long:"algo" description:"hash algorithm used by -s (e.g. sha2-256, sha3-256, blake3)"`
	List    bool   `short:"l" long:"list" description:"list the supported segment types and exit"`
	Debug   bool   `long:"debug" description:"enable debug logging"`
	Version bool   `short:"V" long:"version" description:"print version information and exit"`
}

// listSegmentTypes writes the supported segment types along with their wire
// codes to w.
func listSegmentTypes(w io.Writer) {
	fmt.Fprintln(w, "code  name")
	for _, styp := range multiaddr.SegmentTypes() {
		fmt.Fprintf(w, "%4d  %v\n", uint16(styp), styp)
	}
}

// describeSegments writes one line per segment of the address to w with the
// payload in expanded form, including the algorithm and digest of content
// hash segments.
func describeSegments(w io.Writer, addr multiaddr.Address) {
	for _, seg := range addr.Segments() {
		switch seg.Type() {
		case multiaddr.SegmentIP4, multiaddr.SegmentIP6:
			fmt.Fprintf(w, "  %-5v %v\n", seg.Type(), seg.IPAddr())

		case multiaddr.SegmentTCP, multiaddr.SegmentUDP,
			multiaddr.SegmentDCCP, multiaddr.SegmentSCTP:

			fmt.Fprintf(w, "  %-5v %d\n", seg.Type(), seg.Port())

		case multiaddr.SegmentIPFS:
			hash := seg.Hash()
			dm, err := multihash.Decode(hash)
			if err != nil {
				fmt.Fprintf(w, "  %-5v %x\n", seg.Type(), hash)
				continue
			}
			fmt.Fprintf(w, "  %-5v %s %x\n", seg.Type(), dm.Name,
				dm.Digest)

		default:
			fmt.Fprintf(w, "  %v\n", seg.Type())
		}
	}
}

// sumFile hashes the contents of the named file with the given multihash
// algorithm and returns the resulting content hash segment.
func sumFile(name, algo string) (multiaddr.Segment, error) {
	code, ok := multihash.Names[algo]
	if !ok {
		return multiaddr.Segment{}, fmt.Errorf("unknown hash "+
			"algorithm %q", algo)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return multiaddr.Segment{}, err
	}
	hash, err := multihash.Sum(data, code, -1)
	if err != nil {
		return multiaddr.Segment{}, fmt.Errorf("hash %s: %w", name, err)
	}
	return multiaddr.NewIPFSSegment(hash), nil
}

func main() {
	cfg := config{
		Algo: "sha2-256",
	}
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS] address"
	args, err := parser.Parse()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) {
			if e.Type != flags.ErrHelp {
				os.Exit(1)
			}
			os.Exit(0)
		}
		os.Exit(1)
	}

	if cfg.Version {
		fmt.Printf("maddr version %s\n", version())
		return
	}
	if cfg.List {
		listSegmentTypes(os.Stdout)
		return
	}

	log := slog.NewBackend(os.Stderr).Logger("MADR")
	if cfg.Debug {
		log.SetLevel(slog.LevelDebug)
	}

	if len(args) != 1 {
		usage(parser)
	}

	// Obtain the address from whichever encoding was provided.
	var addr multiaddr.Address
	if cfg.Decode {
		buf, err := hex.DecodeString(args[0])
		if err != nil {
			fatalf("invalid hex address: %v\n", err)
		}
		addr, err = multiaddr.NewAddressFromBytes(buf)
		if err != nil {
			fatalf("decode address: %v\n", err)
		}
		log.Debugf("Decoded %d segments from %d bytes", addr.Len(),
			len(buf))
	} else {
		addr, err = multiaddr.DecodeAddress(args[0])
		if err != nil {
			fatalf("decode address: %v\n", err)
		}
		log.Debugf("Decoded %d segments", addr.Len())
	}

	// Hash the requested file and append the result as a trailing content
	// hash segment.
	if cfg.Sum != "" {
		seg, err := sumFile(cfg.Sum, cfg.Algo)
		if err != nil {
			fatalf("%v\n", err)
		}
		log.Debugf("Appending %v for %s", seg, cfg.Sum)
		addr = addr.Append(seg)
	}

	fmt.Println(addr)
	describeSegments(os.Stdout, addr)
	if cfg.Hex {
		buf, err := addr.Bytes()
		if err != nil {
			fatalf("serialize address: %v\n", err)
		}
		fmt.Printf("%x\n", buf)
	}
}
