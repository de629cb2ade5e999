package adjacency

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hupe1980/bitgraph"
	"github.com/hupe1980/bitgraph/internal/bitset"
	"github.com/hupe1980/bitgraph/internal/codec"
	"github.com/hupe1980/bitgraph/internal/conv"
)

// Compression selects the snapshot payload codec.
type Compression = codec.Type

// Supported snapshot compressions.
const (
	CompressionNone = codec.None
	CompressionLZ4  = codec.LZ4
	CompressionZSTD = codec.ZSTD
)

// ParseCompression parses "none", "lz4" or "zstd".
func ParseCompression(s string) (Compression, error) {
	c, err := codec.ParseType(s)
	if err != nil {
		return codec.None, fmt.Errorf("adjacency: %w: %w", err, bitgraph.ErrInvalidArgument)
	}
	return c, nil
}

// SnapshotMagic is the first four bytes of every snapshot.
const SnapshotMagic = "BGRB"

const (
	snapshotVersion    = 1
	snapshotHeaderSize = 32
)

// ErrCorruptSnapshot is returned when a snapshot fails validation.
// It wraps bitgraph.ErrInvalidArgument.
var ErrCorruptSnapshot = fmt.Errorf("adjacency: corrupt snapshot: %w", bitgraph.ErrInvalidArgument)

type snapshotHeader struct {
	Magic       [4]byte
	Version     uint8
	Compression uint8
	Reserved    uint16
	Vertices    uint64
	PayloadLen  uint64
	RawLen      uint64
}

// WriteTo writes an uncompressed snapshot of g to w.
func (g *Bitset) WriteTo(w io.Writer) (int64, error) {
	return g.WriteSnapshot(w, CompressionNone)
}

// WriteSnapshot writes g to w with the requested payload compression. The
// payload is stored raw when compression does not pay off.
func (g *Bitset) WriteSnapshot(w io.Writer, c Compression) (int64, error) {
	if !c.Valid() {
		return 0, fmt.Errorf("adjacency: %w: %w", codec.ErrUnknownType, bitgraph.ErrInvalidArgument)
	}
	raw := bitset.AppendWords(make([]byte, 0, len(g.words)*8), g.words)

	payload, used, err := codec.Compress(raw, c)
	if err != nil {
		return 0, fmt.Errorf("adjacency: compress snapshot: %w", err)
	}

	vertices, err := conv.IntToUint64(g.n)
	if err != nil {
		return 0, err
	}
	h := snapshotHeader{
		Version:     snapshotVersion,
		Compression: uint8(used),
		Vertices:    vertices,
		PayloadLen:  uint64(len(payload)),
		RawLen:      uint64(len(raw)),
	}
	copy(h.Magic[:], SnapshotMagic)

	var buf bytes.Buffer
	buf.Grow(snapshotHeaderSize)
	if err := binary.Write(&buf, binary.LittleEndian, &h); err != nil {
		return 0, err
	}

	n, err := w.Write(buf.Bytes())
	total := int64(n)
	if err != nil {
		return total, err
	}
	n, err = w.Write(payload)
	total += int64(n)
	return total, err
}

// ReadSnapshot reads a snapshot written by WriteSnapshot.
func ReadSnapshot(r io.Reader) (*Bitset, error) {
	var h snapshotHeader
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrCorruptSnapshot, err)
	}
	if string(h.Magic[:]) != SnapshotMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrCorruptSnapshot, h.Magic[:])
	}
	if h.Version != snapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorruptSnapshot, h.Version)
	}
	c := codec.Type(h.Compression)
	if !c.Valid() {
		return nil, fmt.Errorf("%w: unknown compression %d", ErrCorruptSnapshot, h.Compression)
	}

	n, err := conv.Uint64ToInt(h.Vertices)
	if err != nil {
		return nil, fmt.Errorf("%w: vertex count: %w", ErrCorruptSnapshot, err)
	}
	if err := bitgraph.CheckCount("adjacency.ReadSnapshot", n); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}

	// Validate lengths before allocating anything sized by the header.
	wantRaw, err := conv.MulInt(n, bitset.Words(n)*8)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	rawLen, err := conv.Uint64ToInt(h.RawLen)
	if err != nil {
		return nil, fmt.Errorf("%w: raw length: %w", ErrCorruptSnapshot, err)
	}
	if rawLen != wantRaw {
		return nil, fmt.Errorf("%w: raw length %d, want %d", ErrCorruptSnapshot, rawLen, wantRaw)
	}
	payloadLen, err := conv.Uint64ToInt(h.PayloadLen)
	if err != nil {
		return nil, fmt.Errorf("%w: payload length: %w", ErrCorruptSnapshot, err)
	}
	if err := codec.CheckSize(c, payloadLen, rawLen); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}

	payload, err := io.ReadAll(io.LimitReader(r, int64(payloadLen)))
	if err != nil {
		return nil, err
	}
	if len(payload) != payloadLen {
		return nil, fmt.Errorf("%w: truncated payload: %d of %d bytes", ErrCorruptSnapshot, len(payload), payloadLen)
	}

	raw, err := codec.Decompress(payload, c, rawLen)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	g, err := NewBitset(n)
	if err != nil {
		return nil, err
	}
	if err := bitset.DecodeWords(g.words, raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	if err := g.validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// ReadFrom replaces g with the snapshot read from r.
func (g *Bitset) ReadFrom(r io.Reader) (int64, error) {
	cr := &countingReader{r: r}
	loaded, err := ReadSnapshot(cr)
	if err != nil {
		return cr.n, err
	}
	*g = *loaded
	return cr.n, nil
}

// validate checks the padding and symmetry invariants of a decoded matrix.
func (g *Bitset) validate() error {
	for u := 0; u < g.n; u++ {
		row := g.row(u)
		if row.HasBitsFrom(g.n) {
			return fmt.Errorf("%w: padding bits set in row %d", ErrCorruptSnapshot, u)
		}
		for v, ok := row.NextSet(0, g.n); ok; v, ok = row.NextSet(v+1, g.n) {
			if !g.row(v).Contains(u) {
				return fmt.Errorf("%w: edge (%d, %d) is not symmetric", ErrCorruptSnapshot, u, v)
			}
		}
	}
	return nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
