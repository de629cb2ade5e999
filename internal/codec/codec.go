package codec

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Type defines the compression algorithm used for a payload.
type Type uint8

const (
	// None indicates no compression.
	None Type = 0
	// LZ4 indicates LZ4 block compression (fast, good for hot data).
	LZ4 Type = 1
	// ZSTD indicates ZSTD compression (better ratio, good for cold data).
	ZSTD Type = 2
)

// ErrUnknownType is returned for an unrecognized compression type.
var ErrUnknownType = errors.New("codec: unknown compression type")

// ErrRawSize is returned when a recorded raw size cannot be produced from
// the payload.
var ErrRawSize = errors.New("codec: raw size out of bounds for payload")

// Worst-case expansion of one payload byte. An LZ4 match length grows by
// 255 per extension byte; a ZSTD RLE block is 4 bytes for up to 128 KiB.
const (
	maxLZ4Ratio  = 255
	maxZSTDRatio = 1 << 15
)

// String returns the flag spelling of t.
func (t Type) String() string {
	switch t {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case ZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// ParseType parses "none", "lz4" or "zstd" (case-insensitive).
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return None, nil
	case "lz4":
		return LZ4, nil
	case "zstd":
		return ZSTD, nil
	default:
		return None, fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
}

// Valid reports whether t is a known type.
func (t Type) Valid() bool {
	return t <= ZSTD
}

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() (*zstd.Encoder, error) {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder), nil
	}
	return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
}

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil)
}

// Compress compresses data with t.
//
// It returns the payload and the type actually used: when compression does
// not shrink the data below 90% of its size the raw data is returned with
// None, so callers must persist the returned type rather than t.
func Compress(data []byte, t Type) ([]byte, Type, error) {
	if t == None || len(data) == 0 {
		return data, None, nil
	}

	var (
		compressed []byte
		err        error
	)

	switch t {
	case LZ4:
		compressed, err = compressLZ4(data)
	case ZSTD:
		compressed, err = compressZSTD(data)
	default:
		return nil, None, fmt.Errorf("%w: %d", ErrUnknownType, t)
	}
	if err != nil {
		return nil, None, err
	}

	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*0.9 {
		return data, None, nil
	}
	return compressed, t, nil
}

func compressLZ4(data []byte) ([]byte, error) {
	compressed := make([]byte, lz4.CompressBlockBound(len(data)))

	n, err := lz4.CompressBlock(data, compressed, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil // Incompressible
	}
	return compressed[:n], nil
}

func compressZSTD(data []byte) ([]byte, error) {
	enc, err := getZstdEncoder()
	if err != nil {
		return nil, err
	}
	defer zstdEncoderPool.Put(enc)

	return enc.EncodeAll(data, nil), nil
}

// CheckSize verifies that a payload of payloadLen bytes compressed with t
// can expand to rawLen bytes. Call it before allocating anything sized by
// rawLen.
func CheckSize(t Type, payloadLen, rawLen int) error {
	if payloadLen < 0 || rawLen < 0 {
		return fmt.Errorf("%w: negative length", ErrRawSize)
	}

	var ratio int
	switch t {
	case None:
		if payloadLen != rawLen {
			return fmt.Errorf("%w: raw payload is %d bytes, expected %d", ErrRawSize, payloadLen, rawLen)
		}
		return nil
	case LZ4:
		ratio = maxLZ4Ratio
	case ZSTD:
		ratio = maxZSTDRatio
	default:
		return fmt.Errorf("%w: %d", ErrUnknownType, t)
	}
	if rawLen/ratio > payloadLen {
		return fmt.Errorf("%w: %d bytes of %s cannot expand to %d", ErrRawSize, payloadLen, t, rawLen)
	}
	return nil
}

// Decompress reverses Compress. rawLen is the uncompressed size recorded by
// the caller; a mismatch is an error.
func Decompress(payload []byte, t Type, rawLen int) ([]byte, error) {
	if err := CheckSize(t, len(payload), rawLen); err != nil {
		return nil, err
	}

	switch t {
	case None:
		return payload, nil

	case LZ4:
		result := make([]byte, rawLen)
		n, err := lz4.UncompressBlock(payload, result)
		if err != nil {
			return nil, fmt.Errorf("codec: lz4: %w", err)
		}
		if n != rawLen {
			return nil, errors.New("codec: decompressed size mismatch")
		}
		return result, nil

	case ZSTD:
		dec, err := getZstdDecoder()
		if err != nil {
			return nil, err
		}
		defer zstdDecoderPool.Put(dec)

		decoded, err := dec.DecodeAll(payload, make([]byte, 0, rawLen))
		if err != nil {
			return nil, fmt.Errorf("codec: zstd: %w", err)
		}
		if len(decoded) != rawLen {
			return nil, errors.New("codec: decompressed size mismatch")
		}
		return decoded, nil

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, t)
	}
}
