// Package bytesio provides bounds-checked, endian-aware primitive
// decoders over an in-memory byte slice. Every one of this module's
// binary decoders (BINI, the resource container, UTF) is built on
// top of a single Reader so that "never panic on arbitrary input" only
// has to be gotten right once.
package bytesio

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfBounds is returned whenever a read or seek would cross the
// end of the underlying buffer.
var ErrOutOfBounds = errors.New("bytesio: out of bounds")

// Reader is a seekable cursor over a byte slice. It never grows or
// copies - returned slices alias the buffer - and is safe to share the
// underlying slice with the caller since it never mutates it.
type Reader struct {
	data []byte
	pos  int
}

// New wraps data in a Reader positioned at offset 0.
func New(data []byte) *Reader {
	return &Reader{data: data}
}

// Len returns the total length of the underlying buffer.
func (r *Reader) Len() int { return len(r.data) }

// Pos returns the current cursor offset.
func (r *Reader) Pos() int { return r.pos }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.pos }

// Seek moves the cursor to an absolute offset. It is bounds-checked
// against [0, len(data)]; seeking exactly to the end is legal (it is
// how callers detect they've consumed everything).
func (r *Reader) Seek(offset int) error {
	if offset < 0 || offset > len(r.data) {
		return fmt.Errorf("%w: seek to %d (len %d)", ErrOutOfBounds, offset, len(r.data))
	}
	r.pos = offset
	return nil
}

// Skip advances the cursor by n bytes without returning them.
func (r *Reader) Skip(n int) error {
	return r.Seek(r.pos + n)
}

// Bytes returns the next n bytes and advances the cursor past them.
// The returned slice aliases the underlying buffer; callers must not
// mutate it.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.data) {
		return nil, fmt.Errorf("%w: want %d bytes at %d (len %d)", ErrOutOfBounds, n, r.pos, len(r.data))
	}
	out := r.data[r.pos : r.pos+n]
	r.pos += n
	return out, nil
}

// PeekBytes returns the next n bytes without advancing the cursor.
func (r *Reader) PeekBytes(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.data) {
		return nil, fmt.Errorf("%w: want %d bytes at %d (len %d)", ErrOutOfBounds, n, r.pos, len(r.data))
	}
	return r.data[r.pos : r.pos+n], nil
}

// BytesAt reads n bytes from an absolute offset without disturbing
// the cursor, for callers that have an offset rather than a stream
// position.
func (r *Reader) BytesAt(offset, n int) ([]byte, error) {
	if offset < 0 || n < 0 || offset+n > len(r.data) {
		return nil, fmt.Errorf("%w: want %d bytes at offset %d (len %d)", ErrOutOfBounds, n, offset, len(r.data))
	}
	return r.data[offset : offset+n], nil
}

// Uint8 reads a single byte.
func (r *Reader) Uint8() (uint8, error) {
	b, err := r.Bytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Int8 reads a signed byte.
func (r *Reader) Int8() (int8, error) {
	b, err := r.Uint8()
	return int8(b), err
}

// Uint16LE reads a little-endian 16-bit unsigned integer.
func (r *Reader) Uint16LE() (uint16, error) {
	b, err := r.Bytes(2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0]) | uint16(b[1])<<8, nil
}

// Int16LE reads a little-endian 16-bit signed integer.
func (r *Reader) Int16LE() (int16, error) {
	u, err := r.Uint16LE()
	return int16(u), err
}

// Uint32LE reads a little-endian 32-bit unsigned integer.
func (r *Reader) Uint32LE() (uint32, error) {
	b, err := r.Bytes(4)
	if err != nil {
		return 0, err
	}
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24, nil
}

// Int32LE reads a little-endian 32-bit signed integer.
func (r *Reader) Int32LE() (int32, error) {
	u, err := r.Uint32LE()
	return int32(u), err
}

// Uint32BE reads a big-endian 32-bit unsigned integer. None of this
// module's decoders calls it; every format they read is little-endian.
func (r *Reader) Uint32BE() (uint32, error) {
	b, err := r.Bytes(4)
	if err != nil {
		return 0, err
	}
	return uint32(b[3]) | uint32(b[2])<<8 | uint32(b[1])<<16 | uint32(b[0])<<24, nil
}

// Float32LE reads a little-endian IEEE-754 single-precision float.
func (r *Reader) Float32LE() (float32, error) {
	bits, err := r.Uint32LE()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

// CString reads a NUL-terminated byte string and advances the cursor
// past the terminator. It does not decode the bytes: callers pick the
// codec appropriate to the container (Windows-1252 for BINI, ASCII
// for UTF's name pool).
func (r *Reader) CString() ([]byte, error) {
	start := r.pos
	for r.pos < len(r.data) {
		if r.data[r.pos] == 0 {
			out := r.data[start:r.pos]
			r.pos++
			return out, nil
		}
		r.pos++
	}
	return nil, fmt.Errorf("%w: unterminated string starting at %d", ErrOutOfBounds, start)
}

// CStringAt reads a NUL-terminated byte string starting at an
// absolute offset, without touching the cursor.
func (r *Reader) CStringAt(offset int) ([]byte, error) {
	if offset < 0 || offset > len(r.data) {
		return nil, fmt.Errorf("%w: string at %d (len %d)", ErrOutOfBounds, offset, len(r.data))
	}
	end := offset
	for end < len(r.data) && r.data[end] != 0 {
		end++
	}
	if end == len(r.data) {
		return nil, fmt.Errorf("%w: unterminated string at %d", ErrOutOfBounds, offset)
	}
	return r.data[offset:end], nil
}
