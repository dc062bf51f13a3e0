// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package delta

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// Persisted layout (all integers are unsigned varints):
//
//	magic "CSVDELTA" | version byte | hash name | fingerprint | count | count × key
//
// where hash name, fingerprint and every key are length-prefixed byte strings.
const (
	magic         = "CSVDELTA"
	formatVersion = 1

	// maxFieldLen is the largest field allocated up front. Longer fields are
	// read incrementally, so a corrupt length costs no more memory than the
	// bytes actually present.
	maxFieldLen = 1 << 20
)

// WriteTo serializes the set to w. It implements io.WriterTo.
func (s *Set) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: bufio.NewWriter(w)}

	cw.write([]byte(magic))
	cw.write([]byte{formatVersion})
	cw.writeBytes([]byte(s.hashName))
	cw.writeBytes(s.fingerprint)
	cw.writeUvarint(uint64(len(s.keys)))
	for k := range s.keys {
		cw.writeBytes([]byte(k))
	}
	if cw.err != nil {
		return cw.n, fmt.Errorf("error writing delta structure: %w", cw.err)
	}

	if err := cw.w.Flush(); err != nil {
		return cw.n, fmt.Errorf("error flushing delta structure: %w", err)
	}
	return cw.n, nil
}

// ReadFrom replaces the contents of the set with a structure decoded from r.
// It implements io.ReaderFrom.
func (s *Set) ReadFrom(r io.Reader) (int64, error) {
	cr := &countingReader{r: bufio.NewReader(r)}

	head := make([]byte, len(magic)+1)
	if _, err := io.ReadFull(cr, head); err != nil {
		return cr.n, corrupt("reading header", err)
	}
	if string(head[:len(magic)]) != magic {
		return cr.n, fmt.Errorf("%w: bad magic", ErrCorruptStructure)
	}
	if head[len(magic)] != formatVersion {
		return cr.n, fmt.Errorf("%w: unsupported format version %d", ErrCorruptStructure, head[len(magic)])
	}

	hashName, err := readBytes(cr)
	if err != nil {
		return cr.n, corrupt("reading hash name", err)
	}
	fingerprint, err := readBytes(cr)
	if err != nil {
		return cr.n, corrupt("reading fingerprint", err)
	}
	count, err := binary.ReadUvarint(cr)
	if err != nil {
		return cr.n, corrupt("reading key count", err)
	}

	keys := make(map[string]struct{}, min(count, maxFieldLen))
	for i := uint64(0); i < count; i++ {
		key, err := readBytes(cr)
		if err != nil {
			return cr.n, corrupt(fmt.Sprintf("reading key %d of %d", i+1, count), err)
		}
		keys[string(key)] = struct{}{}
	}

	s.hashName = string(hashName)
	s.fingerprint = fingerprint
	if len(s.fingerprint) == 0 {
		s.fingerprint = nil
	}
	s.keys = keys
	return cr.n, nil
}

// Decode reads a complete set from r.
func Decode(r io.Reader) (*Set, error) {
	s := &Set{}
	if _, err := s.ReadFrom(r); err != nil {
		return nil, err
	}
	return s, nil
}

func corrupt(what string, err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("%w: %s: %w", ErrCorruptStructure, what, err)
}

func readBytes(r *countingReader) ([]byte, error) {
	n, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, err
	}
	if n <= maxFieldLen {
		buf := make([]byte, n)
		if _, err = io.ReadFull(r, buf); err != nil {
			return nil, err
		}
		return buf, nil
	}

	var buf bytes.Buffer
	got, err := io.Copy(&buf, io.LimitReader(r, int64(min(n, math.MaxInt64))))
	if err != nil {
		return nil, err
	}
	if uint64(got) != n {
		return nil, fmt.Errorf("field of %d bytes truncated at %d: %w", n, got, io.ErrUnexpectedEOF)
	}
	return buf.Bytes(), nil
}

type countingWriter struct {
	w   *bufio.Writer
	n   int64
	err error
	buf [binary.MaxVarintLen64]byte
}

func (c *countingWriter) write(p []byte) {
	if c.err != nil {
		return
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
}

func (c *countingWriter) writeUvarint(v uint64) {
	n := binary.PutUvarint(c.buf[:], v)
	c.write(c.buf[:n])
}

func (c *countingWriter) writeBytes(p []byte) {
	c.writeUvarint(uint64(len(p)))
	c.write(p)
}

type countingReader struct {
	r *bufio.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

func (c *countingReader) ReadByte() (byte, error) {
	b, err := c.r.ReadByte()
	if err == nil {
		c.n++
	}
	return b, err
}
