// Copyright 2012 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package ber

// Encoder builds a BER encoding from its end toward its start. The written
// bytes always occupy buf[off:].
//
// A fixed Encoder never reallocates. When it runs out of head room it records
// ErrBufferOverflow, drops every further write and reports the error from
// Err. A growable Encoder moves the written tail into a larger buffer
// instead.
type Encoder struct {
	buf   []byte
	off   int
	fixed bool
	err   error
}

// NewEncoder returns a growable Encoder with an initial capacity of size
// bytes.
func NewEncoder(size int) *Encoder {
	if size <= 0 {
		size = 64
	}
	return &Encoder{buf: make([]byte, size), off: size}
}

// NewFixedEncoder returns an Encoder writing into buf, ending at len(buf).
func NewFixedEncoder(buf []byte) *Encoder {
	return &Encoder{buf: buf, off: len(buf), fixed: true}
}

// Len returns the number of bytes written.
func (e *Encoder) Len() int {
	return len(e.buf) - e.off
}

// Offset returns the index of the first written byte in the underlying
// buffer. For a fixed Encoder this is where the encoding starts in the
// caller's buffer.
func (e *Encoder) Offset() int {
	return e.off
}

// Bytes returns the written bytes. The slice aliases the Encoder's buffer.
func (e *Encoder) Bytes() []byte {
	return e.buf[e.off:]
}

// Err returns ErrBufferOverflow if a fixed Encoder ran out of space.
func (e *Encoder) Err() error {
	return e.err
}

// Reset discards everything written and clears the error.
func (e *Encoder) Reset() {
	e.off = len(e.buf)
	e.err = nil
}

// reserve claims n bytes in front of the written data and returns the index
// of the first one, or -1 if nothing may be written.
func (e *Encoder) reserve(n int) int {
	if e.err != nil {
		return -1
	}
	if e.off < n {
		if e.fixed {
			e.err = ErrBufferOverflow
			return -1
		}
		e.grow(n)
	}
	e.off -= n
	return e.off
}

func (e *Encoder) grow(n int) {
	used := e.Len()
	size := 2*len(e.buf) + n
	buf := make([]byte, size)
	copy(buf[size-used:], e.buf[e.off:])
	e.buf = buf
	e.off = size - used
}

// PutByte prepends a single byte.
func (e *Encoder) PutByte(b byte) {
	if i := e.reserve(1); i >= 0 {
		e.buf[i] = b
	}
}

// PutBytes prepends p verbatim.
func (e *Encoder) PutBytes(p []byte) {
	if i := e.reserve(len(p)); i >= 0 {
		copy(e.buf[i:], p)
	}
}

func (e *Encoder) putString(s string) {
	if i := e.reserve(len(s)); i >= 0 {
		copy(e.buf[i:], s)
	}
}

// PutVlint prepends v in base 128, most significant group first, with the
// continuation bit set on every byte but the last. It writes at most
// MaxVlintLen bytes.
func (e *Encoder) PutVlint(v uint32) {
	e.PutByte(byte(v & 0x7f))
	for v >>= 7; v != 0; v >>= 7 {
		e.PutByte(byte(v&0x7f) | 0x80)
	}
}

// PutLength prepends a BER length in the shortest form: one byte below 128,
// otherwise 0x80|n followed by n big-endian bytes.
func (e *Encoder) PutLength(n uint32) {
	if n < 0x80 {
		e.PutByte(byte(n))
		return
	}
	var octets byte
	for ; n != 0; n >>= 8 {
		e.PutByte(byte(n))
		octets++
	}
	e.PutByte(0x80 | octets)
}

// PutHeader prepends the tag and length of an element whose contentLen
// content bytes are already written.
func (e *Encoder) PutHeader(tag byte, contentLen int) {
	e.PutLength(uint32(contentLen))
	e.PutByte(tag)
}

// Mark returns a position to be passed to Wrap once the content of a
// constructed element has been written.
func (e *Encoder) Mark() int {
	return e.Len()
}

// Wrap prepends a header with tag covering everything written since mark.
func (e *Encoder) Wrap(tag byte, mark int) {
	e.PutHeader(tag, e.Len()-mark)
}

// PutInteger prepends v as an INTEGER.
func (e *Encoder) PutInteger(v uint32) {
	e.PutUnsigned(TagInteger, v)
}

// PutUnsigned prepends v as the minimal big-endian INTEGER payload under the
// given tag. A zero byte is prepended when the top bit of the first payload
// byte is set, so the value is never read back as negative.
func (e *Encoder) PutUnsigned(tag byte, v uint32) {
	var b [5]byte
	i := len(b)
	for {
		i--
		b[i] = byte(v)
		v >>= 8
		if v == 0 {
			break
		}
	}
	if b[i]&0x80 != 0 {
		i--
		b[i] = 0
	}
	e.PutPrimitive(tag, b[i:])
}

// PutPrimitive prepends a primitive element with the given tag and raw
// content.
func (e *Encoder) PutPrimitive(tag byte, content []byte) {
	e.PutBytes(content)
	e.PutHeader(tag, len(content))
}

// PutOctetStringLen prepends the first n bytes of p as an OCTET STRING.
func (e *Encoder) PutOctetStringLen(p []byte, n int) {
	e.PutPrimitive(TagOctetString, p[:n])
}

// PutOctetString prepends p as an OCTET STRING.
func (e *Encoder) PutOctetString(p []byte) {
	e.PutOctetStringLen(p, len(p))
}

// PutString prepends s as an OCTET STRING.
func (e *Encoder) PutString(s string) {
	e.putString(s)
	e.PutHeader(TagOctetString, len(s))
}

// PutNull prepends a NULL.
func (e *Encoder) PutNull() {
	e.PutHeader(TagNull, 0)
}
