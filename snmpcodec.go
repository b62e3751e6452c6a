// Copyright 2012 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// Package snmpcodec builds and parses SNMP v1 and v2c messages.
//
// Messages are encoded back to front into a single buffer with the
// primitives of package ber, so no intermediate buffers are allocated for
// the nested SEQUENCE and PDU wrappers. Decoding walks the message front to
// back and returns a Packet that never aliases the input.
//
// A minimal GetRequest:
//
//	oid, _ := snmpcodec.ParseOID("1.3.6.1.2.1.1.1.0")
//	msg, err := snmpcodec.Encode(&snmpcodec.Header{
//		Version:   snmpcodec.Version2c,
//		Community: "public",
//		PDUType:   snmpcodec.GetRequest,
//		RequestID: 1,
//	}, snmpcodec.NullVarbinds(oid))
package snmpcodec

import (
	"github.com/gosnmp/snmpcodec/ber"
)

const (
	// MaxOIDs is the default maximum number of varbinds in a message.
	MaxOIDs = 60

	// MaxCommunityLen is the default maximum community length.
	MaxCommunityLen = 255

	// BufferSize is the default initial size of the encode buffer.
	BufferSize = 1024
)

// Codec holds the limits, logger and metrics used to encode and decode
// messages. A Codec is safe for concurrent use once configured.
type Codec struct {
	// MaxCommunityLen is the longest community accepted on encode and
	// decode.
	MaxCommunityLen int

	// MaxOIDs caps the number of varbinds in an encoded message. Zero
	// disables the check.
	MaxOIDs int

	// BufferSize is the initial size of the buffer Encode writes into. The
	// buffer grows as needed.
	BufferSize int

	// Logger is the Logger to use for debugging. If nil, debugging output
	// will be discarded (/dev/null). For verbose logging to stdout:
	// x.Logger = NewLogger(log.New(os.Stdout, "", 0))
	Logger Logger

	// Metrics, if set, counts encoded and decoded messages.
	Metrics *Metrics
}

// Default is a pointer to a Codec with sensible defaults.
var Default = &Codec{
	MaxCommunityLen: MaxCommunityLen,
	MaxOIDs:         MaxOIDs,
	BufferSize:      BufferSize,
}

// Encode returns the BER encoding of a message with header h and the
// varbinds vars, in order. h is not modified.
func (c *Codec) Encode(h *Header, vars []Varbind) ([]byte, error) {
	size := c.BufferSize
	if size <= 0 {
		size = BufferSize
	}
	e := ber.NewEncoder(size)
	if err := c.marshalMsg(e, h, vars); err != nil {
		return nil, err
	}
	c.Logger.Printf("encode: %s %d bytes, %d varbinds", h.PDUType, e.Len(), len(vars))
	c.Metrics.encoded(h.PDUType, e.Len())
	return e.Bytes(), nil
}

// EncodeInto encodes a message into the end of buf without allocating. The
// message occupies buf[start:]. ber.ErrBufferOverflow is returned if buf is
// too small.
func (c *Codec) EncodeInto(buf []byte, h *Header, vars []Varbind) (start int, err error) {
	e := ber.NewFixedEncoder(buf)
	if err := c.marshalMsg(e, h, vars); err != nil {
		return 0, err
	}
	c.Logger.Printf("encode: %s %d bytes at offset %d", h.PDUType, e.Len(), e.Offset())
	c.Metrics.encoded(h.PDUType, e.Len())
	return e.Offset(), nil
}

// Decode parses a complete message. Bytes after the end of the outer
// SEQUENCE are ignored. On error the returned Packet is nil.
func (c *Codec) Decode(b []byte) (*Packet, error) {
	packet, err := c.unmarshal(b)
	if err != nil {
		c.Logger.Printf("decode: %v", err)
		c.Metrics.decodeFailed(err)
		return nil, err
	}
	c.Metrics.decoded(packet.PDUType, len(b))
	return packet, nil
}

// Encode encodes a message with Default.
func Encode(h *Header, vars []Varbind) ([]byte, error) {
	return Default.Encode(h, vars)
}

// EncodeInto encodes a message into buf with Default.
func EncodeInto(buf []byte, h *Header, vars []Varbind) (int, error) {
	return Default.EncodeInto(buf, h, vars)
}

// Decode decodes a message with Default.
func Decode(b []byte) (*Packet, error) {
	return Default.Decode(b)
}

func (c *Codec) maxCommunityLen() int {
	if c.MaxCommunityLen <= 0 {
		return MaxCommunityLen
	}
	return c.MaxCommunityLen
}
