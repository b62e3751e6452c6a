// Copyright 2012 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// Package ber implements the subset of the ASN.1 Basic Encoding Rules needed
// to build and parse SNMP v1/v2c messages: variable length integers, lengths,
// INTEGER, OCTET STRING and NULL.
//
// Encoding is done back to front. An Encoder writes every element in front of
// the bytes already written, so the length of a constructed element is known
// by the time its header has to be written. Encode the innermost and last
// elements first:
//
//	e := ber.NewEncoder(64)
//	mark := e.Mark()
//	e.PutNull()
//	e.PutInteger(42)
//	e.Wrap(ber.TagSequence, mark) // 30 05 02 01 2a 05 00
//
// Decoding is done front to back. Every decoder takes the input starting at
// the element and returns the decoded value together with the number of
// bytes consumed.
package ber

import "errors"

// Universal tags used by SNMP.
const (
	TagInteger          byte = 0x02
	TagOctetString      byte = 0x04
	TagNull             byte = 0x05
	TagObjectIdentifier byte = 0x06
	TagSequence         byte = 0x30
)

// Size limits of the encodings handled by this package.
const (
	// MaxVlintLen is the longest vlint encoding of a 32 bit value.
	MaxVlintLen = 5
	// MaxLengthOctets is the maximum number of long form length octets.
	MaxLengthOctets = 4
	// MaxIntegerLen is the longest encoded INTEGER: tag, length and up to
	// four value bytes plus a sign pad.
	MaxIntegerLen = 7
)

// Errors returned by the encoder and decoders.
var (
	ErrBufferOverflow   = errors.New("ber: buffer overflow")
	ErrIndefiniteLength = errors.New("ber: indefinite length not permitted")
	ErrIntegerTooLarge  = errors.New("ber: integer too large")
	ErrLengthTooLong    = errors.New("ber: length longer than 4 octets")
	ErrStringTooLong    = errors.New("ber: octet string exceeds maximum length")
	ErrTruncated        = errors.New("ber: truncated")
	ErrVlintOverflow    = errors.New("ber: vlint overflows 32 bits")
	ErrVlintTooLong     = errors.New("ber: vlint longer than 5 bytes")
	ErrZeroLenInteger   = errors.New("ber: zero length integer")
)
