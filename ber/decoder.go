// Copyright 2012 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package ber

import "math"

// DecodeVlint decodes a base 128 integer from the start of b and returns it
// with the number of bytes consumed.
func DecodeVlint(b []byte) (uint32, int, error) {
	var v uint64
	for i := 0; i < MaxVlintLen; i++ {
		if i >= len(b) {
			return 0, 0, ErrTruncated
		}
		v = v<<7 | uint64(b[i]&0x7f)
		if b[i]&0x80 == 0 {
			if v > math.MaxUint32 {
				return 0, 0, ErrVlintOverflow
			}
			return uint32(v), i + 1, nil
		}
	}
	return 0, 0, ErrVlintTooLong
}

// DecodeLength decodes a BER length from the start of b and returns it with
// the number of bytes consumed. Both the short and the long form are
// accepted, the long form with up to MaxLengthOctets octets.
//
// http://luca.ntop.org/Teaching/Appunti/asn1.html
//
//   - Short form. One octet. Bit 8 has value "0" and bits 7-1 give the length.
//   - Long form. Bit 8 of first octet has value "1" and bits 7-1 give the
//     number of additional length octets, most significant first.
func DecodeLength(b []byte) (uint32, int, error) {
	if len(b) == 0 {
		return 0, 0, ErrTruncated
	}
	if b[0]&0x80 == 0 {
		return uint32(b[0]), 1, nil
	}
	octets := int(b[0] & 0x7f)
	switch {
	case octets == 0:
		// RFC 3417 §8: "use of the indefinite form encoding is prohibited"
		return 0, 0, ErrIndefiniteLength
	case octets > MaxLengthOctets:
		return 0, 0, ErrLengthTooLong
	case len(b) < 1+octets:
		return 0, 0, ErrTruncated
	}
	var length uint32
	for _, c := range b[1 : 1+octets] {
		length = length<<8 | uint32(c)
	}
	return length, 1 + octets, nil
}

// DecodeHeader decodes the tag and length at the start of b. It returns the
// tag, the content length and the header size. The content is guaranteed to
// lie within b.
func DecodeHeader(b []byte) (tag byte, contentLen int, n int, err error) {
	if len(b) == 0 {
		return 0, 0, 0, ErrTruncated
	}
	length, ln, err := DecodeLength(b[1:])
	if err != nil {
		return 0, 0, 0, err
	}
	n = 1 + ln
	if uint64(length) > uint64(len(b)-n) {
		return 0, 0, 0, ErrTruncated
	}
	return b[0], int(length), n, nil
}

// DecodeInteger decodes an INTEGER at the start of b. The tag byte is
// skipped without being checked; callers dispatch on it first.
//
// Payloads of more than four bytes are rejected, except a five byte payload
// led by the zero sign pad written for values of 0x80000000 and above.
func DecodeInteger(b []byte) (uint32, int, error) {
	_, length, n, err := DecodeHeader(b)
	if err != nil {
		return 0, 0, err
	}
	payload := b[n : n+length]
	switch {
	case length == 0:
		// X.690 8.3.1: the contents octets shall consist of one or more octets.
		return 0, 0, ErrZeroLenInteger
	case length > 5, length == 5 && payload[0] != 0:
		return 0, 0, ErrIntegerTooLarge
	}
	var v uint32
	for _, c := range payload {
		v = v<<8 | uint32(c)
	}
	return v, n + length, nil
}

// DecodeOctetString decodes an OCTET STRING at the start of b. The tag byte
// is skipped without being checked.
//
// The returned slice aliases b and is only valid while b is unchanged. Its
// capacity ends with the string, so appending to it never overwrites b.
func DecodeOctetString(b []byte) ([]byte, int, error) {
	_, length, n, err := DecodeHeader(b)
	if err != nil {
		return nil, 0, err
	}
	end := n + length
	return b[n:end:end], end, nil
}

// DecodeOctetStringMax decodes an OCTET STRING of at most maxLen bytes at the
// start of b and returns a copy of it. b is never modified. The tag byte is
// skipped without being checked.
func DecodeOctetStringMax(b []byte, maxLen int) (string, int, error) {
	if len(b) == 0 {
		return "", 0, ErrTruncated
	}
	length, ln, err := DecodeLength(b[1:])
	if err != nil {
		return "", 0, err
	}
	if uint64(length) > uint64(maxLen) {
		return "", 0, ErrStringTooLong
	}
	n := 1 + ln
	if int(length) > len(b)-n {
		return "", 0, ErrTruncated
	}
	end := n + int(length)
	return string(b[n:end]), end, nil
}

// DecodeNull skips the two bytes of a NULL at the start of b. Neither the
// tag nor the length is checked.
func DecodeNull(b []byte) (int, error) {
	if len(b) < 2 {
		return 0, ErrTruncated
	}
	return 2, nil
}
