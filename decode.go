// Copyright 2012 Andreas Louca. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snmpcodec

import (
	"bytes"
	"fmt"

	"github.com/gosnmp/snmpcodec/ber"
)

// -- Unmarshalling Logic ------------------------------------------------------

func (c *Codec) unmarshal(b []byte) (*Packet, error) {
	msg, size, err := expect(b, ber.TagSequence, "message")
	if err != nil {
		return nil, err
	}
	if trailing := len(b) - size; trailing > 0 {
		c.Logger.Printf("decode: ignoring %d bytes after message", trailing)
	}

	packet := new(Packet)
	cursor := 0

	version, n, err := decodeIntegerField(msg, "version")
	if err != nil {
		return nil, err
	}
	cursor += n
	if version > uint32(Version2c) {
		return nil, fmt.Errorf("version: %w: %d", ErrUnsupportedVersion, version)
	}
	packet.Version = SnmpVersion(version)
	c.Logger.Printf("decode: version %s", packet.Version)

	if err = checkTag(msg[cursor:], ber.TagOctetString, "community"); err != nil {
		return nil, err
	}
	packet.Community, n, err = ber.DecodeOctetStringMax(msg[cursor:], c.maxCommunityLen())
	if err != nil {
		return nil, fmt.Errorf("community: %w", err)
	}
	cursor += n
	c.Logger.Printf("decode: community %q", packet.Community)

	if err = c.unmarshalPDU(msg[cursor:], packet); err != nil {
		return nil, err
	}
	return packet, nil
}

func (c *Codec) unmarshalPDU(b []byte, packet *Packet) error {
	if len(b) == 0 {
		return fmt.Errorf("pdu: %w", ber.ErrTruncated)
	}
	packet.PDUType = PDUType(b[0])
	if !packet.PDUType.valid() {
		return fmt.Errorf("pdu: %w: %#02x", ErrUnknownPDUType, b[0])
	}
	pdu, _, err := expect(b, b[0], "pdu")
	if err != nil {
		return err
	}
	c.Logger.Printf("decode: pdu type %s", packet.PDUType)

	cursor := 0
	fields := []struct {
		name string
		dst  *uint32
	}{
		{"request-id", &packet.RequestID},
		{"error-status", (*uint32)(&packet.ErrorStatus)},
		{"error-index", &packet.ErrorIndex},
	}
	for _, field := range fields {
		v, n, err := decodeIntegerField(pdu[cursor:], field.name)
		if err != nil {
			return err
		}
		*field.dst = v
		cursor += n
	}
	c.Logger.Printf("decode: request-id %d error-status %s error-index %d",
		packet.RequestID, packet.ErrorStatus, packet.ErrorIndex)

	vbl, _, err := expect(pdu[cursor:], ber.TagSequence, "varbind-list")
	if err != nil {
		return err
	}
	for cursor = 0; cursor < len(vbl); {
		vb, n, err := c.unmarshalVarbind(vbl[cursor:])
		if err != nil {
			return fmt.Errorf("varbind %d: %w", len(packet.Variables), err)
		}
		packet.Variables = append(packet.Variables, vb)
		cursor += n
	}
	return nil
}

// unmarshalVarbind decodes SEQUENCE { name, value } at the start of b and
// returns it with the number of bytes consumed.
func (c *Codec) unmarshalVarbind(b []byte) (Varbind, int, error) {
	var vb Varbind
	seq, n, err := expect(b, ber.TagSequence, "sequence")
	if err != nil {
		return vb, 0, err
	}

	// The name is tagged OBJECT IDENTIFIER, some encoders use OCTET STRING.
	if len(seq) == 0 || (seq[0] != ber.TagObjectIdentifier && seq[0] != ber.TagOctetString) {
		return vb, 0, fmt.Errorf("name: %w", unexpected(seq))
	}
	name, nameLen, err := expect(seq, seq[0], "name")
	if err != nil {
		return vb, 0, err
	}
	if vb.Name, err = parseOID(name); err != nil {
		return vb, 0, fmt.Errorf("name: %w", err)
	}

	valueLen, err := c.decodeValue(seq[nameLen:], &vb)
	if err != nil {
		return vb, 0, fmt.Errorf("value: %w", err)
	}
	if nameLen+valueLen != len(seq) {
		return vb, 0, fmt.Errorf("%w: %d bytes left after value", ErrMalformedVarbind, len(seq)-nameLen-valueLen)
	}
	c.Logger.Printf("decode: varbind %s %s", vb.Name, vb.Type)
	return vb, n, nil
}

// decodeValue decodes the value at the start of data into vb and returns the
// number of bytes consumed.
func (c *Codec) decodeValue(data []byte, vb *Varbind) (int, error) {
	if len(data) == 0 {
		return 0, ber.ErrTruncated
	}
	vb.Type = Asn1BER(data[0])

	switch vb.Type {
	case Integer, Counter32, Gauge32, TimeTicks, Uinteger32:
		v, n, err := ber.DecodeInteger(data)
		if err != nil {
			return 0, err
		}
		vb.Value = v
		return n, nil

	case OctetString, IPAddress:
		s, n, err := ber.DecodeOctetString(data)
		if err != nil {
			return 0, err
		}
		vb.Value = bytes.Clone(s)
		return n, nil

	case Null, NoSuchObject, NoSuchInstance, EndOfMibView:
		vb.Value = nil
		return ber.DecodeNull(data)

	case ObjectIdentifier:
		content, n, err := expect(data, data[0], "oid")
		if err != nil {
			return 0, err
		}
		oid, err := parseOID(content)
		if err != nil {
			return 0, err
		}
		vb.Value = oid
		return n, nil

	default:
		c.Logger.Printf("decodeValue: type %#02x isn't implemented", data[0])
		return 0, fmt.Errorf("%w: %#02x", ErrUnknownValueType, data[0])
	}
}

// expect checks that b starts with tag and returns the content of the
// element and its total encoded size.
func expect(b []byte, tag byte, field string) ([]byte, int, error) {
	if err := checkTag(b, tag, field); err != nil {
		return nil, 0, err
	}
	_, length, n, err := ber.DecodeHeader(b)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", field, err)
	}
	return b[n : n+length], n + length, nil
}

func checkTag(b []byte, tag byte, field string) error {
	if len(b) == 0 {
		return fmt.Errorf("%s: %w", field, ber.ErrTruncated)
	}
	if b[0] != tag {
		return fmt.Errorf("%s: %w", field, unexpected(b))
	}
	return nil
}

func unexpected(b []byte) error {
	if len(b) == 0 {
		return ber.ErrTruncated
	}
	return fmt.Errorf("%w %#02x", ErrUnexpectedTag, b[0])
}

// decodeIntegerField decodes a tagged INTEGER field at the start of b.
func decodeIntegerField(b []byte, field string) (uint32, int, error) {
	if err := checkTag(b, ber.TagInteger, field); err != nil {
		return 0, 0, err
	}
	v, n, err := ber.DecodeInteger(b)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", field, err)
	}
	return v, n, nil
}
