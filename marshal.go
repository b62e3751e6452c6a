// Copyright 2012 Andreas Louca, 2013 Sonia Hamilton. All rights reserved.  Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package snmpcodec

import (
	"fmt"
	"net"

	"github.com/gosnmp/snmpcodec/ber"
)

//
// Remaining globals and definitions located here.
//

// SnmpVersion is the SNMP version carried in the message.
type SnmpVersion uint8

const (
	Version1  SnmpVersion = 0x0
	Version2c SnmpVersion = 0x1
)

// PDUType is the context tag of the PDU.
type PDUType byte

const (
	GetRequest     PDUType = 0xa0
	GetNextRequest PDUType = 0xa1
	GetResponse    PDUType = 0xa2
	SetRequest     PDUType = 0xa3
)

// Asn1BER is the tag of a varbind value.
type Asn1BER byte

const (
	Integer          Asn1BER = 0x02
	OctetString      Asn1BER = 0x04
	Null             Asn1BER = 0x05
	ObjectIdentifier Asn1BER = 0x06
	IPAddress        Asn1BER = 0x40
	Counter32        Asn1BER = 0x41
	Gauge32          Asn1BER = 0x42
	TimeTicks        Asn1BER = 0x43
	Uinteger32       Asn1BER = 0x47
	NoSuchObject     Asn1BER = 0x80
	NoSuchInstance   Asn1BER = 0x81
	EndOfMibView     Asn1BER = 0x82
)

// SNMPError is the error-status of a PDU, RFC 3416 §3.
type SNMPError uint32

const (
	NoError             SNMPError = iota // No error occurred.
	TooBig                               // The size of the Response-PDU would be too large to transport.
	NoSuchName                           // The name of a requested object was not found.
	BadValue                             // A value in the request didn't match the structure that the recipient of the request had for the object.
	ReadOnly                             // An attempt was made to set a variable that has an Access value indicating that it is read-only.
	GenErr                               // An error occurred other than one indicated by a more specific error code in this table.
	NoAccess                             // Access was denied to the object for security reasons.
	WrongType                            // The object type in a variable binding is incorrect for the object.
	WrongLength                          // A variable binding specifies a length incorrect for the object.
	WrongEncoding                        // A variable binding specifies an encoding incorrect for the object.
	WrongValue                           // The value given in a variable binding is not possible for the object.
	NoCreation                           // A specified variable does not exist and cannot be created.
	InconsistentValue                    // A variable binding specifies a value that could be held by the variable but cannot be assigned to it at this time.
	ResourceUnavailable                  // An attempt to set a variable required a resource that is not available.
	CommitFailed                         // An attempt to set a particular variable failed.
	UndoFailed                           // An attempt to set a particular variable as part of a group of variables failed, and the attempt to then undo the setting of other variables was not successful.
	AuthorizationError                   // A problem occurred in authorization.
	NotWritable                          // The variable cannot be written or created.
	InconsistentName                     // The name in a variable binding specifies a variable that does not exist.
)

// Varbind binds a value to an OID.
//
// Decoded values are uint32 for Integer, Counter32, Gauge32, TimeTicks and
// Uinteger32, []byte for OctetString and IPAddress, OID for
// ObjectIdentifier and nil for Null and the exception types. Encode also
// accepts the other unsigned kinds and non-negative ints for integer types,
// string for OctetString and ObjectIdentifier, and net.IP or a dotted string
// for IPAddress.
type Varbind struct {
	Name  OID
	Type  Asn1BER
	Value any
}

// Header holds the fields of a message outside the varbind list.
type Header struct {
	Version     SnmpVersion
	Community   string
	PDUType     PDUType
	RequestID   uint32
	ErrorStatus SNMPError
	ErrorIndex  uint32
}

// Packet is a decoded message.
type Packet struct {
	Header
	Variables []Varbind
}

func (p PDUType) valid() bool {
	switch p {
	case GetRequest, GetNextRequest, GetResponse, SetRequest:
		return true
	}
	return false
}

// -- Marshalling Logic --------------------------------------------------------

// marshalMsg prepends a whole message to e. Everything is written back to
// front: varbinds last to first, then the PDU fields, community, version and
// finally the outer SEQUENCE header.
func (c *Codec) marshalMsg(e *ber.Encoder, h *Header, vars []Varbind) error {
	if h == nil {
		return ErrNilHeader
	}
	if h.Version != Version1 && h.Version != Version2c {
		return fmt.Errorf("%w: %s", ErrUnsupportedVersion, h.Version)
	}
	if !h.PDUType.valid() {
		return fmt.Errorf("%w: %#02x", ErrUnknownPDUType, byte(h.PDUType))
	}
	if len(h.Community) > c.maxCommunityLen() {
		return fmt.Errorf("%w: %d bytes, at most %d", ErrCommunityTooLong, len(h.Community), c.maxCommunityLen())
	}
	if c.MaxOIDs > 0 && len(vars) > c.MaxOIDs {
		return fmt.Errorf("%w: %d, at most %d", ErrTooManyVarbinds, len(vars), c.MaxOIDs)
	}

	msg := e.Mark()

	// varbind list
	for i := len(vars) - 1; i >= 0; i-- {
		if err := marshalVarbind(e, &vars[i]); err != nil {
			return fmt.Errorf("varbind %d: %w", i, err)
		}
	}
	e.Wrap(ber.TagSequence, msg)

	// pdu
	e.PutInteger(h.ErrorIndex)
	e.PutInteger(uint32(h.ErrorStatus))
	e.PutInteger(h.RequestID)
	e.Wrap(byte(h.PDUType), msg)

	e.PutString(h.Community)
	e.PutInteger(uint32(h.Version))
	e.Wrap(ber.TagSequence, msg)

	return e.Err()
}

// marshalVarbind prepends SEQUENCE { name, value }.
func marshalVarbind(e *ber.Encoder, vb *Varbind) error {
	mark := e.Mark()
	if err := marshalValue(e, vb); err != nil {
		return err
	}

	name := e.Mark()
	if err := marshalOID(e, vb.Name); err != nil {
		return fmt.Errorf("name: %w", err)
	}
	e.Wrap(ber.TagObjectIdentifier, name)

	e.Wrap(ber.TagSequence, mark)
	return nil
}

func marshalValue(e *ber.Encoder, vb *Varbind) error {
	switch vb.Type {
	case Integer, Counter32, Gauge32, TimeTicks, Uinteger32:
		v, err := toUint32(vb.Value)
		if err != nil {
			return fmt.Errorf("%s: %w", vb.Type, err)
		}
		e.PutUnsigned(byte(vb.Type), v)

	case OctetString:
		switch value := vb.Value.(type) {
		case []byte:
			e.PutOctetString(value)
		case string:
			e.PutString(value)
		default:
			return fmt.Errorf("%s: %w: %T", vb.Type, ErrValueType, vb.Value)
		}

	case IPAddress:
		ip, err := ipv4Bytes(vb.Value)
		if err != nil {
			return err
		}
		e.PutPrimitive(byte(IPAddress), ip)

	case ObjectIdentifier:
		var oid OID
		switch value := vb.Value.(type) {
		case OID:
			oid = value
		case string:
			var err error
			if oid, err = ParseOID(value); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%s: %w: %T", vb.Type, ErrValueType, vb.Value)
		}
		mark := e.Mark()
		if err := marshalOID(e, oid); err != nil {
			return err
		}
		e.Wrap(ber.TagObjectIdentifier, mark)

	case Null, NoSuchObject, NoSuchInstance, EndOfMibView:
		if vb.Value != nil {
			return fmt.Errorf("%s: %w: %T", vb.Type, ErrValueType, vb.Value)
		}
		e.PutHeader(byte(vb.Type), 0)

	default:
		return fmt.Errorf("%w: %s", ErrUnknownValueType, vb.Type)
	}
	return nil
}

func ipv4Bytes(v any) ([]byte, error) {
	var ip net.IP
	switch value := v.(type) {
	case net.IP:
		ip = value
	case []byte:
		ip = value
	case string:
		ip = net.ParseIP(value)
	default:
		return nil, fmt.Errorf("%s: %w: %T", IPAddress, ErrValueType, v)
	}
	ip4 := ip.To4()
	if ip4 == nil {
		return nil, fmt.Errorf("%s: %w: %v is not an IPv4 address", IPAddress, ErrValueType, v)
	}
	return ip4, nil
}
