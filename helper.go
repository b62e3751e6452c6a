// Copyright 2012 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package snmpcodec

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gosnmp/snmpcodec/ber"
)

// helper error modes
var (
	ErrCommunityTooLong   = errors.New("community too long")
	ErrInvalidOID         = errors.New("invalid OID")
	ErrMalformedVarbind   = errors.New("malformed varbind")
	ErrNilHeader          = errors.New("nil header")
	ErrTooManyVarbinds    = errors.New("too many varbinds")
	ErrUnexpectedTag      = errors.New("unexpected tag")
	ErrUnknownPDUType     = errors.New("unknown PDU type")
	ErrUnknownValueType   = errors.New("unknown value type")
	ErrUnsupportedVersion = errors.New("unsupported SNMP version")
	ErrValueType          = errors.New("value does not match varbind type")
)

// maxOIDArcs is the longest OID accepted, RFC 2578 §3.5.
const maxOIDArcs = 128

// OID is an object identifier, one element per arc.
type OID []uint32

// ParseOID parses a dotted OID such as "1.3.6.1.2.1.1.1.0". A leading dot is
// allowed.
func ParseOID(s string) (OID, error) {
	s = strings.TrimPrefix(s, ".")
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidOID)
	}
	parts := strings.Split(s, ".")
	oid := make(OID, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: arc %d %q", ErrInvalidOID, i, p)
		}
		oid[i] = uint32(v)
	}
	if err := oid.validate(); err != nil {
		return nil, err
	}
	return oid, nil
}

// MustParseOID is like ParseOID but panics on error. It simplifies safe
// initialization of global OIDs.
func MustParseOID(s string) OID {
	oid, err := ParseOID(s)
	if err != nil {
		panic(err)
	}
	return oid
}

// String returns the dotted form with a leading dot, as net-snmp prints it.
func (o OID) String() string {
	out := make([]byte, 0, len(o)*4)
	for _, arc := range o {
		out = append(out, '.')
		out = strconv.AppendUint(out, uint64(arc), 10)
	}
	return string(out)
}

// Equal reports whether o and other have the same arcs.
func (o OID) Equal(other OID) bool {
	if len(o) != len(other) {
		return false
	}
	for i := range o {
		if o[i] != other[i] {
			return false
		}
	}
	return true
}

// validate checks that o can be BER encoded: X.690 8.19.4 restricts the
// first arc to 0..2 and the second to 0..39 below the joint-iso-itu-t arc.
func (o OID) validate() error {
	switch {
	case len(o) < 2:
		return fmt.Errorf("%w: %d arcs, need at least 2", ErrInvalidOID, len(o))
	case len(o) > maxOIDArcs:
		return fmt.Errorf("%w: %d arcs, at most %d", ErrInvalidOID, len(o), maxOIDArcs)
	case o[0] > 2:
		return fmt.Errorf("%w: first arc %d", ErrInvalidOID, o[0])
	case o[0] < 2 && o[1] >= 40:
		return fmt.Errorf("%w: second arc %d under %d", ErrInvalidOID, o[1], o[0])
	case o[1] > math.MaxUint32-80:
		return fmt.Errorf("%w: second arc %d", ErrInvalidOID, o[1])
	}
	return nil
}

// marshalOID prepends the sub-identifiers of o, without tag or length. The
// first two arcs share one sub-identifier.
func marshalOID(e *ber.Encoder, o OID) error {
	if err := o.validate(); err != nil {
		return err
	}
	for i := len(o) - 1; i >= 2; i-- {
		e.PutVlint(o[i])
	}
	e.PutVlint(o[0]*40 + o[1])
	return nil
}

// parseOID parses the content octets of an OBJECT IDENTIFIER.
func parseOID(src []byte) (OID, error) {
	if len(src) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidOID)
	}
	first, n, err := ber.DecodeVlint(src)
	if err != nil {
		return nil, err
	}
	oid := make(OID, 2, 2+len(src)-n)
	switch {
	case first < 40:
		oid[0], oid[1] = 0, first
	case first < 80:
		oid[0], oid[1] = 1, first-40
	default:
		oid[0], oid[1] = 2, first-80
	}
	for offset := n; offset < len(src); offset += n {
		var arc uint32
		arc, n, err = ber.DecodeVlint(src[offset:])
		if err != nil {
			return nil, err
		}
		if len(oid) == maxOIDArcs {
			return nil, fmt.Errorf("%w: more than %d arcs", ErrInvalidOID, maxOIDArcs)
		}
		oid = append(oid, arc)
	}
	return oid, nil
}

// toUint32 converts the integer kinds accepted as varbind values.
func toUint32(v any) (uint32, error) {
	switch value := v.(type) {
	case uint32:
		return value, nil
	case uint8:
		return uint32(value), nil
	case uint16:
		return uint32(value), nil
	case uint:
		if uint64(value) > math.MaxUint32 {
			return 0, fmt.Errorf("%w: %d overflows uint32", ErrValueType, value)
		}
		return uint32(value), nil
	case uint64:
		if value > math.MaxUint32 {
			return 0, fmt.Errorf("%w: %d overflows uint32", ErrValueType, value)
		}
		return uint32(value), nil
	case int:
		if value < 0 || int64(value) > math.MaxUint32 {
			return 0, fmt.Errorf("%w: %d out of uint32 range", ErrValueType, value)
		}
		return uint32(value), nil
	default:
		return 0, fmt.Errorf("%w: %T is not an integer", ErrValueType, v)
	}
}

// -- String methods -----------------------------------------------------------

func (s SnmpVersion) String() string {
	switch s {
	case Version1:
		return "1"
	case Version2c:
		return "2c"
	default:
		return "unknown(" + strconv.Itoa(int(s)) + ")"
	}
}

func (p PDUType) String() string {
	switch p {
	case GetRequest:
		return "GetRequest"
	case GetNextRequest:
		return "GetNextRequest"
	case GetResponse:
		return "GetResponse"
	case SetRequest:
		return "SetRequest"
	default:
		return fmt.Sprintf("PDUType(%#02x)", byte(p))
	}
}

func (a Asn1BER) String() string {
	switch a {
	case Integer:
		return "Integer"
	case OctetString:
		return "OctetString"
	case Null:
		return "Null"
	case ObjectIdentifier:
		return "ObjectIdentifier"
	case IPAddress:
		return "IPAddress"
	case Counter32:
		return "Counter32"
	case Gauge32:
		return "Gauge32"
	case TimeTicks:
		return "TimeTicks"
	case Uinteger32:
		return "Uinteger32"
	case NoSuchObject:
		return "NoSuchObject"
	case NoSuchInstance:
		return "NoSuchInstance"
	case EndOfMibView:
		return "EndOfMibView"
	default:
		return fmt.Sprintf("Asn1BER(%#02x)", byte(a))
	}
}

func (e SNMPError) String() string {
	switch e {
	case NoError:
		return "NoError"
	case TooBig:
		return "TooBig"
	case NoSuchName:
		return "NoSuchName"
	case BadValue:
		return "BadValue"
	case ReadOnly:
		return "ReadOnly"
	case GenErr:
		return "GenErr"
	case NoAccess:
		return "NoAccess"
	case WrongType:
		return "WrongType"
	case WrongLength:
		return "WrongLength"
	case WrongEncoding:
		return "WrongEncoding"
	case WrongValue:
		return "WrongValue"
	case NoCreation:
		return "NoCreation"
	case InconsistentValue:
		return "InconsistentValue"
	case ResourceUnavailable:
		return "ResourceUnavailable"
	case CommitFailed:
		return "CommitFailed"
	case UndoFailed:
		return "UndoFailed"
	case AuthorizationError:
		return "AuthorizationError"
	case NotWritable:
		return "NotWritable"
	case InconsistentName:
		return "InconsistentName"
	default:
		return "SNMPError(" + strconv.FormatUint(uint64(e), 10) + ")"
	}
}
