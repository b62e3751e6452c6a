// Copyright 2012 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package snmpcodec

import "fmt"

// NullVarbinds returns one Null varbind per OID, the variable list of a
// GetRequest or GetNextRequest.
func NullVarbinds(oids ...OID) []Varbind {
	vars := make([]Varbind, len(oids))
	for i, oid := range oids {
		vars[i] = Varbind{Name: oid, Type: Null}
	}
	return vars
}

// GenPacket generates a request for the dotted oids with Default, and
// returns it.
func GenPacket(community string, version SnmpVersion, reqType PDUType, requestID uint32, oids []string) ([]byte, error) {
	parsed := make([]OID, len(oids))
	for i, s := range oids {
		oid, err := ParseOID(s)
		if err != nil {
			return nil, fmt.Errorf("oid %q: %w", s, err)
		}
		parsed[i] = oid
	}

	// build up Header
	h := &Header{
		Version:   version,
		Community: community,
		PDUType:   reqType,
		RequestID: requestID,
	}
	return Default.Encode(h, NullVarbinds(parsed...))
}
