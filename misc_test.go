// Copyright 2013 Sonia Hamilton. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package snmpcodec

import (
	"testing"
)

// Tests in alphabetical order of function being tested

// -----------------------------------------------------------------------------

var testsAsn1BERString = []struct {
	in  Asn1BER
	out string
}{
	{Integer, "Integer"},
	{OctetString, "OctetString"},
	{Null, "Null"},
	{ObjectIdentifier, "ObjectIdentifier"},
	{IPAddress, "IPAddress"},
	{Counter32, "Counter32"},
	{Gauge32, "Gauge32"},
	{TimeTicks, "TimeTicks"},
	{Uinteger32, "Uinteger32"},
	{NoSuchObject, "NoSuchObject"},
	{NoSuchInstance, "NoSuchInstance"},
	{EndOfMibView, "EndOfMibView"},
	{0x44, "Asn1BER(0x44)"},
}

func TestAsn1BERString(t *testing.T) {
	for i, test := range testsAsn1BERString {
		result := test.in.String()
		if result != test.out {
			t.Errorf("#%d, got %v expected %v", i, result, test.out)
		}
	}
}

// -----------------------------------------------------------------------------

var testsPDUTypeString = []struct {
	in  PDUType
	out string
}{
	{GetRequest, "GetRequest"},
	{GetNextRequest, "GetNextRequest"},
	{GetResponse, "GetResponse"},
	{SetRequest, "SetRequest"},
	{0xa5, "PDUType(0xa5)"},
}

func TestPDUTypeString(t *testing.T) {
	for i, test := range testsPDUTypeString {
		result := test.in.String()
		if result != test.out {
			t.Errorf("#%d, got %v expected %v", i, result, test.out)
		}
	}
}

// -----------------------------------------------------------------------------

var testsSNMPErrorString = []struct {
	in  SNMPError
	out string
}{
	{NoError, "NoError"},
	{TooBig, "TooBig"},
	{NoSuchName, "NoSuchName"},
	{GenErr, "GenErr"},
	{AuthorizationError, "AuthorizationError"},
	{InconsistentName, "InconsistentName"},
	{19, "SNMPError(19)"},
}

func TestSNMPErrorString(t *testing.T) {
	for i, test := range testsSNMPErrorString {
		result := test.in.String()
		if result != test.out {
			t.Errorf("#%d, got %v expected %v", i, result, test.out)
		}
	}
}

// ---------------------------------------------------------------------

var testsSnmpVersionString = []struct {
	in  SnmpVersion
	out string
}{
	{Version1, "1"},
	{Version2c, "2c"},
	{3, "unknown(3)"},
}

func TestSnmpVersionString(t *testing.T) {
	for i, test := range testsSnmpVersionString {
		result := test.in.String()
		if result != test.out {
			t.Errorf("#%d, got %v expected %v", i, result, test.out)
		}
	}
}

// ---------------------------------------------------------------------
