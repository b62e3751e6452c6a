// Copyright 2012 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package snmpcodec

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosnmp/snmpcodec/ber"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	c := &Codec{Metrics: m}

	h := getRequestPrivateHeader
	for i := 0; i < 3; i++ {
		_, err := c.Encode(&h, NullVarbinds(enterpriseOID()))
		require.NoError(t, err)
	}
	_, err := c.EncodeInto(make([]byte, 64), &h, NullVarbinds(enterpriseOID()))
	require.NoError(t, err)
	assert.Equal(t, 4.0, testutil.ToFloat64(m.encodedTotal.WithLabelValues("GetRequest")))

	_, err = c.Decode(getResponseUptime)
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.decodedTotal.WithLabelValues("GetResponse")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.decodedTotal.WithLabelValues("GetRequest")))

	bad := bytes.Clone(getRequestPrivate)
	bad[14] = 0xa4
	_, err = c.Decode(bad)
	require.Error(t, err)
	_, err = c.Decode(getRequestPrivate[:10])
	require.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.decodeErrors.WithLabelValues("pdu_type")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.decodeErrors.WithLabelValues("truncated")))

	assert.Equal(t, 2, testutil.CollectAndCount(m.messageBytes))

	expected := `
# HELP snmpcodec_messages_decoded_total Total SNMP messages decoded.
# TYPE snmpcodec_messages_decoded_total counter
snmpcodec_messages_decoded_total{pdu_type="GetRequest"} 0
snmpcodec_messages_decoded_total{pdu_type="GetResponse"} 1
`
	err = testutil.GatherAndCompare(reg, strings.NewReader(expected), "snmpcodec_messages_decoded_total")
	assert.NoError(t, err)
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.encoded(GetRequest, 10)
		m.decoded(GetResponse, 10)
		m.decodeFailed(ber.ErrTruncated)
	})
}

func TestErrorReason(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("message: %w", ber.ErrTruncated), "truncated"},
		{ber.ErrIndefiniteLength, "length"},
		{ber.ErrLengthTooLong, "length"},
		{fmt.Errorf("request-id: %w", ber.ErrIntegerTooLarge), "integer"},
		{ber.ErrZeroLenInteger, "integer"},
		{ber.ErrStringTooLong, "string_too_long"},
		{ber.ErrVlintOverflow, "oid"},
		{ErrInvalidOID, "oid"},
		{ErrUnsupportedVersion, "version"},
		{ErrUnknownPDUType, "pdu_type"},
		{fmt.Errorf("name: %w", fmt.Errorf("%w 0x02", ErrUnexpectedTag)), "tag"},
		{ErrUnknownValueType, "value_type"},
		{ErrMalformedVarbind, "varbind"},
		{ErrNilHeader, "other"},
	}
	for _, test := range tests {
		assert.Equalf(t, test.want, errorReason(test.err), "%v", test.err)
	}
}
