// Copyright 2012 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package snmpcodec

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gosnmp/snmpcodec/ber"
)

// Metrics counts the messages passing through a Codec. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	encodedTotal *prometheus.CounterVec
	decodedTotal *prometheus.CounterVec
	decodeErrors *prometheus.CounterVec
	messageBytes *prometheus.HistogramVec
}

// NewMetrics creates the codec metrics and registers them with reg. A nil
// reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		encodedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "snmpcodec_messages_encoded_total",
			Help: "Total SNMP messages encoded.",
		}, []string{"pdu_type"}),
		decodedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "snmpcodec_messages_decoded_total",
			Help: "Total SNMP messages decoded.",
		}, []string{"pdu_type"}),
		decodeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "snmpcodec_decode_errors_total",
			Help: "Total SNMP messages rejected by the decoder.",
		}, []string{"reason"}),
		messageBytes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "snmpcodec_message_bytes",
			Help:    "Size of encoded and decoded SNMP messages.",
			Buckets: prometheus.ExponentialBuckets(32, 2, 8),
		}, []string{"direction"}),
	}
	if reg != nil {
		reg.MustRegister(m.encodedTotal, m.decodedTotal, m.decodeErrors, m.messageBytes)
	}
	return m
}

func (m *Metrics) encoded(t PDUType, size int) {
	if m == nil {
		return
	}
	m.encodedTotal.WithLabelValues(t.String()).Inc()
	m.messageBytes.WithLabelValues("encode").Observe(float64(size))
}

func (m *Metrics) decoded(t PDUType, size int) {
	if m == nil {
		return
	}
	m.decodedTotal.WithLabelValues(t.String()).Inc()
	m.messageBytes.WithLabelValues("decode").Observe(float64(size))
}

func (m *Metrics) decodeFailed(err error) {
	if m == nil {
		return
	}
	m.decodeErrors.WithLabelValues(errorReason(err)).Inc()
}

// errorReason maps a decode error to a bounded label value.
func errorReason(err error) string {
	switch {
	case errors.Is(err, ber.ErrTruncated):
		return "truncated"
	case errors.Is(err, ber.ErrIndefiniteLength), errors.Is(err, ber.ErrLengthTooLong):
		return "length"
	case errors.Is(err, ber.ErrIntegerTooLarge), errors.Is(err, ber.ErrZeroLenInteger):
		return "integer"
	case errors.Is(err, ber.ErrStringTooLong):
		return "string_too_long"
	case errors.Is(err, ber.ErrVlintOverflow), errors.Is(err, ber.ErrVlintTooLong),
		errors.Is(err, ErrInvalidOID):
		return "oid"
	case errors.Is(err, ErrUnsupportedVersion):
		return "version"
	case errors.Is(err, ErrUnknownPDUType):
		return "pdu_type"
	case errors.Is(err, ErrUnexpectedTag):
		return "tag"
	case errors.Is(err, ErrUnknownValueType):
		return "value_type"
	case errors.Is(err, ErrMalformedVarbind):
		return "varbind"
	default:
		return "other"
	}
}
