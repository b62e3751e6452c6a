// Copyright 2012 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package snmpcodec

import (
	"flag"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pcap = flag.String("pcap", "", "dir to put encoded messages as pcap files, no pcaps made if blank.")

// udpFrame wraps payload in an IPv4/UDP datagram to the SNMP port.
func udpFrame(payload []byte) ([]byte, error) {
	l3 := &layers.IPv4{
		SrcIP:    net.ParseIP("192.168.2.1"),
		DstIP:    net.ParseIP("192.168.2.2"),
		Protocol: layers.IPProtocolUDP,
		Version:  4,
		TTL:      64,
	}
	l4 := &layers.UDP{
		SrcPort: 49152,
		DstPort: 161,
	}
	err := l4.SetNetworkLayerForChecksum(l3)
	if err != nil {
		return nil, err
	}

	buf := gopacket.NewSerializeBuffer()
	err = gopacket.SerializeLayers(
		buf,
		gopacket.SerializeOptions{
			ComputeChecksums: true,
			FixLengths:       true,
		},
		l3,
		l4,
		gopacket.Payload(payload),
	)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writePcap(fn string, frames ...[]byte) error {
	fn += ".pcap"

	f, err := os.OpenFile(fn, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	w := pcapgo.NewWriter(f)
	err = w.WriteFileHeader(1600, layers.LinkTypeIPv4)
	if err != nil {
		return err
	}

	for _, frame := range frames {
		err = w.WritePacket(gopacket.CaptureInfo{
			Timestamp:     time.Now(),
			CaptureLength: len(frame),
			Length:        len(frame),
		}, frame)
		if err != nil {
			return err
		}
	}
	return nil
}

// snmpPayload parses an IPv4 frame and returns its UDP payload.
func snmpPayload(t *testing.T, frame []byte) []byte {
	t.Helper()
	pkt := gopacket.NewPacket(frame, layers.LayerTypeIPv4, gopacket.Default)
	if errLayer := pkt.ErrorLayer(); errLayer != nil {
		t.Fatalf("error decoding frame: %v", errLayer.Error())
	}
	udpLayer := pkt.Layer(layers.LayerTypeUDP)
	require.NotNil(t, udpLayer, "no UDP layer")
	udp := udpLayer.(*layers.UDP)
	assert.Equal(t, layers.UDPPort(161), udp.DstPort)
	return udp.Payload
}

func TestUDPFraming(t *testing.T) {
	flag.Parse()

	pcapdir := ""
	if *pcap != "" {
		pcapdir = filepath.Join(*pcap, t.Name())
		err := os.MkdirAll(pcapdir, 0777)
		if err != nil {
			t.Fatalf("error creating pcap dir: %s", err)
		}
	}

	tests := []struct {
		name   string
		header Header
		vars   []Varbind
	}{
		{
			name:   "getrequest",
			header: getRequestPrivateHeader,
			vars:   NullVarbinds(enterpriseOID()),
		},
		{
			name:   "getnextrequest",
			header: Header{Version: Version2c, Community: "public", PDUType: GetNextRequest, RequestID: 1000},
			vars:   NullVarbinds(MustParseOID("1.3.6.1.2.1.2.2.1.2"), MustParseOID("1.3.6.1.2.1.2.2.1.10")),
		},
		{
			name:   "getresponse",
			header: Header{Version: Version2c, Community: "public", PDUType: GetResponse, RequestID: 1000},
			vars: []Varbind{
				{Name: MustParseOID("1.3.6.1.2.1.2.2.1.2.1"), Type: OctetString, Value: []byte("eth0")},
				{Name: MustParseOID("1.3.6.1.2.1.2.2.1.10.1"), Type: Counter32, Value: uint32(271070065)},
			},
		},
		{
			name:   "setrequest",
			header: Header{Version: Version1, Community: "private", PDUType: SetRequest, RequestID: 0x80000000},
			vars: []Varbind{
				{Name: MustParseOID("1.3.6.1.2.1.1.6.0"), Type: OctetString, Value: []byte("rack 4")},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			msg, err := Encode(&test.header, test.vars)
			require.NoError(t, err)

			frame, err := udpFrame(msg)
			require.NoError(t, err)

			if pcapdir != "" {
				if err := writePcap(filepath.Join(pcapdir, test.name), frame); err != nil {
					t.Logf("error saving pcap: %s", err.Error())
				}
			}

			payload := snmpPayload(t, frame)
			if diff := cmp.Diff(msg, payload); diff != "" {
				t.Fatalf("UDP payload differs from message:\n%s", diff)
			}

			packet, err := Decode(payload)
			require.NoError(t, err)
			assert.Equal(t, test.header, packet.Header)
			require.Len(t, packet.Variables, len(test.vars))
			for i, vb := range packet.Variables {
				assert.True(t, test.vars[i].Name.Equal(vb.Name))
				assert.Equal(t, test.vars[i].Type, vb.Type)
			}
		})
	}
}

func TestPcapRoundTrip(t *testing.T) {
	request, err := udpFrame(getRequestPrivate)
	require.NoError(t, err)
	response, err := udpFrame(getResponseUptime)
	require.NoError(t, err)

	fn := filepath.Join(t.TempDir(), "exchange")
	require.NoError(t, writePcap(fn, request, response))

	f, err := os.Open(fn + ".pcap")
	require.NoError(t, err)
	defer f.Close()

	r, err := pcapgo.NewReader(f)
	require.NoError(t, err)
	assert.Equal(t, layers.LinkTypeIPv4, r.LinkType())

	var types []PDUType
	for {
		data, _, err := r.ReadPacketData()
		if err != nil {
			break
		}
		packet, err := Decode(snmpPayload(t, data))
		require.NoError(t, err)
		types = append(types, packet.PDUType)
	}
	assert.Equal(t, []PDUType{GetRequest, GetResponse}, types)
}
