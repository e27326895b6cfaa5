// Package transport describes the delivery shape of the underlay carrying
// a connection.
package transport

import (
	"crypto/tls"
	"net"

	quic "github.com/quic-go/quic-go"
	kcp "github.com/xtaci/kcp-go/v5"
	"github.com/xtaci/smux"
)

// Features describes the delivery guarantees of an underlay. It is fixed
// for the lifetime of a connection and supplied at connection setup.
type Features uint8

const (
	// FeatureReliable marks an underlay that retransmits lost data.
	FeatureReliable Features = 1 << iota

	// FeatureOrdered marks an underlay that delivers data in order.
	FeatureOrdered

	// FeatureByteStream marks an underlay without record boundaries.
	FeatureByteStream
)

// Shapes of the underlays dclink runs over.
const (
	// UDPFeatures is the datagram shape: unreliable, unordered, framed.
	UDPFeatures Features = 0

	// TCPFeatures is the stream shape: reliable, ordered, unframed.
	TCPFeatures Features = FeatureReliable | FeatureOrdered | FeatureByteStream
)

// IsStream reports whether the underlay behaves as a reliable ordered byte
// stream. Once framing or order is disturbed on such an underlay the
// remaining byte sequence cannot be trusted.
func (f Features) IsStream() bool {
	return f&TCPFeatures == TCPFeatures
}

// IsDatagram reports whether the underlay delivers independent records
// that can be dropped individually.
func (f Features) IsDatagram() bool {
	return !f.IsStream()
}

// String returns the shape name.
func (f Features) String() string {
	if f.IsStream() {
		return "stream"
	}
	return "datagram"
}

// FeaturesOf classifies a concrete underlay session. Unknown types are
// treated as stream-shaped, the shape under which every fault is fatal.
func FeaturesOf(session any) Features {
	switch session.(type) {
	case *net.TCPConn, *tls.Conn, *smux.Stream, *kcp.UDPSession, *quic.Stream:
		return TCPFeatures
	case *net.UDPConn, *quic.Conn:
		return UDPFeatures
	default:
		return TCPFeatures
	}
}
