package recv

import "dclink/internal/transport"

// IsFatal reports whether the connection must terminate after f was
// observed on an underlay with the given features. On a reliable ordered
// byte stream every fault is fatal: once framing or order is disturbed the
// remaining byte sequence cannot be trusted. On a datagram underlay a
// single corrupt unit can be dropped, so decode, decrypt, duplicate and
// stream-mismatch faults are recoverable; everything else still terminates
// the connection.
func (f Fault) IsFatal(features transport.Features) bool {
	if features.IsStream() {
		return true
	}
	switch f.Kind {
	case KindDecode, KindDecrypt, KindDuplicate, KindStreamMismatch:
		return false
	default:
		return true
	}
}
