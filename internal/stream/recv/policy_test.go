package recv

import (
	"testing"

	"dclink/internal/transport"
)

func TestEveryFaultFatalOnStream(t *testing.T) {
	for _, f := range allFaults() {
		if !f.IsFatal(transport.TCPFeatures) {
			t.Fatalf("expected %v to be fatal on a stream transport", f.Kind)
		}
	}
}

func TestDatagramRecoverableSet(t *testing.T) {
	recoverable := map[FaultKind]bool{
		KindDecode:         true,
		KindDecrypt:        true,
		KindDuplicate:      true,
		KindStreamMismatch: true,
	}
	for _, f := range allFaults() {
		fatal := f.IsFatal(transport.UDPFeatures)
		if recoverable[f.Kind] && fatal {
			t.Fatalf("expected %v to be recoverable on a datagram transport", f.Kind)
		}
		if !recoverable[f.Kind] && !fatal {
			t.Fatalf("expected %v to be fatal even on a datagram transport", f.Kind)
		}
	}
}

func TestScenarioDuplicateOnDatagram(t *testing.T) {
	// the fatal/non-fatal axis does not change the closure mapping
	if Duplicate.IsFatal(transport.UDPFeatures) {
		t.Fatalf("expected duplicate to be recoverable on datagram")
	}
	cc, ok := Duplicate.ConnectionClose()
	if !ok {
		t.Fatalf("expected duplicate to map to a closure signal")
	}
	if cc.Category() != "PROTOCOL_VIOLATION" {
		t.Fatalf("expected PROTOCOL_VIOLATION, got %s", cc.Category())
	}
}

func TestScenarioDuplicateOnStream(t *testing.T) {
	if !Duplicate.IsFatal(transport.TCPFeatures) {
		t.Fatalf("expected transport shape alone to make duplicate fatal")
	}
}

func TestScenarioOutOfOrder(t *testing.T) {
	f := OutOfOrder(10, 7)
	for _, features := range []transport.Features{transport.UDPFeatures, transport.TCPFeatures} {
		if !f.IsFatal(features) {
			t.Fatalf("expected out-of-order to be fatal on %v", features)
		}
	}
}
