package recv

import (
	"testing"

	"dclink/internal/security/replay"
)

// one representative fault per kind
func allFaults() []Fault {
	return []Fault{
		Decode,
		Decrypt,
		Duplicate,
		StreamMismatch(1, 2),
		OutOfOrder(10, 7),
		MaxDataExceeded,
		InvalidFin,
		OutOfRange,
		UnexpectedRetransmission,
		TruncatedTransport,
		IdleTimeout,
		KeyReplayPrevented,
		KeyReplayMaybePrevented(5),
		KeyReplayMaybePreventedNoGap(),
		ApplicationError(0x17),
	}
}

func TestFromReplaySignalDefinite(t *testing.T) {
	f := FromReplaySignal(replay.DefinitelyDetected())
	if f != KeyReplayPrevented {
		t.Fatalf("expected KeyReplayPrevented, got %v", f.Kind)
	}
}

func TestFromReplaySignalPotentialPreservesGap(t *testing.T) {
	f := FromReplaySignal(replay.PotentiallyDetected(5))
	if f.Kind != KindKeyReplayMaybePrevented {
		t.Fatalf("expected KeyReplayMaybePrevented, got %v", f.Kind)
	}
	if !f.HasGap || f.Gap != 5 {
		t.Fatalf("expected gap 5 to be preserved, got (%d, %t)", f.Gap, f.HasGap)
	}

	f = FromReplaySignal(replay.PotentiallyDetectedNoGap())
	if f.Kind != KindKeyReplayMaybePrevented || f.HasGap {
		t.Fatalf("expected absent gap to be preserved, got %+v", f)
	}
}

func TestFromReplaySignalInvalidTag(t *testing.T) {
	if f := FromReplaySignal(replay.InvalidTag()); f != Decrypt {
		t.Fatalf("expected Decrypt, got %v", f.Kind)
	}
}

func TestFaultMessages(t *testing.T) {
	cases := map[string]struct {
		fault Fault
		want  string
	}{
		"decode":    {Decode, "could not decode packet"},
		"mismatch":  {StreamMismatch(3, 7), "the packet was for another stream (7) but was handled by 3"},
		"order":     {OutOfOrder(10, 7), "the stream expected in-order delivery of 10 but got 7"},
		"replay":    {KeyReplayMaybePrevented(5), "the crypto key has been potentially replayed (gap: 5) and is invalid"},
		"no gap":    {KeyReplayMaybePreventedNoGap(), "the crypto key has been potentially replayed and is invalid"},
		"app error": {ApplicationError(23), "application error: 23"},
	}
	for name, tc := range cases {
		if got := tc.fault.Error(); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", name, tc.want, got)
		}
	}
}

func TestKindNamesDistinct(t *testing.T) {
	seen := make(map[string]FaultKind)
	for _, f := range allFaults() {
		name := f.Kind.String()
		if prev, ok := seen[name]; ok && prev != f.Kind {
			t.Fatalf("kinds %v and %v share the name %q", prev, f.Kind, name)
		}
		seen[name] = f.Kind
	}
}

func TestFromBufferFault(t *testing.T) {
	if f := FromBufferFault(BufferFault{Kind: BufferOutOfRange}); f != OutOfRange {
		t.Fatalf("expected OutOfRange, got %v", f.Kind)
	}
	if f := FromBufferFault(BufferFault{Kind: BufferInvalidFin}); f != InvalidFin {
		t.Fatalf("expected InvalidFin, got %v", f.Kind)
	}
	inner := StreamMismatch(1, 2)
	if f := FromBufferFault(BufferFault{Kind: BufferReader, Reader: inner}); f != inner {
		t.Fatalf("expected inner fault to pass through, got %v", f.Kind)
	}
}

func TestRecord(t *testing.T) {
	// counting must not panic for any kind
	for _, f := range allFaults() {
		Record(f)
	}
}
