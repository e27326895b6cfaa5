package recv

import (
	"errors"
	"fmt"
	"io"
	"os"
	"testing"
)

func TestCategoryMapping(t *testing.T) {
	cases := []struct {
		fault Fault
		want  Category
	}{
		{Decode, CategoryInvalidData},
		{Decrypt, CategoryInvalidData},
		{Duplicate, CategoryInvalidData},
		{StreamMismatch(1, 2), CategoryInvalidData},
		{InvalidFin, CategoryInvalidData},
		{OutOfOrder(10, 7), CategoryInvalidData},
		{UnexpectedRetransmission, CategoryInvalidData},
		{MaxDataExceeded, CategoryLimitExceeded},
		{OutOfRange, CategoryLimitExceeded},
		{TruncatedTransport, CategoryUnexpectedEOF},
		{IdleTimeout, CategoryTimedOut},
		{KeyReplayPrevented, CategoryPermissionDenied},
		{KeyReplayMaybePrevented(5), CategoryPermissionDenied},
		{ApplicationError(1), CategoryConnectionReset},
	}
	for _, tc := range cases {
		if got := tc.fault.Category(); got != tc.want {
			t.Fatalf("expected %v to map to %v, got %v", tc.fault.Kind, tc.want, got)
		}
	}
}

func TestCategoryTotal(t *testing.T) {
	for _, f := range allFaults() {
		c := f.Category()
		if c < CategoryInvalidData || c > CategoryConnectionReset {
			t.Fatalf("expected a mapped category for %v, got %v", f.Kind, c)
		}
	}
}

func TestIOErrorRoundTrip(t *testing.T) {
	for _, orig := range allFaults() {
		err := error(AsIOError(orig))
		// pass through another wrapping layer for good measure
		err = fmt.Errorf("read failed: %w", err)

		var got Fault
		if !errors.As(err, &got) {
			t.Fatalf("expected to recover the fault from %v", err)
		}
		if got != orig {
			t.Fatalf("expected %+v to round trip, got %+v", orig, got)
		}
	}
}

func TestIOErrorSentinels(t *testing.T) {
	if !errors.Is(AsIOError(IdleTimeout), os.ErrDeadlineExceeded) {
		t.Fatalf("expected idle timeout to match os.ErrDeadlineExceeded")
	}
	if !errors.Is(AsIOError(KeyReplayPrevented), os.ErrPermission) {
		t.Fatalf("expected key replay to match os.ErrPermission")
	}
	if !errors.Is(AsIOError(TruncatedTransport), io.ErrUnexpectedEOF) {
		t.Fatalf("expected truncation to match io.ErrUnexpectedEOF")
	}
	if errors.Is(AsIOError(Decode), os.ErrPermission) {
		t.Fatalf("expected decode to not match os.ErrPermission")
	}
}

func TestIOErrorTimeout(t *testing.T) {
	if !AsIOError(IdleTimeout).Timeout() {
		t.Fatalf("expected idle timeout to report Timeout")
	}
	if AsIOError(Decode).Timeout() {
		t.Fatalf("expected decode to not report Timeout")
	}
}

func TestIOErrorMessage(t *testing.T) {
	got := AsIOError(TruncatedTransport).Error()
	want := "unexpected end of input: the transport has been truncated without authentication"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
