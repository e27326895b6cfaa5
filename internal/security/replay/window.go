package replay

// WindowSize is the number of sequence numbers the window tracks.
const WindowSize = 64

// Window is a sliding bit window over packet sequence numbers. It is not
// synchronized: each direction's key owns exactly one Window and the
// surrounding connection serializes calls onto it.
type Window struct {
	base uint64 // highest sequence number observed
	bits uint64 // bit i set means base-i was observed
	seen bool
}

// Observe records seq and returns nil if it was not observed before. A set
// bit inside the window is a definite replay. A sequence number below the
// window floor may have been shifted out already, so it is only a potential
// replay; the signal carries the distance below the floor.
func (w *Window) Observe(seq uint64) *Signal {
	if !w.seen {
		w.seen = true
		w.base = seq
		w.bits = 1
		return nil
	}

	if seq > w.base {
		diff := seq - w.base
		if diff >= WindowSize {
			w.bits = 1
		} else {
			w.bits = w.bits<<diff | 1
		}
		w.base = seq
		return nil
	}

	diff := w.base - seq
	if diff >= WindowSize {
		floor := w.base - (WindowSize - 1)
		return PotentiallyDetected(floor - seq)
	}

	bit := uint64(1) << diff
	if w.bits&bit != 0 {
		return DefinitelyDetected()
	}
	w.bits |= bit
	return nil
}

// Reset clears the window.
func (w *Window) Reset() {
	w.base = 0
	w.bits = 0
	w.seen = false
}
