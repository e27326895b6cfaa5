package recv

// BufferFaultKind identifies an error raised by the reassembly buffer.
type BufferFaultKind uint8

const (
	// BufferOutOfRange marks a write outside the buffer's allowed range.
	BufferOutOfRange BufferFaultKind = iota + 1

	// BufferInvalidFin marks a fin that contradicts known stream length.
	BufferInvalidFin

	// BufferReader carries a fault from the reader feeding the buffer.
	BufferReader
)

// BufferFault is the reassembly buffer's error surface, folded into the
// fault taxonomy before it reaches the policy.
type BufferFault struct {
	Kind   BufferFaultKind
	Reader Fault // meaningful for BufferReader
}

func (b BufferFault) Error() string {
	return FromBufferFault(b).Error()
}

// FromBufferFault converts a reassembly buffer error into a fault.
func FromBufferFault(b BufferFault) Fault {
	switch b.Kind {
	case BufferOutOfRange:
		return OutOfRange
	case BufferInvalidFin:
		return InvalidFin
	default:
		return b.Reader
	}
}
