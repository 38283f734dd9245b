package mosaic

// checksumWindow accumulates up to ChecksumPeriod 5-byte blocks and
// answers the XOR-reduced checksum over them (spec.md §3, §4.3). It
// mirrors counters.go's shape: a small fixed-capacity accumulator with
// an explicit drain-and-reset cycle, even though the payload here is
// raw block bytes rather than frequency counts.
type checksumWindow struct {
	blocks   [][blockBytesConst]byte
	capacity int
}

func newChecksumWindow(capacity int) *checksumWindow {
	return &checksumWindow{
		blocks:   make([][blockBytesConst]byte, 0, capacity),
		capacity: capacity,
	}
}

// add appends a block to the window. The caller is responsible for
// draining (via checksum+reset) once full() reports true.
func (w *checksumWindow) add(block [blockBytesConst]byte) {
	w.blocks = append(w.blocks, block)
}

func (w *checksumWindow) full() bool {
	return len(w.blocks) == w.capacity
}

func (w *checksumWindow) reset() {
	w.blocks = w.blocks[:0]
}

// checksum computes (XOR of all bytes in the window's blocks) mod base.
// Bitwise XOR is order-independent (spec.md §4.3).
func (w *checksumWindow) checksum(base int) int {
	var x byte
	for _, block := range w.blocks {
		for _, b := range block {
			x ^= b
		}
	}
	return int(x) % base
}
