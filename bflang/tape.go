package bflang

// DefaultTapeLength is the number of byte cells in a freshly created
// tape.
const DefaultTapeLength = 30_000

// addCell applies a folded delta to a cell value with unsigned 8-bit
// wraparound in both directions: 255 + 1 is 0, 0 - 1 is 255.
func addCell(cell byte, delta int) byte {
	return byte(int(cell) + delta)
}

// shiftPointer moves the pointer by offset, wrapping modulo the tape
// length so that the pointer always addresses a valid cell. The
// address-width wraparound of the original is deliberately not
// reproduced; see DESIGN.md.
func shiftPointer(pointer int, offset int, length int) int {
	pointer = (pointer + offset) % length
	if pointer < 0 {
		pointer += length
	}
	return pointer
}
