package bflang

import "testing"

func TestAddCell(t *testing.T) {
	tests := []struct {
		cell     byte
		delta    int
		expected byte
	}{
		{0, 1, 1},
		{255, 1, 0},
		{0, -1, 255},
		{0, 256, 0},
		{0, 257, 1},
		{100, -300, 56},
		{42, 0, 42},
	}
	for _, test := range tests {
		if got := addCell(test.cell, test.delta); got != test.expected {
			t.Fatalf("addCell(%d, %d): got %d", test.cell, test.delta, got)
		}
	}
}

func TestShiftPointer(t *testing.T) {
	tests := []struct {
		pointer  int
		offset   int
		length   int
		expected int
	}{
		{0, 1, 10, 1},
		{9, 1, 10, 0},
		{0, -1, 10, 9},
		{0, -11, 10, 9},
		{5, 20, 10, 5},
		{0, 0, 10, 0},
	}
	for _, test := range tests {
		if got := shiftPointer(test.pointer, test.offset, test.length); got != test.expected {
			t.Fatalf("shiftPointer(%d, %d, %d): got %d",
				test.pointer, test.offset, test.length, got)
		}
	}
}
