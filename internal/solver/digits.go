package solver

import "math/bits"

// digitSet is a subset of the digits 1..9, one bit per digit.
type digitSet uint16

const allDigits digitSet = 0x3fe // bits 1..9 set

func single(d uint8) digitSet { return 1 << d }

func (s digitSet) has(d uint8) bool { return s&(1<<d) != 0 }

func (s digitSet) without(d uint8) digitSet { return s &^ (1 << d) }

func (s digitSet) count() int { return bits.OnesCount16(uint16(s)) }

// sole returns the only digit in the set, if the set is a singleton.
func (s digitSet) sole() (uint8, bool) {
	if s.count() != 1 {
		return 0, false
	}
	return uint8(bits.TrailingZeros16(uint16(s))), true
}

// digits lists the members in ascending order.
func (s digitSet) digits() []uint8 {
	out := make([]uint8, 0, s.count())
	for d := uint8(1); d <= 9; d++ {
		if s.has(d) {
			out = append(out, d)
		}
	}
	return out
}
