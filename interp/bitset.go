package interp

// Bitset is a fixed size set of slot indices packed into 64 bit words.
type Bitset []uint64

// NewBitset returns a bitset able to hold n bits.
func NewBitset(n int) Bitset {
	return make(Bitset, (n+63)>>6)
}

// Set marks bit i.
func (b Bitset) Set(i int) {
	b[i>>6] |= uint64(1) << uint(i&63)
}

// Unset clears bit i.
func (b Bitset) Unset(i int) {
	b[i>>6] &^= uint64(1) << uint(i&63)
}

// Put sets or clears bit i.
func (b Bitset) Put(i int, v bool) {
	if v {
		b.Set(i)
	} else {
		b.Unset(i)
	}
}

// Has reports whether bit i is set.
func (b Bitset) Has(i int) bool {
	return b[i>>6]&(uint64(1)<<uint(i&63)) != 0
}

// Reset clears every bit.
func (b Bitset) Reset() {
	clear(b)
}

// CopyFrom overwrites b with src. Both must have the same length.
func (b Bitset) CopyFrom(src Bitset) {
	copy(b, src)
}

// Any reports whether any bit is set.
func (b Bitset) Any() bool {
	for _, w := range b {
		if w != 0 {
			return true
		}
	}
	return false
}
