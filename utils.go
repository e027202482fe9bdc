package position

// extendSlice extends a slice by n elements, reallocating if necessary.
func extendSlice[T any](s []T, n int) []T {
	newLen := len(s) + n
	if cap(s) >= newLen {
		return s[:newLen]
	}
	newCap := max(2*cap(s), newLen)
	ns := make([]T, newLen, newCap)
	copy(ns, s)
	return ns
}

// insertAt places v at index i, moving s[i:] one slot to the right.
// i may equal len(s), in which case v is appended.
func insertAt[T any](s []T, i int, v T) []T {
	s = extendSlice(s, 1)
	copy(s[i+1:], s[i:len(s)-1])
	s[i] = v
	return s
}
