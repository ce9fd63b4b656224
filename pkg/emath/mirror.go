package emath

// Mirror maps an out-of-range tap index onto [0, n) by reflection:
// i < 0 maps to -i, and i >= n maps to 2n-i-1. Indices more than one
// reflection away (only possible when n is smaller than the kernel) are
// folded again until they land in range.
func Mirror(i, n int) int {
	if n <= 0 { return 0 }
	for i < 0 || i >= n {
		if i < 0 {
			i = -i
		}
		if i >= n {
			i = 2*n - i - 1
		}
	}
	return i
}
