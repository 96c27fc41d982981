// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package sumton provides three interchangeable ways of computing the
// triangular number 1 + 2 + ... + n.
package sumton

// SumIterative accumulates the sum in a loop. O(n) time, O(1) space.
func SumIterative(n int64) int64 {
	var sum int64
	for i := int64(1); i <= n; i++ {
		sum += i
	}
	return sum
}

// SumRecursive expresses the sum as n + sum(n-1). O(n) time, but the
// call stack grows with n, so it is the wrong choice for very large
// inputs.
func SumRecursive(n int64) int64 {
	if n <= 1 {
		if n < 0 {
			return 0
		}
		return n
	}
	return n + SumRecursive(n-1)
}

// SumFormula uses the closed form n*(n+1)/2. O(1) time and space.
// Overflows int64 around n = 4.2e9; callers with inputs that large
// should not be using int64 arithmetic in the first place.
func SumFormula(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n * (n + 1) / 2
}
