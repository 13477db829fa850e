package domain

import "math/bits"

// MaxSelectionSize caps how many drawn numbers can be active at once.
const MaxSelectionSize = 6

// Selection is a set of drawn numbers in [MinNumber, MaxNumber], stored as a
// bitmask with bit n representing number n. The zero value is the empty set.
// Selection values are immutable; Add and Remove return new sets.
type Selection uint64

// NewSelection builds a Selection from the given numbers.
// Out-of-range values are ignored.
func NewSelection(numbers ...int) Selection {
	var s Selection
	for _, n := range numbers {
		s = s.Add(n)
	}
	return s
}

// Has reports whether n is in the selection.
func (s Selection) Has(n int) bool {
	if n < MinNumber || n > MaxNumber {
		return false
	}
	return s&(1<<uint(n)) != 0
}

// Add returns the selection with n included. Out-of-range values are ignored.
func (s Selection) Add(n int) Selection {
	if n < MinNumber || n > MaxNumber {
		return s
	}
	return s | 1<<uint(n)
}

// Remove returns the selection with n excluded.
func (s Selection) Remove(n int) Selection {
	if n < MinNumber || n > MaxNumber {
		return s
	}
	return s &^ (1 << uint(n))
}

// Size returns how many numbers are selected.
func (s Selection) Size() int {
	return bits.OnesCount64(uint64(s))
}

// Numbers returns the selected numbers in ascending order.
func (s Selection) Numbers() []int {
	nums := make([]int, 0, s.Size())
	for n := MinNumber; n <= MaxNumber; n++ {
		if s.Has(n) {
			nums = append(nums, n)
		}
	}
	return nums
}
