package snailfish

import "github.com/cespare/wait"

// Sum adds nums together from left to right and returns the reduced result.
// The elements of nums are not modified. Sum returns nil if nums is empty.
func Sum(nums []*Number) *Number {
	if len(nums) == 0 {
		return nil
	}
	sum := nums[0].Clone()
	for _, n := range nums[1:] {
		sum = Add(sum, n.Clone())
	}
	return sum
}

// MaxPairMagnitude returns the largest magnitude of a+b over every ordered
// pair of distinct elements a and b of nums (by position, so equal values on
// different lines still count as a pair). It returns 0 if nums has fewer than
// two elements. The elements of nums are not modified.
//
// If workers > 1, rows of the search are spread over that many goroutines;
// the result is the same as the sequential search.
func MaxPairMagnitude(nums []*Number, workers int) int {
	if workers <= 1 {
		var best int
		for i := range nums {
			best = max(best, rowMax(nums, i))
		}
		return best
	}

	rows := make(chan int)
	best := make([]int, workers)
	var wg wait.Group
	for w := range workers {
		wg.Go(func(quit <-chan struct{}) error {
			for i := range rows {
				best[w] = max(best[w], rowMax(nums, i))
			}
			return nil
		})
	}
	wg.Go(func(quit <-chan struct{}) error {
		defer close(rows)
		for i := range nums {
			select {
			case rows <- i:
			case <-quit:
				return nil
			}
		}
		return nil
	})
	wg.Wait()

	var m int
	for _, b := range best {
		m = max(m, b)
	}
	return m
}

// rowMax returns the largest magnitude of nums[i]+nums[j] for j != i.
func rowMax(nums []*Number, i int) int {
	var best int
	for j := range nums {
		if j == i {
			continue
		}
		best = max(best, Add(nums[i].Clone(), nums[j].Clone()).Magnitude())
	}
	return best
}
