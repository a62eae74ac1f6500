package diff

import (
	"time"

	"github.com/cflag/rope/rope"
)

// expired reports whether deadline has passed, when one is set.
func expired(deadline time.Time, has bool) bool {
	return has && time.Now().After(deadline)
}

// bisect finds a split point (x, y) such that diffing a[..x] vs b[..y] and
// a[x..] vs b[y..] independently yields an overall-minimal edit script, via
// Myers' O(ND) middle-snake technique: a forward frontier expanding from
// (0,0) and a reverse frontier expanding from (n,m) are advanced in
// lock-step until they overlap. It returns ok=false if the deadline passed
// before they did, in which case the caller falls back to a single
// Delete/Insert pair for the whole span.
func bisect[T comparable](a, b *rope.Rope[T], eqFn func(a, b T) bool, deadline time.Time, hasDeadline bool) (x, y int, ok bool) {
	n, m := a.Length(), b.Length()
	maxD := (n + m + 1) / 2
	vOffset := maxD
	vLength := 2*maxD + 1

	v1 := make([]int, vLength)
	v2 := make([]int, vLength)
	for i := range v1 {
		v1[i] = -1
		v2[i] = -1
	}
	v1[vOffset+1] = 0
	v2[vOffset+1] = 0

	delta := n - m
	front := delta%2 != 0

	k1start, k1end := 0, 0
	k2start, k2end := 0, 0

	for d := 0; d <= maxD; d++ {
		if expired(deadline, hasDeadline) {
			return 0, 0, false
		}

		for k1 := -d + k1start; k1 <= d-k1end; k1 += 2 {
			k1Off := vOffset + k1
			var x1 int
			if k1 == -d || (k1 != d && v1[k1Off-1] < v1[k1Off+1]) {
				x1 = v1[k1Off+1]
			} else {
				x1 = v1[k1Off-1] + 1
			}
			y1 := x1 - k1
			for x1 < n && y1 < m && eqFn(a.At(x1), b.At(y1)) {
				x1++
				y1++
			}
			v1[k1Off] = x1

			switch {
			case x1 > n:
				k1end += 2
			case y1 > m:
				k1start += 2
			case front:
				k2Off := vOffset + (delta - k1)
				if k2Off >= 0 && k2Off < vLength && v2[k2Off] != -1 {
					x2 := n - v2[k2Off]
					if x1 >= x2 {
						return x1, y1, true
					}
				}
			}
		}

		for k2 := -d + k2start; k2 <= d-k2end; k2 += 2 {
			k2Off := vOffset + k2
			var x2 int
			if k2 == -d || (k2 != d && v2[k2Off-1] < v2[k2Off+1]) {
				x2 = v2[k2Off+1]
			} else {
				x2 = v2[k2Off-1] + 1
			}
			y2 := x2 - k2
			for x2 < n && y2 < m && eqFn(a.At(n-x2-1), b.At(m-y2-1)) {
				x2++
				y2++
			}
			v2[k2Off] = x2

			switch {
			case x2 > n:
				k2end += 2
			case y2 > m:
				k2start += 2
			case !front:
				k1Off := vOffset + (delta - k2)
				if k1Off >= 0 && k1Off < vLength && v1[k1Off] != -1 {
					x1 := v1[k1Off]
					y1 := x1 - (delta - k2)
					flippedX2 := n - x2
					if x1 >= flippedX2 {
						return x1, y1, true
					}
				}
			}
		}
	}

	// Unreachable for finite inputs: the frontiers always meet by
	// d == maxD. Report no split so the caller falls back to a single
	// Delete/Insert pair if this is ever hit.
	return 0, 0, false
}
