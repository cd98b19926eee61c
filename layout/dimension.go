// Package layout implements the container algebra: the Dimension/Distribute
// layout math, the Container/Control vtable interfaces, and the concrete
// container variants (Window, HSplit/VSplit, FloatContainer,
// ConditionalContainer, the decorator family, PrintingContainer).
package layout

// Dimension is a width/height layout constraint: a minimum, a preferred
// value, a maximum, and a weight used to distribute slack among siblings.
type Dimension struct {
	Min, Preferred, Max int
	Weight              int
}

// Exact returns a Dimension that is fixed at n in every field, weight 1.
func Exact(n int) Dimension {
	return Dimension{Min: n, Preferred: n, Max: n, Weight: 1}
}

// Distribute turns a sequence of Dimensions plus a total budget into
// concrete integer sizes, per the layout algebra: fail if the sum of
// minimums exceeds total; otherwise start every size at its minimum, grow
// toward preferred proportionally to weight, then distribute any remaining
// slack by weight up to each Dimension's maximum. The result's sum never
// exceeds total; excess stays unallocated.
func Distribute(total int, dims []Dimension) ([]int, bool) {
	n := len(dims)
	sizes := make([]int, n)
	minSum := 0
	for i, d := range dims {
		sizes[i] = d.Min
		minSum += d.Min
	}
	if minSum > total {
		return nil, false
	}

	growToward(sizes, dims, total, func(d Dimension) int { return d.Preferred })
	growToward(sizes, dims, total, func(d Dimension) int { return d.Max })

	return sizes, true
}

// growToward distributes the slack between the current sizes and total,
// weighted by each dimension's weight, without exceeding the per-dimension
// ceiling returned by ceiling for any entry.
func growToward(sizes []int, dims []Dimension, total int, ceiling func(Dimension) int) {
	for {
		used := 0
		for _, s := range sizes {
			used += s
		}
		slack := total - used
		if slack <= 0 {
			return
		}

		totalWeight := 0
		var eligible []int
		for i, d := range dims {
			cap := ceiling(d)
			if sizes[i] < cap {
				w := d.Weight
				if w <= 0 {
					w = 1
				}
				totalWeight += w
				eligible = append(eligible, i)
			}
		}
		if len(eligible) == 0 {
			return
		}

		progressed := false
		remaining := slack
		for idx, i := range eligible {
			d := dims[i]
			w := d.Weight
			if w <= 0 {
				w = 1
			}
			var share int
			if idx == len(eligible)-1 {
				share = remaining
			} else {
				share = slack * w / totalWeight
			}
			cap := ceiling(d)
			if sizes[i]+share > cap {
				share = cap - sizes[i]
			}
			if share > 0 {
				sizes[i] += share
				remaining -= share
				progressed = true
			}
		}
		if !progressed {
			return
		}
	}
}
