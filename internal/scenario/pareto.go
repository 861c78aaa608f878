package scenario

import "math"

// ParetoWeights builds the weight-vector set for weighted-sum
// scalarization: unit basis vectors, the normalized
// user-supplied vector, and either an even 2-objective fill or a simplex
// grid for 3+ objectives, deduplicated by l-infinity distance.
func ParetoWeights(numObjectives int, userWeights []float64, numPoints int) [][]float64 {
	var emitted [][]float64
	add := func(w []float64) {
		for _, e := range emitted {
			if linfDistance(e, w) < 0.01 {
				return
			}
		}
		emitted = append(emitted, w)
	}

	for i := 0; i < numObjectives; i++ {
		w := make([]float64, numObjectives)
		w[i] = 1
		add(w)
	}

	if len(userWeights) == numObjectives {
		norm := normalize(userWeights)
		add(norm)
	}

	switch {
	case numObjectives == 2:
		steps := numPoints
		if steps < 2 {
			steps = 2
		}
		for i := 0; i <= steps; i++ {
			alpha := float64(i) / float64(steps)
			add([]float64{alpha, 1 - alpha})
		}
	case numObjectives >= 3:
		resolution := int(math.Ceil(math.Pow(float64(numPoints), 1/float64(numObjectives-1))))
		if resolution < 2 {
			resolution = 2
		}
		for _, w := range simplexGrid(numObjectives, resolution-1) {
			add(w)
		}
	}

	return emitted
}

func normalize(w []float64) []float64 {
	var sum float64
	for _, v := range w {
		sum += v
	}
	out := make([]float64, len(w))
	if sum == 0 {
		for i := range out {
			out[i] = 1 / float64(len(w))
		}
		return out
	}
	for i, v := range w {
		out[i] = v / sum
	}
	return out
}

func linfDistance(a, b []float64) float64 {
	var maxDiff float64
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff
}

// simplexGrid enumerates all integer compositions of m into n non-negative
// parts, normalized to sum to 1 — the standard lattice used to sample a
// simplex at a given resolution.
func simplexGrid(n, m int) [][]float64 {
	var out [][]float64
	var rec func(remaining int, dims int, acc []int)
	rec = func(remaining int, dims int, acc []int) {
		if dims == 1 {
			full := append(append([]int(nil), acc...), remaining)
			w := make([]float64, len(full))
			for i, v := range full {
				if m == 0 {
					w[i] = 1 / float64(len(full))
				} else {
					w[i] = float64(v) / float64(m)
				}
			}
			out = append(out, w)
			return
		}
		for k := 0; k <= remaining; k++ {
			next := make([]int, len(acc)+1)
			copy(next, acc)
			next[len(acc)] = k
			rec(remaining-k, dims-1, next)
		}
	}
	rec(m, n, nil)
	return out
}
