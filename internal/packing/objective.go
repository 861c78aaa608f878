package packing

import "github.com/opsintel/opsintel-mcp/internal/domain"

// objectiveValue scores one completed construction per the requested
// objective. Lower is better internally.
func objectiveValue(bins []*binInstance, unpacked []itemInstance, objective domain.PackingObjective) float64 {
	switch objective {
	case domain.PackMaxValue:
		var total float64
		for _, b := range bins {
			for _, it := range b.packed {
				total += it.value
			}
		}
		return -total
	case domain.PackMaxItems:
		packed := 0
		for _, b := range bins {
			packed += len(b.packed)
		}
		return -float64(packed)
	case domain.PackBalanceLoad:
		var pcts []float64
		for _, b := range bins {
			if len(b.packed) == 0 || b.weightCapacity == 0 {
				continue
			}
			pcts = append(pcts, b.usedWeight/b.weightCapacity*100)
		}
		return spread(pcts) + float64(len(unpacked))*1000
	default: // PackMinBins
		used := 0
		for _, b := range bins {
			if len(b.packed) > 0 {
				used++
			}
		}
		return float64(used)*1000 + float64(len(unpacked))
	}
}

func spread(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	min, max := vs[0], vs[0]
	for _, v := range vs {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return max - min
}
