package packing

import (
	"sort"

	"github.com/opsintel/opsintel-mcp/internal/domain"
)

func project(bins []*binInstance, unpacked []itemInstance) ([]domain.ItemAssignment, []domain.BinSummary) {
	var assignments []domain.ItemAssignment
	var summaries []domain.BinSummary

	for _, b := range bins {
		used := len(b.packed) > 0
		var pct float64
		if used && b.weightCapacity > 0 {
			pct = round2(b.usedWeight / b.weightCapacity * 100)
		}
		summaries = append(summaries, domain.BinSummary{
			BinInstanceID: b.instanceID,
			OriginalBinID: b.originalID,
			IsUsed:        used,
			ItemCount:     len(b.packed),
			TotalWeight:   round2(b.usedWeight),
			TotalVolume:   round2(b.usedVolume),
			UtilizationPc: pct,
		})
		for _, it := range b.packed {
			assignments = append(assignments, domain.ItemAssignment{
				InstanceID:    it.instanceID,
				OriginalID:    it.originalID,
				BinInstanceID: b.instanceID,
				OriginalBinID: b.originalID,
				Packed:        true,
			})
		}
	}
	for _, it := range unpacked {
		assignments = append(assignments, domain.ItemAssignment{
			InstanceID: it.instanceID,
			OriginalID: it.originalID,
			Packed:     false,
		})
	}

	sort.Slice(assignments, func(i, j int) bool { return assignments[i].InstanceID < assignments[j].InstanceID })
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].BinInstanceID < summaries[j].BinInstanceID })
	return assignments, summaries
}

func computeMetrics(bins []*binInstance, unpacked []itemInstance) *domain.PackingMetrics {
	m := &domain.PackingMetrics{}
	var utilSum float64
	var usedCount int
	for _, b := range bins {
		if len(b.packed) == 0 {
			continue
		}
		usedCount++
		m.BinsUsed++
		m.TotalBinCost += b.cost
		m.TotalWeight += b.usedWeight
		m.TotalVolume += b.usedVolume
		if b.weightCapacity > 0 {
			utilSum += b.usedWeight / b.weightCapacity * 100
		}
		for _, it := range b.packed {
			m.ItemsPacked++
			m.TotalValue += it.value
		}
	}
	m.ItemsUnpacked = len(unpacked)
	if usedCount > 0 {
		m.AverageUtilization = round2(utilSum / float64(usedCount))
	}
	m.TotalValue = round2(m.TotalValue)
	m.TotalWeight = round2(m.TotalWeight)
	m.TotalVolume = round2(m.TotalVolume)
	m.TotalBinCost = round2(m.TotalBinCost)
	return m
}

func round2(v float64) float64 { return float64(int64(v*100+0.5)) / 100 }
