// Package packing implements PackingSolver for multi-dimensional
// bin packing with optional grouping and partial-packing tolerance.
package packing

import (
	"fmt"

	"github.com/opsintel/opsintel-mcp/internal/domain"
)

// itemInstance is one physical copy of a requested Item (quantity expanded).
type itemInstance struct {
	instanceID string
	originalID string
	weight     float64
	volume     float64
	value      float64
	group      string
}

// binInstance is one physical copy of a requested Bin, tracking remaining
// capacity and the instances currently packed into it.
type binInstance struct {
	instanceID     string
	originalID     string
	weightCapacity float64
	volumeCapacity float64
	maxItems       *int
	cost           float64

	usedWeight float64
	usedVolume float64
	packed     []itemInstance
}

func (b *binInstance) add(it itemInstance) {
	b.usedWeight += it.weight
	b.usedVolume += it.volume
	b.packed = append(b.packed, it)
}

func expandItems(items []domain.Item) []itemInstance {
	var out []itemInstance
	for _, it := range items {
		for q := 1; q <= it.Quantity; q++ {
			out = append(out, itemInstance{
				instanceID: fmt.Sprintf("%s#%d", it.ItemID, q),
				originalID: it.ItemID,
				weight:     it.Weight,
				volume:     it.Volume,
				value:      it.Value,
				group:      it.Group,
			})
		}
	}
	return out
}

func expandBins(bins []domain.Bin) []*binInstance {
	var out []*binInstance
	for _, b := range bins {
		for q := 1; q <= b.Quantity; q++ {
			out = append(out, &binInstance{
				instanceID:     fmt.Sprintf("%s#%d", b.BinID, q),
				originalID:     b.BinID,
				weightCapacity: b.WeightCapacity,
				volumeCapacity: b.VolumeCapacity,
				maxItems:       b.MaxItems,
				cost:           b.Cost,
			})
		}
	}
	return out
}
