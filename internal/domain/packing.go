package domain

import "fmt"

// PackingObjective is the closed set of bin-packing objectives.
type PackingObjective string

const (
	PackMinBins    PackingObjective = "minimize_bins"
	PackMaxValue   PackingObjective = "maximize_value"
	PackMaxItems   PackingObjective = "maximize_items"
	PackBalanceLoad PackingObjective = "balance_load"
)

// Item is a unit of cargo, possibly representing multiple identical copies.
type Item struct {
	ItemID   string  `json:"item_id"`
	Weight   float64 `json:"weight"`
	Volume   float64 `json:"volume"`
	Value    float64 `json:"value"`
	Quantity int     `json:"quantity"`
	Group    string  `json:"group,omitempty"`
}

// Bin is a container, possibly representing multiple identical copies.
type Bin struct {
	BinID           string  `json:"bin_id"`
	WeightCapacity  float64 `json:"weight_capacity"`
	VolumeCapacity  float64 `json:"volume_capacity"`
	MaxItems        *int    `json:"max_items,omitempty"`
	Cost            float64 `json:"cost"`
	Quantity        int     `json:"quantity"`
}

// PackingRequest is the input to PackingSolver.
type PackingRequest struct {
	Items               []Item           `json:"items"`
	Bins                []Bin            `json:"bins"`
	Objective           PackingObjective `json:"objective"`
	AllowPartial        bool             `json:"allow_partial"`
	KeepGroupsTogether  bool             `json:"keep_groups_together"`
	MaxSolveTimeSeconds int              `json:"max_solve_time_seconds"`
}

// Validate checks structural invariants cheap to verify before a solve.
func (r *PackingRequest) Validate() error {
	if len(r.Items) == 0 {
		return fmt.Errorf("items must not be empty")
	}
	if len(r.Bins) == 0 {
		return fmt.Errorf("bins must not be empty")
	}
	seenItems := make(map[string]bool, len(r.Items))
	for _, it := range r.Items {
		if it.ItemID == "" {
			return fmt.Errorf("item_id must not be empty")
		}
		if seenItems[it.ItemID] {
			return fmt.Errorf("duplicate item_id %q", it.ItemID)
		}
		seenItems[it.ItemID] = true
		if it.Weight <= 0 {
			return fmt.Errorf("item %q weight must be > 0", it.ItemID)
		}
		if it.Volume < 0 {
			return fmt.Errorf("item %q volume must be >= 0", it.ItemID)
		}
		if it.Value < 0 {
			return fmt.Errorf("item %q value must be >= 0", it.ItemID)
		}
		if it.Quantity < 1 || it.Quantity > 1000 {
			return fmt.Errorf("item %q quantity must be in [1,1000]", it.ItemID)
		}
	}
	seenBins := make(map[string]bool, len(r.Bins))
	for _, b := range r.Bins {
		if b.BinID == "" {
			return fmt.Errorf("bin_id must not be empty")
		}
		if seenBins[b.BinID] {
			return fmt.Errorf("duplicate bin_id %q", b.BinID)
		}
		seenBins[b.BinID] = true
		if b.WeightCapacity <= 0 {
			return fmt.Errorf("bin %q weight_capacity must be > 0", b.BinID)
		}
		if b.VolumeCapacity < 0 {
			return fmt.Errorf("bin %q volume_capacity must be >= 0", b.BinID)
		}
		if b.Quantity < 1 || b.Quantity > 100 {
			return fmt.Errorf("bin %q quantity must be in [1,100]", b.BinID)
		}
	}
	switch r.Objective {
	case PackMinBins, PackMaxValue, PackMaxItems, PackBalanceLoad:
	default:
		return fmt.Errorf("unknown objective %q", r.Objective)
	}
	if r.MaxSolveTimeSeconds < 1 || r.MaxSolveTimeSeconds > 300 {
		return fmt.Errorf("max_solve_time_seconds must be in [1,300]")
	}
	return nil
}

// ItemAssignment is one packed (or unpacked) item instance in the response.
type ItemAssignment struct {
	InstanceID   string `json:"instance_id"`
	OriginalID   string `json:"original_item_id"`
	BinInstanceID string `json:"bin_instance_id,omitempty"`
	OriginalBinID string `json:"original_bin_id,omitempty"`
	Packed       bool   `json:"packed"`
}

// BinSummary aggregates one bin instance's load.
type BinSummary struct {
	BinInstanceID  string  `json:"bin_instance_id"`
	OriginalBinID  string  `json:"original_bin_id"`
	IsUsed         bool    `json:"is_used"`
	ItemCount      int     `json:"item_count"`
	TotalWeight    float64 `json:"total_weight"`
	TotalVolume    float64 `json:"total_volume"`
	UtilizationPc  float64 `json:"utilization_pct"`
}

// PackingMetrics aggregates solution-wide numbers.
type PackingMetrics struct {
	BinsUsed          int     `json:"bins_used"`
	ItemsPacked       int     `json:"items_packed"`
	ItemsUnpacked     int     `json:"items_unpacked"`
	TotalValue        float64 `json:"total_value"`
	TotalWeight       float64 `json:"total_weight"`
	TotalVolume       float64 `json:"total_volume"`
	AverageUtilization float64 `json:"average_utilization"`
	TotalBinCost      float64 `json:"total_bin_cost"`
	SolveTimeSeconds  float64 `json:"solve_time_seconds"`
}

// PackingResponse is the output of PackingSolver.
type PackingResponse struct {
	Status        SolverStatus     `json:"status"`
	Message       string           `json:"message"`
	Assignments   []ItemAssignment `json:"assignments,omitempty"`
	Bins          []BinSummary     `json:"bins,omitempty"`
	Unpacked      []string         `json:"unpacked,omitempty"`
	Metrics       *PackingMetrics  `json:"metrics,omitempty"`
}
