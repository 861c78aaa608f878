// Package sensitivity implements SensitivityAnalyzer.
package sensitivity

import (
	"fmt"
	"sort"

	"github.com/opsintel/opsintel-mcp/internal/domain"
)

const maxAutoDetected = 12

// autoDetectParameters finds the default one-at-a-time parameter set for
// a solver family when the request omits one explicitly:
// FJSP task durations + job due dates; routing non-depot demands +
// vehicle capacities; packing item weights + bin weight capacities.
func autoDetectParameters(solverType domain.SolverType, doc map[string]any) []domain.ParameterSpec {
	var paths []string
	switch solverType {
	case domain.SolverScheduling:
		jobs, _ := doc["jobs"].([]any)
		for _, jAny := range jobs {
			j, ok := jAny.(map[string]any)
			if !ok {
				continue
			}
			jobID, _ := j["job_id"].(string)
			if _, hasDue := j["due_date"]; hasDue {
				paths = append(paths, fmt.Sprintf("jobs[%s].due_date", jobID))
			}
			tasks, _ := j["tasks"].([]any)
			for _, tAny := range tasks {
				tmap, ok := tAny.(map[string]any)
				if !ok {
					continue
				}
				taskID, _ := tmap["task_id"].(string)
				paths = append(paths, fmt.Sprintf("jobs[%s].tasks[%s].duration", jobID, taskID))
			}
		}
	case domain.SolverRouting:
		depotID, _ := doc["depot_id"].(string)
		locations, _ := doc["locations"].([]any)
		for _, lAny := range locations {
			l, ok := lAny.(map[string]any)
			if !ok {
				continue
			}
			locID, _ := l["location_id"].(string)
			if locID == depotID {
				continue
			}
			paths = append(paths, fmt.Sprintf("locations[%s].demand", locID))
		}
		vehicles, _ := doc["vehicles"].([]any)
		for _, vAny := range vehicles {
			v, ok := vAny.(map[string]any)
			if !ok {
				continue
			}
			vehID, _ := v["vehicle_id"].(string)
			paths = append(paths, fmt.Sprintf("vehicles[%s].capacity", vehID))
		}
	case domain.SolverPacking:
		items, _ := doc["items"].([]any)
		for _, iAny := range items {
			it, ok := iAny.(map[string]any)
			if !ok {
				continue
			}
			itemID, _ := it["item_id"].(string)
			paths = append(paths, fmt.Sprintf("items[%s].weight", itemID))
		}
		bins, _ := doc["bins"].([]any)
		for _, bAny := range bins {
			b, ok := bAny.(map[string]any)
			if !ok {
				continue
			}
			binID, _ := b["bin_id"].(string)
			paths = append(paths, fmt.Sprintf("bins[%s].weight_capacity", binID))
		}
	}

	sort.Strings(paths)
	if len(paths) > maxAutoDetected {
		paths = paths[:maxAutoDetected]
	}
	specs := make([]domain.ParameterSpec, len(paths))
	for i, p := range paths {
		specs[i] = domain.ParameterSpec{Path: p, Mode: domain.PerturbationPercent}
	}
	return specs
}
