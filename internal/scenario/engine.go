// Package scenario implements ScenarioEngine: generation of
// perturbed request documents for sensitivity, robust, stochastic, Pareto
// and prescriptive analysis, and the narrow bridge to SolverDispatch that
// turns a parameter-value map into a ScenarioOutcome.
//
// Every scenario is solved against an independent deep copy of the base
// document; PathResolver.Set never mutates the caller's document.
package scenario

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/opsintel/opsintel-mcp/internal/dispatch"
	"github.com/opsintel/opsintel-mcp/internal/domain"
	"github.com/opsintel/opsintel-mcp/internal/pathresolver"
)

// Cache memoizes ScenarioOutcomes by parameter vector within one Layer-2
// request, so a scenario whose parameter values exactly repeat an earlier
// one skips a redundant solver invocation. The key is built from the
// values before PathResolver.Set rounds them, so two values that differ
// only before rounding are solved separately.
// It is not safe for concurrent use; every Layer-2 engine drives it from
// a single sequential loop.
type Cache struct {
	hits map[string]domain.ScenarioOutcome
}

// NewCache returns an empty scenario cache.
func NewCache() *Cache {
	return &Cache{hits: make(map[string]domain.ScenarioOutcome)}
}

func vectorKey(paramValues map[string]float64) string {
	keys := make([]string, 0, len(paramValues))
	for k := range paramValues {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(strconv.FormatFloat(paramValues[k], 'g', -1, 64))
		b.WriteByte(';')
	}
	return b.String()
}

// Solve applies paramValues on top of a deep copy of baseDoc and re-solves
// via the solver-dispatch capability, producing one ScenarioOutcome. If
// cache is non-nil and has already solved this exact parameter vector, the
// memoized outcome is returned (with scenarioID relabeled) instead of
// re-invoking the solver.
func Solve(ctx context.Context, solverType dispatch.SolverType, baseDoc map[string]any, scenarioID string, paramValues map[string]float64, maxTimeSeconds int, cache *Cache) domain.ScenarioOutcome {
	if cache != nil {
		key := vectorKey(paramValues)
		if hit, ok := cache.hits[key]; ok {
			hit.ScenarioID = scenarioID
			return hit
		}
		out := solve(ctx, solverType, baseDoc, scenarioID, paramValues, maxTimeSeconds)
		cache.hits[key] = out
		return out
	}
	return solve(ctx, solverType, baseDoc, scenarioID, paramValues, maxTimeSeconds)
}

func solve(ctx context.Context, solverType dispatch.SolverType, baseDoc map[string]any, scenarioID string, paramValues map[string]float64, maxTimeSeconds int) domain.ScenarioOutcome {
	doc, err := pathresolver.DeepCopy(baseDoc)
	if err != nil {
		return domain.ScenarioOutcome{
			ScenarioID: scenarioID, ParameterValues: paramValues,
			Status: domain.StatusError, Feasible: false,
		}
	}
	for path, value := range paramValues {
		if err := pathresolver.Set(doc, path, value); err != nil {
			return domain.ScenarioOutcome{
				ScenarioID: scenarioID, ParameterValues: paramValues,
				Status: domain.StatusError, Feasible: false,
			}
		}
	}
	out := dispatch.Solve(ctx, solverType, doc, maxTimeSeconds)
	return domain.ScenarioOutcome{
		ScenarioID:      scenarioID,
		ParameterValues: paramValues,
		ObjectiveValue:  out.ObjectiveValue,
		ObjectiveName:   out.ObjectiveName,
		Feasible:        out.Feasible(),
		Status:          out.Status,
	}
}

// Baseline resolves the current numeric value at path within doc.
func Baseline(doc map[string]any, path string) (float64, error) {
	v, err := pathresolver.Resolve(doc, path)
	if err != nil {
		return 0, fmt.Errorf("resolving baseline for %q: %w", path, err)
	}
	return v, nil
}
