package domain

// SolverType is the closed set of Layer-1 problem families addressed by
// the solver-dispatch capability.
type SolverType string

const (
	SolverScheduling SolverType = "scheduling"
	SolverRouting    SolverType = "routing"
	SolverPacking    SolverType = "packing"
)
