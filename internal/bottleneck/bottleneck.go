// Package bottleneck compares a CPU and a GPU benchmark score and reports
// which side limits the pairing and by how much.
package bottleneck

import (
	"fmt"
	"math"
	"strings"

	"github.com/restartfu/bottleneck/internal/catalog"
)

// Side names the component that limits a pairing.
type Side string

const (
	SideNone     Side = ""
	SideCPU      Side = "CPU"
	SideGPU      Side = "GPU"
	SideBalanced Side = "balanced"
)

// Threshold is the percentage above which a pairing is not recommended.
const Threshold = 30.0

const (
	AdvisoryNotRecommended = "bottleneck too high, combination not recommended"
	AdvisoryBalanced       = "combination balanced, good performance expected"
	AdvisoryIncomplete     = "select both a CPU and a GPU"
)

// TieBreak decides the limiting side when both scores are equal.
type TieBreak string

const (
	// TieBreakGPU labels equal scores as GPU limited, matching the
	// historical output of the calculator.
	TieBreakGPU      TieBreak = "gpu"
	TieBreakBalanced TieBreak = "balanced"
)

// ParseTieBreak validates a tie-break mode name.
func ParseTieBreak(value string) (TieBreak, error) {
	switch TieBreak(strings.ToLower(strings.TrimSpace(value))) {
	case "", TieBreakGPU:
		return TieBreakGPU, nil
	case TieBreakBalanced:
		return TieBreakBalanced, nil
	default:
		return "", fmt.Errorf("invalid tie-break mode %q", value)
	}
}

// Result is the outcome of comparing one CPU with one GPU.
type Result struct {
	CPU          string
	GPU          string
	CPUScore     float64
	GPUScore     float64
	Percentage   float64
	LimitingSide Side
	Advisory     string
	// Complete is false when either component was not selected.
	Complete bool
}

// Incomplete returns the result reported while a selection is missing a side.
func Incomplete(cpuName, gpuName string) Result {
	return Result{
		CPU:      cpuName,
		GPU:      gpuName,
		Advisory: AdvisoryIncomplete,
	}
}

// Scorer resolves benchmark scores. *catalog.Catalog implements it.
type Scorer interface {
	Score(class catalog.Class, name string) (float64, error)
}

type Option func(*Calculator)

func WithTieBreak(mode TieBreak) Option {
	return func(c *Calculator) {
		c.tieBreak = mode
	}
}

// Calculator holds no mutable state; a single instance may be shared.
type Calculator struct {
	scores   Scorer
	tieBreak TieBreak
}

func NewCalculator(scores Scorer, opts ...Option) *Calculator {
	c := &Calculator{
		scores:   scores,
		tieBreak: TieBreakGPU,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compute returns the bottleneck for a CPU and GPU pairing. Empty names
// produce an incomplete result rather than an error; unknown names return a
// *catalog.NotFoundError.
func (c *Calculator) Compute(cpuName, gpuName string) (Result, error) {
	if cpuName == "" || gpuName == "" {
		return Incomplete(cpuName, gpuName), nil
	}

	cpuScore, err := c.scores.Score(catalog.CPUs, cpuName)
	if err != nil {
		return Result{}, err
	}
	gpuScore, err := c.scores.Score(catalog.GPUs, gpuName)
	if err != nil {
		return Result{}, err
	}

	percentage, side := compare(cpuScore, gpuScore, c.tieBreak)
	return Result{
		CPU:          cpuName,
		GPU:          gpuName,
		CPUScore:     cpuScore,
		GPUScore:     gpuScore,
		Percentage:   Round(percentage),
		LimitingSide: side,
		Advisory:     advisory(percentage),
		Complete:     true,
	}, nil
}

func compare(cpuScore, gpuScore float64, tieBreak TieBreak) (float64, Side) {
	if cpuScore < gpuScore {
		return (gpuScore - cpuScore) / gpuScore * 100, SideCPU
	}
	if cpuScore == gpuScore && tieBreak == TieBreakBalanced {
		return 0, SideBalanced
	}
	return (cpuScore - gpuScore) / cpuScore * 100, SideGPU
}

// advisory takes the unrounded percentage so values just above the
// threshold are not rounded down into the balanced range.
func advisory(percentage float64) string {
	if percentage > Threshold {
		return AdvisoryNotRecommended
	}
	return AdvisoryBalanced
}

// Round rounds a percentage to two decimals, halves away from zero.
func Round(percentage float64) float64 {
	return math.Round(percentage*100) / 100
}
