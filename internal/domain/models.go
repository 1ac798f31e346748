package domain

import "time"

type Health struct {
	Status string
	Time   time.Time
}

type Component struct {
	Name  string
	Score float64
}

// Catalog is one hardware class under its canonical name.
type Catalog struct {
	Class      string
	Components []Component
}

type Bottleneck struct {
	CPU          string
	GPU          string
	CPUScore     float64
	GPUScore     float64
	Percentage   float64
	LimitingSide string
	Advisory     string
	Complete     bool
}

type HostCPU struct {
	Model   string
	Match   string
	Matched bool
}
