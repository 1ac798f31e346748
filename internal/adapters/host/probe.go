package hostadapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/restartfu/bottleneck/internal/domain"
	"github.com/restartfu/bottleneck/internal/observability"
	"github.com/shirou/gopsutil/v3/cpu"
)

// Probe detects the CPU of the machine it runs on and matches it against a
// list of catalog model names.
type Probe struct {
	models    []string
	readModel func(ctx context.Context) (string, error)
}

func NewProbe(models []string) *Probe {
	return &Probe{
		models:    append([]string(nil), models...),
		readModel: readHostModel,
	}
}

func (p *Probe) DetectCPU(ctx context.Context) (domain.HostCPU, error) {
	if err := ctx.Err(); err != nil {
		return domain.HostCPU{}, err
	}
	model, err := p.readModel(ctx)
	if err != nil {
		observability.CaptureError(err, map[string]string{
			"component": "host",
			"operation": "detect_cpu",
		}, nil)
		return domain.HostCPU{}, err
	}
	match, ok := MatchModel(model, p.models)
	return domain.HostCPU{
		Model:   model,
		Match:   match,
		Matched: ok,
	}, nil
}

func readHostModel(ctx context.Context) (string, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err == nil {
		for _, info := range infos {
			if model := strings.TrimSpace(info.ModelName); model != "" {
				return model, nil
			}
		}
	}
	model, procErr := readProcCPUModel(procCPUInfoPath)
	if procErr != nil {
		if err != nil {
			return "", fmt.Errorf("cpu info: %w", err)
		}
		return "", procErr
	}
	return model, nil
}

// MatchModel finds the catalog model naming the host CPU. The leading vendor
// word of a catalog name is ignored and the remainder must appear in the host
// string on token boundaries, case-insensitively. The longest match wins.
func MatchModel(hostModel string, models []string) (string, bool) {
	host := strings.ToLower(hostModel)
	best := ""
	bestLen := 0
	for _, name := range models {
		needle := strings.ToLower(stripVendor(name))
		if needle == "" || len(needle) <= bestLen {
			continue
		}
		if containsToken(host, needle) {
			best = name
			bestLen = len(needle)
		}
	}
	return best, best != ""
}

func stripVendor(name string) string {
	fields := strings.Fields(name)
	if len(fields) > 1 {
		switch strings.ToLower(fields[0]) {
		case "intel", "amd":
			fields = fields[1:]
		}
	}
	return strings.Join(fields, " ")
}

func containsToken(haystack, needle string) bool {
	for offset := 0; offset <= len(haystack)-len(needle); {
		idx := strings.Index(haystack[offset:], needle)
		if idx < 0 {
			return false
		}
		start := offset + idx
		end := start + len(needle)
		if boundary(haystack, start-1) && boundary(haystack, end) {
			return true
		}
		offset = start + 1
	}
	return false
}

func boundary(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return true
	}
	c := s[i]
	return !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9')
}
