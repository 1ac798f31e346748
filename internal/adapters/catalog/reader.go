package catalogadapter

import (
	"context"
	"errors"

	"github.com/restartfu/bottleneck/internal/bottleneck"
	"github.com/restartfu/bottleneck/internal/catalog"
	"github.com/restartfu/bottleneck/internal/domain"
	"github.com/restartfu/bottleneck/internal/observability"
	"github.com/samber/lo"
)

type Reader struct {
	catalog    *catalog.Catalog
	calculator *bottleneck.Calculator
}

func NewReader(cat *catalog.Catalog, opts ...bottleneck.Option) *Reader {
	return &Reader{
		catalog:    cat,
		calculator: bottleneck.NewCalculator(cat, opts...),
	}
}

// Catalog resolves a loosely spelled class ("gpu", "CPUs") and returns its
// models under the canonical class name.
func (r *Reader) Catalog(ctx context.Context, class string) (domain.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return domain.Catalog{}, err
	}
	parsed, err := catalog.ParseClass(class)
	if err != nil {
		return domain.Catalog{}, err
	}
	entries, err := r.catalog.Entries(parsed)
	if err != nil {
		return domain.Catalog{}, err
	}
	return domain.Catalog{
		Class: string(parsed),
		Components: lo.Map(entries, func(entry catalog.Entry, _ int) domain.Component {
			return domain.Component{Name: entry.Name, Score: entry.Score}
		}),
	}, nil
}

func (r *Reader) Bottleneck(ctx context.Context, cpu, gpu string) (domain.Bottleneck, error) {
	if err := ctx.Err(); err != nil {
		return domain.Bottleneck{}, err
	}
	result, err := r.calculator.Compute(cpu, gpu)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			observability.CaptureError(err, map[string]string{
				"component": "catalog",
				"operation": "compute_bottleneck",
			}, map[string]interface{}{
				"cpu": cpu,
				"gpu": gpu,
			})
		}
		return domain.Bottleneck{}, err
	}
	return domain.Bottleneck{
		CPU:          result.CPU,
		GPU:          result.GPU,
		CPUScore:     result.CPUScore,
		GPUScore:     result.GPUScore,
		Percentage:   result.Percentage,
		LimitingSide: string(result.LimitingSide),
		Advisory:     result.Advisory,
		Complete:     result.Complete,
	}, nil
}
