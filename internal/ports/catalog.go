package ports

import (
	"context"

	"github.com/restartfu/bottleneck/internal/domain"
)

type CatalogReader interface {
	Catalog(ctx context.Context, class string) (domain.Catalog, error)
}

type BottleneckCalculator interface {
	Bottleneck(ctx context.Context, cpu, gpu string) (domain.Bottleneck, error)
}
