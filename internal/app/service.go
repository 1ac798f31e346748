package app

import (
	"context"
	"time"

	"github.com/restartfu/bottleneck/internal/domain"
	"github.com/restartfu/bottleneck/internal/ports"
)

type Service struct {
	catalogReader ports.CatalogReader
	calculator    ports.BottleneckCalculator
	hostProbe     ports.HostProbe
}

func NewService(catalogReader ports.CatalogReader, calculator ports.BottleneckCalculator, hostProbe ports.HostProbe) *Service {
	return &Service{
		catalogReader: catalogReader,
		calculator:    calculator,
		hostProbe:     hostProbe,
	}
}

func (s *Service) Health() domain.Health {
	return domain.Health{
		Status: "ok",
		Time:   time.Now().UTC(),
	}
}

func (s *Service) Catalog(ctx context.Context, class string) (domain.Catalog, error) {
	return s.catalogReader.Catalog(ctx, class)
}

// Models returns only the model names of a class, in catalog order.
func (s *Service) Models(ctx context.Context, class string) ([]string, error) {
	cat, err := s.catalogReader.Catalog(ctx, class)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(cat.Components))
	for i, component := range cat.Components {
		names[i] = component.Name
	}
	return names, nil
}

func (s *Service) Bottleneck(ctx context.Context, cpu, gpu string) (domain.Bottleneck, error) {
	return s.calculator.Bottleneck(ctx, cpu, gpu)
}

func (s *Service) HostCPU(ctx context.Context) (domain.HostCPU, error) {
	if s.hostProbe == nil {
		return domain.HostCPU{}, nil
	}
	return s.hostProbe.DetectCPU(ctx)
}
