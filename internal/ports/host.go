package ports

import (
	"context"

	"github.com/restartfu/bottleneck/internal/domain"
)

type HostProbe interface {
	DetectCPU(ctx context.Context) (domain.HostCPU, error)
}
