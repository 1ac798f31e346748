package http

import (
	"errors"

	nethttp "net/http"

	"github.com/labstack/echo/v4"
	"github.com/restartfu/bottleneck/internal/app"
	"github.com/restartfu/bottleneck/internal/catalog"
	"github.com/restartfu/bottleneck/internal/domain"
	"github.com/restartfu/bottleneck/internal/observability"
	"github.com/restartfu/bottleneck/openapi/generated"
	"github.com/rs/zerolog"
)

type Server struct {
	service *app.Service
	logger  zerolog.Logger
}

func NewServer(service *app.Service, logger zerolog.Logger) *Server {
	return &Server{
		service: service,
		logger:  logger,
	}
}

func (s *Server) Register(e *echo.Echo) {
	generated.RegisterHandlers(e, s)
}

func (s *Server) GetHealth(ctx echo.Context) error {
	health := s.service.Health()
	return ctx.JSON(nethttp.StatusOK, generated.Health{
		Status: health.Status,
		Time:   health.Time,
	})
}

func (s *Server) GetCatalogClass(ctx echo.Context, class string) error {
	cat, err := s.service.Catalog(ctx.Request().Context(), class)
	if err != nil {
		return s.fail(ctx, "catalog", err)
	}
	response := generated.Catalog{
		Class:  cat.Class,
		Models: make([]generated.Component, 0, len(cat.Components)),
	}
	for _, component := range cat.Components {
		response.Models = append(response.Models, generated.Component{
			Name:  component.Name,
			Score: component.Score,
		})
	}
	return ctx.JSON(nethttp.StatusOK, response)
}

func (s *Server) GetBottleneck(ctx echo.Context, params generated.GetBottleneckParams) error {
	result, err := s.service.Bottleneck(ctx.Request().Context(), stringValue(params.Cpu), stringValue(params.Gpu))
	if err != nil {
		return s.fail(ctx, "bottleneck", err)
	}
	return ctx.JSON(nethttp.StatusOK, bottleneckResponse(result))
}

func (s *Server) GetHostCpu(ctx echo.Context) error {
	host, err := s.service.HostCPU(ctx.Request().Context())
	if err != nil {
		return s.fail(ctx, "host_cpu", err)
	}
	response := generated.HostCpu{
		Model:   host.Model,
		Matched: host.Matched,
	}
	if host.Matched {
		match := host.Match
		response.Match = &match
	}
	return ctx.JSON(nethttp.StatusOK, response)
}

func (s *Server) fail(ctx echo.Context, handler string, err error) error {
	status := statusFor(err)
	if status == nethttp.StatusInternalServerError {
		observability.CaptureError(err, map[string]string{
			"component": "http",
			"handler":   handler,
		}, nil)
		s.logger.Error().Err(err).Str("handler", handler).Msg("request failed")
	} else {
		s.logger.Debug().Err(err).Str("handler", handler).Int("status", status).Msg("request rejected")
	}
	return ctx.JSON(status, generated.Error{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, catalog.ErrNotFound), errors.Is(err, catalog.ErrUnknownClass):
		return nethttp.StatusNotFound
	default:
		return nethttp.StatusInternalServerError
	}
}

func bottleneckResponse(result domain.Bottleneck) generated.Bottleneck {
	response := generated.Bottleneck{
		Advisory:   result.Advisory,
		Complete:   result.Complete,
		Percentage: result.Percentage,
	}
	if result.CPU != "" {
		cpu := result.CPU
		response.Cpu = &cpu
	}
	if result.GPU != "" {
		gpu := result.GPU
		response.Gpu = &gpu
	}
	if result.Complete {
		cpuScore, gpuScore := result.CPUScore, result.GPUScore
		side := generated.BottleneckLimitingSide(result.LimitingSide)
		response.CpuScore = &cpuScore
		response.GpuScore = &gpuScore
		response.LimitingSide = &side
	}
	return response
}

func stringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
