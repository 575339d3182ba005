package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/flowsmith/graphstore/internal/api/metrics"
	"github.com/flowsmith/graphstore/internal/core/ports"
)

// GenerateService drives the external code generator with the fixed
// format/template choices this backend exposes: YAML specifications rendered
// into a stub and an implementation.
type GenerateService struct {
	generator ports.CodeGenerator
	logger    zerolog.Logger
}

func NewGenerateService(generator ports.CodeGenerator, logger zerolog.Logger) *GenerateService {
	return &GenerateService{generator: generator, logger: logger}
}

func (s *GenerateService) Generate(ctx context.Context, spec, language string) (*ports.GenerateResult, error) {
	result, err := s.generator.Generate(ctx, ports.GenerateInput{
		Spec:      spec,
		Format:    "yaml",
		Language:  language,
		Templates: []string{"stub", "implementation"},
	})
	if err != nil {
		metrics.CodegenRequestsTotal.WithLabelValues(language, "error").Inc()
		s.logger.Error().Err(err).Str("language", language).Msg("code generation failed")
		return nil, err
	}

	metrics.CodegenRequestsTotal.WithLabelValues(language, "ok").Inc()
	s.logger.Info().Str("language", language).Int("spec_bytes", len(spec)).Msg("code generated")
	return result, nil
}
