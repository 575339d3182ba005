package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/flowsmith/graphstore/internal/core/domain"
	"github.com/flowsmith/graphstore/internal/core/ports"
)

type stubGenerator struct {
	lastInput ports.GenerateInput
	result    *ports.GenerateResult
	err       error
}

func (g *stubGenerator) Generate(_ context.Context, in ports.GenerateInput) (*ports.GenerateResult, error) {
	g.lastInput = in
	if g.err != nil {
		return nil, g.err
	}
	return g.result, nil
}

func TestGenerateService_Generate(t *testing.T) {
	gen := &stubGenerator{result: &ports.GenerateResult{Stub: "def f(): ...", Implementation: "def f(): return 1"}}
	svc := NewGenerateService(gen, zerolog.Nop())

	result, err := svc.Generate(context.Background(), "name: flow", "python")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if result.Stub == "" || result.Implementation == "" {
		t.Fatalf("incomplete result: %+v", result)
	}

	if gen.lastInput.Format != "yaml" {
		t.Fatalf("expected yaml format, got %s", gen.lastInput.Format)
	}
	if gen.lastInput.Language != "python" {
		t.Fatalf("unexpected language: %s", gen.lastInput.Language)
	}
	if len(gen.lastInput.Templates) != 2 {
		t.Fatalf("expected stub+implementation templates, got %v", gen.lastInput.Templates)
	}
}

func TestGenerateService_Generate_Failure(t *testing.T) {
	gen := &stubGenerator{err: domain.ErrGenerationFailed}
	svc := NewGenerateService(gen, zerolog.Nop())

	if _, err := svc.Generate(context.Background(), "name: flow", "typescript"); err != domain.ErrGenerationFailed {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}
}
