package ports

import "context"

// GenerateInput is the request passed to the external code generator.
type GenerateInput struct {
	// Spec is the workflow graph specification (YAML text).
	Spec      string
	Format    string
	Language  string
	Templates []string
}

// GenerateResult holds the two code artifacts produced from a specification.
type GenerateResult struct {
	Stub           string
	Implementation string
}

// CodeGenerator is the boundary to the external graph-code-generation
// service. It is opaque to this system: a specification goes in, two
// generated-code strings come out, or the call fails.
type CodeGenerator interface {
	Generate(ctx context.Context, in GenerateInput) (*GenerateResult, error)
}

// GenerateService wraps the generator with the fixed format/template choices
// this backend exposes.
type GenerateService interface {
	Generate(ctx context.Context, spec, language string) (*GenerateResult, error)
}
