package handlers

import (
	"context"
	"fmt"

	"github.com/martiops/stackplan/internal/sink"
)

// SynthOptions configures the synth handler.
type SynthOptions struct {
	ConfigPath  string
	Environment string
	Project     string
	OutDir      string
	LogLevel    string
}

// newFileSink creates the local plan sink (for testing injection).
var newFileSink = func(dir string) sink.Sink {
	return sink.NewFileSink(dir)
}

// Synth renders the provisioning plan for one environment and writes it to
// the local plan directory.
func Synth(ctx context.Context, opts SynthOptions) error {
	runCtx, doc, err := buildPlan(ctx, opts.ConfigPath, opts.Environment, opts.Project, opts.LogLevel)
	if err != nil {
		return err
	}

	if err := newFileSink(opts.OutDir).Submit(ctx, doc); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Plan rendered for %s/%s\n", doc.Project, doc.Environment)
	fmt.Println()
	fmt.Printf("  Resources: %d\n", len(doc.Resources))
	fmt.Printf("  Outputs:   %d\n", len(doc.Outputs))
	fmt.Printf("  File:      %s/%s\n", opts.OutDir, doc.Key())
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Printf("  stackplan outputs -e %s\n", runCtx.Environment)
	fmt.Printf("  stackplan deploy -e %s\n", runCtx.Environment)
	fmt.Println()
	return nil
}
