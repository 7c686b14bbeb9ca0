package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/martiops/stackplan/internal/config"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// runWizard runs the interactive wizard.
	runWizard = config.RunWizard

	// writeTree writes the configuration to a file.
	writeTree = config.WriteTreeYAML
)

// Init runs the configuration wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	tree := result.ToTree()
	if err := writeTree(tree, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, tree)
	return nil
}

func printWelcome() {
	fmt.Println()
	fmt.Println("stackplan - declarative environment provisioning")
	fmt.Println("================================================")
	fmt.Println()
	fmt.Println("This wizard creates a configuration with sensible defaults.")
	fmt.Println("The generated YAML is fully expanded and explicit.")
	fmt.Println()
}

func printInitSuccess(outputPath string, tree *config.Tree) {
	envs := make([]string, 0, len(tree.Environments))
	for name := range tree.Environments {
		envs = append(envs, name)
	}

	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	fmt.Println("Project Summary")
	fmt.Println("---------------")
	fmt.Printf("  Name:         %s\n", tree.ProjectName)
	fmt.Printf("  Environments: %d\n", len(envs))
	fmt.Println()

	fmt.Println("Included Stacks")
	fmt.Println("---------------")
	fmt.Println("  - Network (VPC, NAT gateways)")
	fmt.Println("  - Registry (container images, lifecycle rules)")
	fmt.Println("  - Service (load-balanced containers, autoscaling)")
	fmt.Println("  - Database (PostgreSQL + Redis)")
	fmt.Println("  - Scraping (queue, worker function, websocket API)")
	fmt.Println("  - Upload (bucket, processing function)")
	fmt.Println("  - Alarms (cost, utilization, availability)")
	fmt.Println()

	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Printf("  1. Review %s if needed\n", outputPath)
	fmt.Println()
	fmt.Println("  2. Render your first plan:")
	fmt.Println("     stackplan synth")
	fmt.Println()
	fmt.Println("  3. Publish it:")
	fmt.Println("     stackplan deploy")
	fmt.Println()
}
