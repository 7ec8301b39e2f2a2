package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/asterlab/readprobe/internal/config"
	"github.com/asterlab/readprobe/internal/fixture"
	"github.com/asterlab/readprobe/internal/printer"
	"github.com/asterlab/readprobe/internal/workspace"
)

var (
	generateDir string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a workspace of sample files",
	Long: `Generate a fresh workspace populated with the sample file set.

Creates:
  • example.py / example.rs - source files in two languages
  • config.json - structured configuration with feature flags
  • diagram.svg - vector graphic with gradient, shapes and a label
  • analysis.ipynb - computational notebook with recorded output
  • notes.md - prose notes describing the workspace

The workspace is created under the platform temp directory unless
--dir or the output_dir setting in readprobe.yml says otherwise.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateDir, "dir", "d", "", "Parent directory for the new workspace (default: platform temp dir)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		return printer.Error(
			"Invalid configuration",
			err.Error(),
			[]string{"Fix readprobe.yml or remove it to use the defaults"},
		)
	}

	parent := cfg.OutputDir
	if generateDir != "" {
		parent = generateDir
	}

	files, err := fixture.Named(cfg.Fixtures)
	if err != nil {
		return printer.Error(
			"Invalid configuration",
			err.Error(),
			[]string{fmt.Sprintf("Known fixtures: %v", fixture.Names())},
		)
	}

	printer.Step("Creating sample files...\n")
	dir, err := workspace.Create(parent)
	if err != nil {
		return fmt.Errorf("workspace creation failed: %w", err)
	}

	if err := fixture.WriteAll(dir, files); err != nil {
		return fmt.Errorf("fixture generation failed: %w", err)
	}

	if err := fixture.Validate(dir, files); err != nil {
		return fmt.Errorf("fixture validation failed: %w", err)
	}

	printer.Info("📁 Sample files created in: %s\n", dir)
	printer.Info("\n📋 Generated files:\n")
	if err := workspace.Report(os.Stdout, dir); err != nil {
		return err
	}

	printSuccess(dir, files)
	return nil
}

// printSuccess prints the completion notice and usage hints for the
// external read tool. The hints name the tool; nothing is invoked.
func printSuccess(dir string, files []fixture.File) {
	printer.Info("\n✅ Sample files ready!\n")
	printer.Info("💡 Point the aster read tool at them, for example:\n")
	for _, name := range []string{"example.py", "diagram.svg", "analysis.ipynb"} {
		for _, f := range files {
			if f.Name == name {
				printer.Info("   aster read %s\n", filepath.Join(dir, name))
			}
		}
	}
}
