package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/asterlab/readprobe/internal/printer"
	"github.com/asterlab/readprobe/internal/workspace"
)

var listCmd = &cobra.Command{
	Use:   "list <workspace>",
	Short: "List the files in an existing workspace",
	Long: `List the files in a previously generated workspace, sorted by name,
with sizes taken from filesystem metadata.`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	dir := args[0]

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return printer.Error(
			"Workspace not found",
			"The given path does not exist or is not a directory: "+dir,
			[]string{"Run 'readprobe generate' to create a new workspace"},
		)
	}

	printer.Info("📋 Files in %s:\n", dir)
	return workspace.Report(os.Stdout, dir)
}
