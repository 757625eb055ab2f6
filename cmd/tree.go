package cmd

import (
	"fmt"

	"github.com/sjzsdu/kun/helper"
	"github.com/sjzsdu/kun/lang"
	"github.com/sjzsdu/kun/project"
	"github.com/sjzsdu/kun/project/tree"
	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree [path]",
	Short: lang.T("Display directory tree structure"),
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTree,
}

func init() {
	treeCmd.Flags().IntVar(&treeDepth, "depth", -1, lang.T("Limit display depth (-1 for unlimited)"))
	treeCmd.Flags().BoolVarP(&treeStats, "stats", "s", false, lang.T("Show statistics"))
	treeCmd.Flags().BoolVar(&noFiles, "no-files", false, lang.T("Hide files, show directories only"))
	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	excl, err := buildExclusion()
	if err != nil {
		return err
	}

	workDir := ""
	if len(args) > 0 {
		workDir = args[0]
	}
	targetPath, err := helper.GetTargetPath(workDir, repoURL)
	if err != nil {
		return err
	}

	doc, err := project.BuildProjectTree(targetPath, project.BuildOptions{Exclusion: excl})
	if err != nil {
		return err
	}

	fmt.Print(tree.TreeWithOptions(doc.Root(), !noFiles, includeHidden, treeDepth))

	if treeStats {
		stats := tree.Stats(doc.Root())
		fmt.Printf("\n%s\n", stats.String())
	}
	return nil
}
