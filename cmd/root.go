package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sjzsdu/kun/config"
	"github.com/sjzsdu/kun/exclusion"
	"github.com/sjzsdu/kun/helper"
	"github.com/sjzsdu/kun/helper/renders"
	"github.com/sjzsdu/kun/lang"
	"github.com/sjzsdu/kun/project"
	"github.com/sjzsdu/kun/project/output"
	"github.com/sjzsdu/kun/share"
	"github.com/spf13/cobra"
)

var RootCmd = rootCmd

var rootCmd = &cobra.Command{
	Use:   share.BUILDNAME + " <path...>",
	Short: lang.T("Kun command line tool"),
	Long:  lang.T("Traverse directories and combine surviving files into one artifact"),
	Args:  cobra.ArbitraryArgs,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage: true,
	RunE:         runRoot,
}

// Execute 执行根命令，出错时以非零状态退出
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&excludeDirs, "exclude-dirs", nil, lang.T("Directory names to exclude"))
	rootCmd.PersistentFlags().StringSliceVar(&excludeExts, "exclude-ext", nil, lang.T("File extensions to exclude"))
	rootCmd.PersistentFlags().StringSliceVar(&excludeNames, "exclude-names", nil, lang.T("Full file names to exclude"))
	rootCmd.PersistentFlags().StringSliceVarP(&excludePatterns, "exclude-patterns", "x", nil, lang.T("Regex patterns to exclude"))
	rootCmd.PersistentFlags().BoolVar(&noDefaults, "no-defaults", false, lang.T("Disable built-in default exclusions"))
	rootCmd.PersistentFlags().BoolVarP(&includeHidden, "hidden", "a", false, lang.T("Include hidden files"))
	rootCmd.PersistentFlags().StringVarP(&repoURL, "repository", "r", "", lang.T("Git repository URL to clone and pack"))
	rootCmd.PersistentFlags().BoolVarP(&debugMode, "debug", "v", false, lang.T("Debug mode"))

	rootCmd.Flags().StringVarP(&outputFile, "output", "o",
		config.GetConfigWithDefault("output", share.DEFAULT_OUTPUT), lang.T("Output file name"))
	rootCmd.Flags().BoolVar(&listOnly, "list-only", false, lang.T("List file names only, do not combine contents"))
	rootCmd.Flags().BoolVar(&showInfo, "info", false, lang.T("Show detailed file information"))
	rootCmd.Flags().BoolVar(&showExclusions, "show-exclusions", false, lang.T("Show the effective exclusion configuration"))
	rootCmd.Flags().BoolVarP(&showProgress, "progress", "p", false, lang.T("Show packing progress"))

	rootCmd.MarkFlagsMutuallyExclusive("list-only", "info", "show-exclusions")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		share.SetDebug(debugMode)
	}
}

// buildExclusion 根据命令行选项构造排除配置
func buildExclusion() (*exclusion.Config, error) {
	return exclusion.New(exclusion.Options{
		Dirs:          excludeDirs,
		Extensions:    excludeExts,
		Names:         excludeNames,
		Patterns:      excludePatterns,
		UseDefaults:   !noDefaults,
		IncludeHidden: includeHidden,
	})
}

func runRoot(cmd *cobra.Command, args []string) error {
	excl, err := buildExclusion()
	if err != nil {
		return err
	}

	if showExclusions {
		renders.RenderMarkdown(exclusionReport(excl))
		return nil
	}

	paths := args
	if repoURL != "" {
		targetPath, err := helper.GetTargetPath("", repoURL)
		if err != nil {
			return err
		}
		paths = append(paths, targetPath)
	}
	if len(paths) == 0 {
		paths = []string{"."}
	}

	// 先校验并构建所有根，任何根非法时整个调用失败且不触碰输出文件
	var projects []*project.Project
	for _, p := range paths {
		doc, err := project.BuildProjectTree(p, project.BuildOptions{Exclusion: excl})
		if err != nil {
			return err
		}
		if share.GetDebug() {
			fmt.Fprintf(os.Stderr, "%s %s: %d\n",
				lang.T("Project tree built"), doc.GetRootPath(), doc.Root().CountNodes())
		}
		projects = append(projects, doc)
	}

	if showInfo {
		renders.RenderMarkdown(output.InfoReport(projects))
		return nil
	}

	if listOnly {
		listFiles(projects)
		return nil
	}

	return combine(projects)
}

// listFiles 按根依次列出过滤后的文件相对路径
func listFiles(projects []*project.Project) {
	for _, doc := range projects {
		files := doc.Files()
		if len(files) == 0 {
			fmt.Println(lang.T("No files found matching the criteria"))
			continue
		}
		fmt.Printf("%s: %d (%s)\n", lang.T("Found files"), len(files), doc.GetRootPath())
		for _, f := range files {
			fmt.Println(f)
		}
	}
}

// combine 将所有根的文件合并写入单一输出文件
func combine(projects []*project.Project) error {
	total := 0
	for _, doc := range projects {
		total += len(doc.FileEntries())
	}
	if total == 0 {
		fmt.Println(lang.T("No files found matching the criteria"))
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var progressFn output.ProgressFunc
	var bar *helper.Progress
	if showProgress {
		bar = helper.NewProgress(lang.T("Packing files"), total)
		progressFn = func(current int, relPath string) {
			bar.Update(current)
		}
	}

	exporter := output.GetExporter(outputFile, progressFn)
	if err := exporter.Export(ctx, projects, outputFile); err != nil {
		if errors.Is(err, context.Canceled) {
			return errors.New(lang.T("Operation cancelled"))
		}
		return err
	}
	if bar != nil {
		bar.Finish()
	}

	fmt.Printf("%s '%s'\n", lang.T("Successfully combined files into"), outputFile)
	return nil
}

// exclusionReport 生成生效排除配置的 Markdown 描述
func exclusionReport(excl *exclusion.Config) string {
	report := "# " + share.BUILDNAME + "\n\n"
	report += section(lang.T("Excluded directories"), excl.Dirs())
	report += section(lang.T("Excluded extensions"), excl.Extensions())
	report += section(lang.T("Excluded names"), excl.Names())
	report += section(lang.T("Excluded patterns"), excl.Patterns())
	if excl.IncludeHidden() {
		report += "- " + lang.T("Hidden files included") + "\n"
	} else {
		report += section(lang.T("Hidden file allowlist"), excl.HiddenAllowed())
	}
	return report
}

func section(title string, items []string) string {
	out := "## " + title + "\n\n"
	if len(items) == 0 {
		out += "- (none)\n"
	}
	for _, item := range items {
		out += "- `" + item + "`\n"
	}
	return out + "\n"
}
