package cmd

var (
	excludeDirs     []string
	excludeExts     []string
	excludeNames    []string
	excludePatterns []string
	noDefaults      bool
	includeHidden   bool
	repoURL         string
	debugMode       bool

	outputFile     string
	listOnly       bool
	showInfo       bool
	showExclusions bool
	showProgress   bool

	treeDepth int
	treeStats bool
	noFiles   bool
)
