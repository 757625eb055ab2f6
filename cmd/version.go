package cmd

import (
	"fmt"

	"github.com/sjzsdu/kun/lang"
	"github.com/sjzsdu/kun/share"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: lang.T("Print version information"),
	Long:  lang.T("Print detailed version information of kun"),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s: %s\n", lang.T("kun version"), share.VERSION)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
