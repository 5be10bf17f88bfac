package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "novel-reader",
	Short: "Web reader for serialized novel translations",
	Long:  "Serve the novel reading site, its JSON API and OPDS catalog, or audit the published content",
	RunE: func(cmd *cobra.Command, args []string) error {
		// 默认启动服务
		return runServe(cmd, args)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
