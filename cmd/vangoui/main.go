package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vangoui/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	root := rootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		errors.Fprint(os.Stderr, err)
		return 1
	}
	return 0
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "vangoui",
		Short: "Server-driven UI components for Go",
		Long: `vangoui previews, exports and publishes the component catalog.

Components render on the server; a small browser runtime forwards
events over a WebSocket and swaps in the new HTML.

Settings are read from vangoui.json in the current directory or
any parent, or from the file given with --config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to vangoui.json")

	cmd.AddCommand(
		serveCmd(&configPath),
		exportCmd(&configPath),
		publishCmd(&configPath),
		versionCmd(),
	)
	return cmd
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
