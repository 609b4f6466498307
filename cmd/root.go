package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the mailsift application
var rootCmd = &cobra.Command{
	Use:   "mailsift",
	Short: "Extracts attachment text from Gmail messages",
	Long: `mailsift searches a Gmail mailbox, finds attachments matching a MIME
allow-list, and extracts their text into a stream of JSON records. PDF
attachments are converted to plain text; other allowed types yield a size
placeholder.

It can run as:
  - A standalone CLI tool (default)
  - An MCP (Model Context Protocol) server for AI assistants`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Optional .env file for GOOGLE_CLIENT_ID / GOOGLE_CLIENT_SECRET and
		// instrumentation settings. Missing file is fine.
		_ = godotenv.Load()
		return nil
	},
}

var verbose bool

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "mailsift version %s\n" .Version}}`)

	// If no subcommand is provided, run the extract command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "extract")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// newLogger builds the process logger. Logs go to stderr so that record
// output on stdout stays machine-readable.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("mailsift version %s\n", version)
		},
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.AddCommand(newExtractCmd())
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
}
