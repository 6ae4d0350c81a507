package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pkgrun/sidekick/pkg/launch"
	"github.com/pkgrun/sidekick/pkg/logging"
	"github.com/pkgrun/sidekick/pkg/resolve"
)

const version = "0.1.0"

var (
	companionName string
	launcherDir   string
	logLevel      string
	rootCmd       *cobra.Command
	versionFlag   bool
)

func getBuildTimestamp() string {
	// Try to get vcs.time from build info
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	// Fallback to binary modification time
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func init() {
	rootCmd = &cobra.Command{
		Use:   "sidekick-inspect",
		Short: "Inspect the launcher's companion resolution",
		Long:  `Inspect the launcher's companion resolution`,
	}

	rootCmd.PersistentFlags().StringVarP(&companionName, "companion", "c", launch.CompanionName, "Companion program name to resolve")
	rootCmd.PersistentFlags().StringVarP(&launcherDir, "dir", "d", "", "Launcher directory (defaults to this binary's directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "resolve",
		Short: "Show the search order and the companion that would run",
		RunE:  runResolve,
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "verify",
		Short: "Check that the companion is present and executable",
		RunE:  runVerify,
	})
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		fmt.Printf("sidekick-inspect %s\n", version)
		fmt.Printf("Built: %s\n", getBuildTimestamp())
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildSearchPath reproduces the launcher's search order for the
// directory under inspection.
func buildSearchPath() (*resolve.SearchPath, error) {
	dir := launcherDir
	if dir == "" {
		exePath, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("failed to get executable path: %w", err)
		}
		dir, err = resolve.OwnDir(exePath)
		if err != nil {
			return nil, err
		}
	}

	search := resolve.NewSearchPath()
	search.Prepend(dir)
	return search, nil
}

func runResolve(cmd *cobra.Command, args []string) error {
	level := logLevel
	if level == "" {
		level = logging.GetLogLevel()
	}
	logger := logging.NewLogger("sidekick-inspect", level, os.Stderr)

	search, err := buildSearchPath()
	if err != nil {
		return err
	}

	fmt.Println("Search order:")
	for i, root := range search.Roots() {
		fmt.Printf("  %d. %s\n", i+1, root)
	}
	fmt.Println("  then: PATH")

	companion, err := search.Locate(companionName)
	if err != nil {
		logger.Debug("🧭 Locate failed", "companion", companionName, "error", err)
		color.Red("MISSING  %s", companionName)
		return err
	}

	color.Green("RESOLVED %s", companion)
	return nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	search, err := buildSearchPath()
	if err != nil {
		return err
	}

	companion, err := search.Locate(companionName)
	if err != nil {
		color.Red("FAIL  %v", err)
		return err
	}

	color.Green("OK    %s", companion)
	return nil
}
