package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/HaiFongPan/fmgr/internal/config"
	"github.com/HaiFongPan/fmgr/internal/files"
	"github.com/HaiFongPan/fmgr/internal/tui"
	"github.com/HaiFongPan/fmgr/internal/window"
)

var (
	cfgFile      string
	verbose      bool
	quiet        bool
	globalConfig *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fmgr [dir]",
	Short: "A terminal file manager",
	Long: `fmgr lists a directory as aligned rows of name, type, size,
modification and creation date. The window position and size are
restored on start and saved again on exit.

Example usage:
  fmgr              # Browse the home directory
  fmgr ~/Downloads  # Browse a directory
  fmgr list .       # Print the aligned rows and exit
  fmgr geometry     # Show the stored window geometry`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowser(args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		fmt.Sprintf("config file (default is %s)", config.GetDefaultConfigPath()))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "enable quiet mode")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	var err error
	globalConfig, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Configure logging
	setupLogging()

	return nil
}

// setupLogging configures the global logger based on config and flags
func setupLogging() {
	// Set log level
	level := globalConfig.Log.Level
	if verbose {
		level = "debug"
	} else if quiet {
		level = "error"
	}

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Invalid log level %s, using info", level)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	// Redirect all logs to file to prevent UI interference
	logFile := globalConfig.Log.File
	if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
		// Fallback to stderr if can't create log directory
		logrus.Warnf("Failed to create log directory for %s: %v", logFile, err)
	} else {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			logrus.Warnf("Failed to open log file %s: %v", logFile, err)
		} else {
			logrus.SetOutput(file)
		}
	}

	// Set log format
	if globalConfig.Log.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: quiet,
			FullTimestamp:    verbose,
		})
	}
}

// GetConfig returns the global configuration
func GetConfig() *config.Config {
	return globalConfig
}

// startDirectory returns the directory named on the command line, else the configured one
func startDirectory(cfg *config.Config, args []string) string {
	if len(args) > 0 {
		return files.StartDir(args[0])
	}
	return files.StartDir(cfg.UI.StartDir)
}

// runBrowser opens the window and runs the interactive browser inside it
func runBrowser(args []string) error {
	cfg := GetConfig()
	fsys := afero.NewOsFs()

	manager := files.NewManager(fsys, startDirectory(cfg, args))
	manager.SetShowHidden(cfg.UI.ShowHidden)
	inspector := files.NewInspector(fsys)

	opts := []window.Option{
		window.WithQueryTimeout(time.Duration(cfg.Window.QueryTimeoutMs) * time.Millisecond),
	}
	if cfg.Window.RestoreGeometry {
		if terminal, ok := window.StdTerminal(); ok {
			opts = append(opts, window.WithTerminal(terminal))
		} else {
			logrus.Debug("stdin is not a terminal, window geometry is not applied")
		}
	}
	win := window.New(window.NewGeometryStore(fsys, cfg.Window.GeometryFile), opts...)

	model := tui.NewBrowserModel(manager, inspector, cfg, win.Title())

	var watcher *files.Watcher
	if cfg.UI.Watch {
		var err error
		watcher, err = files.NewWatcher()
		if err != nil {
			logrus.Warnf("Directory watch disabled: %v", err)
		} else {
			model.SetWatcher(watcher)
		}
	}

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	logrus.Infof("Browsing %s", manager.Dir())

	// A successful run ends the process when the window closes
	err := win.Run(model, programOpts...)
	if watcher != nil {
		watcher.Close()
	}
	return err
}
