package main

import (
	"os"

	"github.com/bastiangx/wordlearn/internal/cli"
	"github.com/bastiangx/wordlearn/internal/logger"
	"github.com/bastiangx/wordlearn/pkg/config"
	"github.com/bastiangx/wordlearn/pkg/corpus"
	"github.com/bastiangx/wordlearn/pkg/server"
	"github.com/bastiangx/wordlearn/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const (
	Version = "0.1.0"
	AppName = "wordlearn"
	gh      = "https://github.com/bastiangx/wordlearn"
)

type options struct {
	configPath string
	seedPath   string
	debug      bool

	config *config.Config
}

// NewRootCmd builds the command tree. The root command runs the interactive loop.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           AppName,
		Short:         "Learn words from passages and complete partial words",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := opts.newProvider()
			if err != nil {
				return err
			}
			log.Debug("Input info:",
				"prompt", opts.config.CLI.Prompt,
				"exitSentinel", opts.config.CLI.ExitSentinel)

			handler := cli.NewInputHandler(provider, cmd.InOrStdin(), cmd.OutOrStdout(), opts.config.CLI)
			return handler.Start()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to a TOML config file")
	flags.StringVar(&opts.seedPath, "seed", "", "Text file of passages (one per line) to learn before starting")
	flags.BoolVarP(&opts.debug, "debug", "d", false, "Toggle debug mode")

	cmd.AddCommand(newServeCmd(opts), newVersionCmd())
	return cmd
}

func newServeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve train and lookup requests as msgpack over stdin/stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := opts.newProvider()
			if err != nil {
				return err
			}
			showStartupInfo()
			srv := server.NewServer(provider, opts.config, cmd.InOrStdin(), cmd.OutOrStdout())
			return srv.Start()
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show current version",
		Run: func(cmd *cobra.Command, args []string) {
			banner := log.NewWithOptions(cmd.OutOrStdout(), log.Options{
				ReportCaller:    false,
				ReportTimestamp: false,
				Prefix:          "",
			})

			styles := log.DefaultStyles()
			styles.Values["version"] = lipgloss.NewStyle().Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
			styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
			banner.SetStyles(styles)

			banner.Print("[ wordlearn ] learns your words as you type them")
			banner.Print("", "version", Version)
			banner.Print("Github Repo", "gh", gh)
		},
	}
}

// setup routes logs to stderr, loads the config and applies the log level
func (o *options) setup(cmd *cobra.Command) error {
	log.SetOutput(cmd.ErrOrStderr())
	if o.debug {
		log.SetLevel(log.DebugLevel)
	}

	cfg, path, err := config.LoadConfigWithPriority(o.configPath)
	if err != nil {
		return err
	}
	o.config = cfg

	if o.debug {
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(logger.ParseLevel(cfg.Log.Level))
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(path))
	return nil
}

// newProvider creates an empty provider, seeded when --seed was given
func (o *options) newProvider() (*suggest.Provider, error) {
	provider := suggest.NewProvider()
	if o.seedPath == "" {
		return provider, nil
	}

	stats, err := corpus.NewLoader(provider).LoadFile(o.seedPath)
	if err != nil {
		return nil, err
	}
	log.Debug("Seeded provider", "lines", stats.Lines, "trained", stats.Trained, "skipped", stats.Skipped)
	return provider, nil
}

// showStartupInfo displays some basic info about the server process on stderr.
func showStartupInfo() {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
