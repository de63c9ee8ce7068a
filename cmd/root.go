package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/ragchat/internal/app"
	"github.com/zhubert/ragchat/internal/client"
	"github.com/zhubert/ragchat/internal/config"
	"github.com/zhubert/ragchat/internal/logger"
)

var (
	debugMode             bool
	quietMode             bool
	serverURL             string
	logPath               string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "ragchat",
	Short: "Terminal chat client for a RAG-backed conversation server",
	Long: `ragchat is a terminal chat client. Conversations live on a collaborator
server that answers through a retrieval-augmented generation webhook.
Several conversations can be open at once, each in its own tab.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.Flags().StringVar(&serverURL, "server", "", "Collaborator server URL (overrides the config file)")
	rootCmd.Flags().StringVar(&logPath, "log-file", logger.DefaultLogPath, "Where the TUI writes its log")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("ragchat %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("ragchat %s\n", version)
}

// loadClientConfig reads the config file and applies flag overrides.
func loadClientConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if serverURL != "" {
		cfg.SetServerURL(serverURL)
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid --server: %w", err)
		}
	}
	return cfg, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadClientConfig()
	if err != nil {
		return err
	}

	if err := logger.Init(logPath); err != nil {
		return err
	}
	defer logger.Close()

	api := client.New(client.Options{
		BaseURL: cfg.GetServerURL(),
		UserID:  cfg.GetUserID(),
		Timeout: cfg.GetTimeout(),
	})

	m := app.New(cfg, api, version)
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
