package main

import (
	"commandapi/client"
	"commandapi/db"
	"commandapi/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse, edit and run commands in the terminal",
	Long: `Open the terminal browser. Type to fuzzy-search, enter runs the selected
command line on this host ({{param}} placeholders are asked for first).

With --server the browser works on a running commandapi server, otherwise on
the local store selected by --driver and --dsn.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().String("server", "", "base URL of a commandapi server, e.g. http://127.0.0.1:8080")
	mustBind("server", browseCmd.Flags().Lookup("server"))
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	var store db.Backend
	source := cfg.Driver
	if cfg.Server != "" {
		store, err = client.New(cfg.Server, nil)
		source = cfg.Server
	} else {
		store, err = db.Open(cfg.Driver, cfg.DSN, log)
	}
	if err != nil {
		return err
	}
	defer store.Close()

	app, err := ui.NewApp(cmd.Context(), store, source)
	if err != nil {
		return err
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	_, err = p.Run()
	return err
}
