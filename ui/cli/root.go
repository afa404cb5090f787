// Copyright (c) 2026 ToeiRei
// Addressbook - prefix-searchable contact book
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/toeirei/addressbook/buildvars"
	"github.com/toeirei/addressbook/internal/book"
	"github.com/toeirei/addressbook/internal/config"
	"github.com/toeirei/addressbook/internal/db"
	"github.com/toeirei/addressbook/internal/i18n"
	"github.com/toeirei/addressbook/internal/logging"
	"github.com/toeirei/addressbook/internal/tui"
)

// app carries what the persistent pre-run resolved for the command that is
// about to run.
type app struct {
	cfgFile string
	verbose bool
	cfg     config.Config
}

// session is an open store and the book loaded from it.
type session struct {
	store *db.BunStore
	book  *book.Book
}

func (s *session) Close() error {
	return s.store.Close()
}

// Execute runs the CLI. The main package handles the process exit.
func Execute() error {
	// Help texts are built before any config is read, so only the environment
	// can pick their language.
	lang := os.Getenv("ADDRESSBOOK_LANGUAGE")
	if lang == "" {
		lang = "en"
	}
	i18n.Init(lang)
	return NewRootCmd().ExecuteContext(context.Background())
}

// NewRootCmd builds a fresh command tree. Tests create one per run.
func NewRootCmd() *cobra.Command {
	a := &app{}
	version, commit, date := buildvars.Resolve(nil)

	cmd := &cobra.Command{
		Use:           "addressbook",
		Short:         i18n.T("root.short"),
		Long:          i18n.T("root.long"),
		Version:       fmt.Sprintf("%s (%s) %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
				return cmd.Help()
			}
			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()
			return tui.Run(s.book)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", i18n.T("root.flag_config"))
	pf.BoolVarP(&a.verbose, "verbose", "v", false, i18n.T("root.flag_verbose"))
	pf.String("language", "", i18n.T("root.flag_language"))
	pf.String("database.type", "", i18n.T("root.flag_db_type"))
	pf.String("database.dsn", "", i18n.T("root.flag_db_dsn"))

	cmd.AddCommand(
		newAddCmd(a),
		newSearchCmd(a),
		newGroupCmd(a),
		newTreeCmd(a),
		newBackupCmd(a),
		newRestoreCmd(a),
		newDBCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return cmd
}

// setup loads the configuration and applies logging and language settings.
func (a *app) setup(cmd *cobra.Command) error {
	logging.SetOutput(cmd.ErrOrStderr())

	var cfgFile *string
	if cmd.Flags().Changed("config") && a.cfgFile != "" {
		if _, err := os.Stat(a.cfgFile); err != nil {
			return fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		cfgFile = &a.cfgFile
	}

	defaults := config.Defaults()
	cfg, err := config.LoadConfig[config.Config](cmd, defaults, cfgFile)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	// Empty values in a config file fall back to the defaults.
	if cfg.Database.Type == "" {
		cfg.Database.Type = defaults["database.type"].(string)
	}
	if cfg.Database.Dsn == "" {
		cfg.Database.Dsn = defaults["database.dsn"].(string)
	}
	if cfg.Language == "" {
		cfg.Language = defaults["language"].(string)
	}
	a.cfg = cfg

	if err := logging.SetLevel(cfg.Log.Level); err != nil && cfg.Log.Level != "" {
		logging.Warnf("%v", err)
	}
	if a.verbose {
		logging.SetDebug(true)
		db.SetDebug(true)
	}
	if cfg.Language != i18n.GetLang() {
		i18n.SetLang(cfg.Language)
	}
	logging.Debugf("using %s database %s", cfg.Database.Type, cfg.Database.Dsn)
	return nil
}

// open connects to the configured database and loads the book.
func (a *app) open(ctx context.Context) (*session, error) {
	store, err := db.New(a.cfg.Database.Type, a.cfg.Database.Dsn)
	if err != nil {
		return nil, errors.New(i18n.T("config.error_init_db", err))
	}
	b, err := book.Open(ctx, store, book.WithCacheSize(a.cfg.Index.CacheSize))
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return &session{store: store, book: b}, nil
}

// withSession wraps a RunE so that it gets an open session that is closed
// afterwards.
func (a *app) withSession(fn func(cmd *cobra.Command, args []string, s *session) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := a.open(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()
		return fn(cmd, args, s)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: i18n.T("cmd.version_short"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			version, commit, date := buildvars.Resolve(nil)
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("version.line", version, commit, date))
		},
	}
}
