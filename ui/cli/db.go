// Copyright (c) 2026 ToeiRei
// Addressbook - prefix-searchable contact book
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toeirei/addressbook/internal/book"
	"github.com/toeirei/addressbook/internal/db"
	"github.com/toeirei/addressbook/internal/i18n"
)

func newDBCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: i18n.T("cmd.db_short"),
	}

	maintain := &cobra.Command{
		Use:   "maintain",
		Short: i18n.T("cmd.db_maintain_short"),
		Args:  cobra.NoArgs,
		RunE: a.withSession(func(cmd *cobra.Command, args []string, s *session) error {
			if err := s.store.Maintain(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("db.maintain_done"))
			return nil
		}),
	}

	var targetType, targetDsn string
	migrate := &cobra.Command{
		Use:   "migrate",
		Short: i18n.T("cmd.db_migrate_short"),
		Args:  cobra.NoArgs,
		RunE: a.withSession(func(cmd *cobra.Command, args []string, s *session) error {
			if targetType == a.cfg.Database.Type && targetDsn == a.cfg.Database.Dsn {
				return errors.New("target database is the current database")
			}
			data := s.book.Export()
			target, err := db.New(targetType, targetDsn)
			if err != nil {
				return errors.New(i18n.T("config.error_init_db", err))
			}
			defer func() { _ = target.Close() }()
			tb, err := book.Open(cmd.Context(), target)
			if err != nil {
				return err
			}
			if err := tb.Import(cmd.Context(), data, true); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("db.migrate_done", len(data.Persons), len(data.Groups), targetType))
			return nil
		}),
	}
	migrate.Flags().StringVar(&targetType, "to-type", db.TypeSQLite, i18n.T("db.migrate_flag_type"))
	migrate.Flags().StringVar(&targetDsn, "to-dsn", "", i18n.T("db.migrate_flag_dsn"))
	_ = migrate.MarkFlagRequired("to-dsn")

	cmd.AddCommand(maintain, migrate)
	return cmd
}
