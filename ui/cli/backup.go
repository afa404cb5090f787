// Copyright (c) 2026 ToeiRei
// Addressbook - prefix-searchable contact book
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/toeirei/addressbook/internal/backup"
	"github.com/toeirei/addressbook/internal/i18n"
)

func newBackupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "backup [file]",
		Short: i18n.T("cmd.backup_short"),
		Args:  cobra.MaximumNArgs(1),
		RunE: a.withSession(func(cmd *cobra.Command, args []string, s *session) error {
			path := backup.DefaultFileName(time.Now())
			if len(args) == 1 {
				path = args[0]
			}
			if err := backup.WriteFile(path, s.book.Export()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("backup.written", path))
			return nil
		}),
	}
}

func newRestoreCmd(a *app) *cobra.Command {
	var full bool
	cmd := &cobra.Command{
		Use:   "restore <file>",
		Short: i18n.T("cmd.restore_short"),
		Args:  cobra.ExactArgs(1),
		RunE: a.withSession(func(cmd *cobra.Command, args []string, s *session) error {
			data, err := backup.ReadFile(args[0])
			if err != nil {
				return err
			}
			if err := s.book.Import(cmd.Context(), data, full); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("restore.done", args[0], len(data.Persons), len(data.Groups)))
			return nil
		}),
	}
	cmd.Flags().BoolVar(&full, "full", false, i18n.T("restore.flag_full"))
	return cmd
}
