// Copyright (c) 2026 ToeiRei
// Addressbook - prefix-searchable contact book
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toeirei/addressbook/internal/book"
	"github.com/toeirei/addressbook/internal/i18n"
	"github.com/toeirei/addressbook/internal/model"
)

func newGroupCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: i18n.T("cmd.group_short"),
	}

	add := &cobra.Command{
		Use:   "add <name>",
		Short: i18n.T("cmd.group_add_short"),
		Args:  cobra.ExactArgs(1),
		RunE: a.withSession(func(cmd *cobra.Command, args []string, s *session) error {
			if err := s.book.AddGroup(cmd.Context(), model.NewGroup(args[0])); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("group.created", args[0]))
			return nil
		}),
	}

	list := &cobra.Command{
		Use:   "list",
		Short: i18n.T("cmd.group_list_short"),
		Args:  cobra.NoArgs,
		RunE: a.withSession(func(cmd *cobra.Command, args []string, s *session) error {
			out := cmd.OutOrStdout()
			groups := s.book.Groups()
			if len(groups) == 0 {
				fmt.Fprintln(out, i18n.T("group.none"))
				return nil
			}
			for _, g := range groups {
				fmt.Fprintln(out, i18n.T("group.member_count", g.Name, len(g.Members())))
			}
			return nil
		}),
	}

	show := &cobra.Command{
		Use:   "show <name>",
		Short: i18n.T("cmd.group_show_short"),
		Args:  cobra.ExactArgs(1),
		RunE: a.withSession(func(cmd *cobra.Command, args []string, s *session) error {
			found := s.book.GetGroup(args[0])
			if len(found) == 0 {
				return fmt.Errorf("group %q: %w", args[0], book.ErrNotFound)
			}
			out := cmd.OutOrStdout()
			members := found[0].Members()
			if len(members) == 0 {
				fmt.Fprintln(out, i18n.T("group.empty", args[0]))
				return nil
			}
			for _, p := range members {
				fmt.Fprintln(out, p.String())
			}
			return nil
		}),
	}

	join := &cobra.Command{
		Use:   "join <group> <person>",
		Short: i18n.T("cmd.group_join_short"),
		Args:  cobra.ExactArgs(2),
		RunE: a.withSession(func(cmd *cobra.Command, args []string, s *session) error {
			key := lookupPerson(s, args[1])
			if err := s.book.Join(cmd.Context(), args[0], key); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("group.joined", key, args[0]))
			return nil
		}),
	}

	leave := &cobra.Command{
		Use:   "leave <group> <person>",
		Short: i18n.T("cmd.group_leave_short"),
		Args:  cobra.ExactArgs(2),
		RunE: a.withSession(func(cmd *cobra.Command, args []string, s *session) error {
			key := lookupPerson(s, args[1])
			if err := s.book.Leave(cmd.Context(), args[0], key); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("group.left", key, args[0]))
			return nil
		}),
	}

	cmd.AddCommand(add, list, show, join, leave)
	return cmd
}
