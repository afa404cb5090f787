// Copyright (c) 2026 ToeiRei
// Addressbook - prefix-searchable contact book
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/toeirei/addressbook/internal/i18n"
	"github.com/toeirei/addressbook/internal/index"
)

func newTreeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree",
		Short: i18n.T("cmd.tree_short"),
	}

	words := &cobra.Command{
		Use:   "words",
		Short: i18n.T("cmd.tree_words_short"),
		Args:  cobra.NoArgs,
		RunE: a.withSession(func(cmd *cobra.Command, args []string, s *session) error {
			for _, w := range s.book.Words() {
				fmt.Fprintln(cmd.OutOrStdout(), w)
			}
			return nil
		}),
	}

	dump := &cobra.Command{
		Use:   "dump",
		Short: i18n.T("cmd.tree_dump_short"),
		Args:  cobra.NoArgs,
		RunE: a.withSession(func(cmd *cobra.Command, args []string, s *session) error {
			fmt.Fprintln(cmd.OutOrStdout(), string(s.book.Traverse()))
			return nil
		}),
	}

	has := &cobra.Command{
		Use:   "has <term...>",
		Short: i18n.T("cmd.tree_has_short"),
		Args:  cobra.MinimumNArgs(1),
		RunE: a.withSession(func(cmd *cobra.Command, args []string, s *session) error {
			answer := i18n.T("tree.has_no")
			if s.book.InTree(index.Normalize(strings.Join(args, " "))) {
				answer = i18n.T("tree.has_yes")
			}
			fmt.Fprintln(cmd.OutOrStdout(), answer)
			return nil
		}),
	}

	cmd.AddCommand(words, dump, has)
	return cmd
}
