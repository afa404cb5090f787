// Copyright (c) 2026 ToeiRei
// Addressbook - prefix-searchable contact book
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/toeirei/addressbook/internal/i18n"
	"github.com/toeirei/addressbook/internal/model"
)

func newAddCmd(a *app) *cobra.Command {
	var (
		first, last, address string
		phones, emails       []string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: i18n.T("cmd.add_short"),
		Args:  cobra.NoArgs,
		RunE: a.withSession(func(cmd *cobra.Command, args []string, s *session) error {
			p, err := model.NewPerson(first, last, address, phones[0], emails[0])
			if err != nil {
				return err
			}
			for _, ph := range phones[1:] {
				if err := p.AddPhone(ph); err != nil {
					return err
				}
			}
			for _, e := range emails[1:] {
				if err := p.AddEmail(e); err != nil {
					return err
				}
			}
			if err := s.book.Add(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("add.success", p.String()))
			return nil
		}),
	}
	f := cmd.Flags()
	f.StringVar(&first, "first", "", i18n.T("add.flag_first"))
	f.StringVar(&last, "last", "", i18n.T("add.flag_last"))
	f.StringVar(&address, "address", "", i18n.T("add.flag_address"))
	f.StringArrayVar(&phones, "phone", nil, i18n.T("add.flag_phone"))
	f.StringArrayVar(&emails, "email", nil, i18n.T("add.flag_email"))
	for _, name := range []string{"first", "last", "phone", "email"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query...>",
		Short: i18n.T("cmd.search_short"),
		Args:  cobra.MinimumNArgs(1),
		RunE: a.withSession(func(cmd *cobra.Command, args []string, s *session) error {
			query := strings.Join(args, " ")
			results := s.book.Search(query)
			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintln(out, i18n.T("search.no_results", query))
				return nil
			}
			for _, p := range results {
				fmt.Fprintln(out, p.String())
			}
			return nil
		}),
	}
}

// lookupPerson accepts a composite key or a name with spaces, in any case.
func lookupPerson(s *session, arg string) string {
	key := strings.ToLower(arg)
	if _, ok := s.book.Person(key); ok {
		return key
	}
	return strings.ReplaceAll(key, " ", "")
}
