package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"anilookup/internal/anilist"
	"anilookup/internal/plugin"
	"anilookup/internal/present"
	"anilookup/internal/search"
)

func newQueryCmd(a *app) *cobra.Command {
	var (
		output     string
		candidates bool
	)

	cmd := &cobra.Command{
		Use:     "query <keywords...>",
		Aliases: []string{"al"},
		Short:   "Search AniList and print the best match",
		Example: `  anilookup query Naruto
  anilookup query "[Levi]" --output json
  anilookup query "{Cowboy Bebop}" --candidates`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := anilist.NewClient(a.cfg.AniList.Endpoint, a.cfg.AniList.Timeout, a.logger)
			p := plugin.NewAniList(search.NewSearcher(client, a.logger))

			if candidates {
				scored, err := p.Candidates(cmd.Context(), args)
				if err != nil {
					return err
				}
				return printCandidates(cmd, scored)
			}

			card, err := p.Query(cmd.Context(), args)
			if err != nil {
				if errors.Is(err, search.ErrNoResults) {
					return errors.New(plugin.NoResultsMessage)
				}
				return err
			}
			return present.Render(cmd.OutOrStdout(), card, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", present.FormatText, "output format (text, json, yaml)")
	cmd.Flags().BoolVar(&candidates, "candidates", false, "list every scored candidate instead of the card")
	return cmd
}

func printCandidates(cmd *cobra.Command, scored []search.Scored) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("KIND", "SCORE", "NAME", "URL")
	for _, s := range scored {
		t.Row(string(s.Record.Kind()), fmt.Sprintf("%.3f", s.Score), s.Record.PrimaryName(), present.URL(s.Record))
	}
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, t.Render())
	if best, ok := search.Best(scored); ok {
		fmt.Fprintf(w, "\nselected: %s %s\n", best.Record.Kind(), present.URL(best.Record))
	} else {
		fmt.Fprintln(w, "\n"+plugin.NoResultsMessage)
	}
	return nil
}
