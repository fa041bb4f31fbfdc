package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retrovault/internal/catalog"
	"github.com/vovakirdan/retrovault/internal/registry"
)

func (a *app) listCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all available games",
		Long: `Shows every game in the arcade, grouped by category.

Examples:
  retrovault list
  retrovault list --category puzzle`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cats := catalog.Categories()
			if category != "" {
				c, err := parseCategory(category)
				if err != nil {
					return err
				}
				cats = []catalog.Category{c}
			}

			out := cmd.OutOrStdout()
			slugW := len("ID")
			for _, e := range catalog.All() {
				slugW = max(slugW, len(e.Slug))
			}

			for _, c := range cats {
				fmt.Fprintf(out, "%s\n", c)
				for _, e := range catalog.ByCategory(c) {
					if !registry.Exists(e.Slug) {
						continue
					}
					fmt.Fprintf(out, "  %-*s  %s\n", slugW, e.Slug, e.Title)
				}
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, "Run 'retrovault play <id>' to play a game.")
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Only list one category: arcade, puzzle, action, modern")
	return cmd
}

func parseCategory(s string) (catalog.Category, error) {
	for _, c := range catalog.Categories() {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// lookupGame resolves a slug to its catalog entry, requiring a registered
// implementation.
func lookupGame(slug string) (catalog.Entry, error) {
	e, ok := catalog.BySlug(slug)
	if !ok || !registry.Exists(slug) {
		return catalog.Entry{}, fmt.Errorf("unknown game %q (run 'retrovault list' to see available games)", slug)
	}
	return e, nil
}
