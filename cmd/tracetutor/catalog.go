package main

import (
	"fmt"
	"strconv"
	"strings"

	"tracetutor/internal/catalog"
	"tracetutor/internal/session"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newCatalogCmd(opts *options) *cobra.Command {
	var level string
	cmd := &cobra.Command{
		Use:   "catalog [query]",
		Short: "List projects matching a search query and level",
		Example: `  tracetutor catalog
  tracetutor catalog power --level intermediate
  tracetutor catalog "analog circuits"`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := catalog.ParseLevel(level)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			cat, err := loadCatalog(cfg.CatalogPath)
			if err != nil {
				return err
			}
			query := strings.Join(args, " ")
			return printProjects(cmd, catalog.FilterProjects(cat.Projects, query, lvl), query)
		},
	}
	cmd.Flags().StringVarP(&level, "level", "l", "all", "Difficulty filter: all, beginner, intermediate or advanced")
	return cmd
}

func printProjects(cmd *cobra.Command, projects []catalog.Project, query string) error {
	out := cmd.OutOrStdout()
	if summary := session.SearchSummary(query, len(projects)); summary != "" {
		fmt.Fprintln(out, summary)
	}
	if len(projects) == 0 {
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TITLE", "LEVEL", "DURATION", "SKILLS")
	for _, p := range projects {
		t.Row(strconv.Itoa(p.ID), p.Title, string(p.Difficulty), p.Duration, strings.Join(p.Skills, ", "))
	}
	_, err := fmt.Fprintln(out, t.Render())
	return err
}
