package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"git.home.luguber.info/inful/coffeedocs/internal/page"
	"git.home.luguber.info/inful/coffeedocs/internal/shell"
)

// RoutesCmd implements the 'routes' command.
type RoutesCmd struct {
	JSON bool `help:"Print the route table as JSON"`
}

func (c *RoutesCmd) Run(g *Global, _ *CLI) error {
	if c.JSON {
		enc := json.NewEncoder(g.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(shell.Routes)
	}

	tw := tabwriter.NewWriter(g.Stdout, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "PATH\tPAGE\tHEADING")
	for _, r := range shell.Routes {
		heading := page.Heading(r.Page)
		if heading == "" {
			heading = "-"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Path, r.Page, heading)
	}
	return tw.Flush()
}
