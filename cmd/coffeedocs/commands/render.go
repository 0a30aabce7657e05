package commands

import (
	"fmt"
	"net/http"
	"net/url"
	"os"

	"git.home.luguber.info/inful/coffeedocs/internal/content"
	"git.home.luguber.info/inful/coffeedocs/internal/foundation/errors"
	"git.home.luguber.info/inful/coffeedocs/internal/metrics"
	"git.home.luguber.info/inful/coffeedocs/internal/shell"
)

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	Path   string `arg:"" optional:"" help:"Route path to render, e.g. /user-model" default:"/"`
	Drawer bool   `help:"Render with the side panel open"`
	Output string `short:"o" help:"Write the HTML to this file instead of stdout" type:"path"`
}

func (c *RenderCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(g, root)
	if err != nil {
		return err
	}
	reg, err := loadRegistry(cfg, g.Logger)
	if err != nil {
		return err
	}
	docs, err := newSite(cfg, content.NewStore(reg), metrics.NoopRecorder{}, g.Logger)
	if err != nil {
		return err
	}

	query := url.Values{}
	if c.Drawer {
		query.Set(shell.DrawerParam, "open")
	}
	out, err := docs.Render(c.Path, query)
	if err != nil {
		return err
	}

	if c.Output != "" {
		if err := os.WriteFile(c.Output, out.Body, 0o644); err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "failed to write rendered page").
				WithContext("path", c.Output).
				Build()
		}
	} else if _, err := g.Stdout.Write(out.Body); err != nil {
		return fmt.Errorf("write page: %w", err)
	}

	if out.Status == http.StatusNotFound {
		return errors.NotFoundError("no page at this path").
			WithContext("path", c.Path).
			Build()
	}
	return nil
}
