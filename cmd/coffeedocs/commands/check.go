package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"git.home.luguber.info/inful/coffeedocs/internal/content"
	"git.home.luguber.info/inful/coffeedocs/internal/foundation/errors"
	"git.home.luguber.info/inful/coffeedocs/internal/linkverify"
	"git.home.luguber.info/inful/coffeedocs/internal/logfields"
	"git.home.luguber.info/inful/coffeedocs/internal/metrics"
	"git.home.luguber.info/inful/coffeedocs/internal/site"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	JSON    bool `help:"Print the full report as JSON"`
	Publish bool `help:"Publish broken links to the configured NATS subject"`
}

func (c *CheckCmd) Run(g *Global, root *CLI) error {
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
	svc := linkverify.NewVerificationService(docs, linkverify.Options{Assets: site.StaticPaths(), Logger: g.Logger})

	ctx := context.Background()
	report, err := svc.Verify(ctx, "")
	if err != nil {
		return err
	}

	if c.Publish && cfg.LinkCheck.NATSURL != "" {
		client, err := connectNATS(ctx, cfg, g.Logger)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()
		for i := range report.Broken {
			if err := client.PublishBrokenLink(ctx, &report.Broken[i]); err != nil {
				g.Logger.Warn("Failed to publish broken link", logfields.URL(report.Broken[i].URL), logfields.Error(err))
			}
		}
	}

	if c.JSON {
		enc := json.NewEncoder(g.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		_, _ = fmt.Fprintf(g.Stdout, "checked %d references on %d pages (%d external)\n",
			report.Checked, report.Pages, report.External)
		for _, b := range report.Broken {
			_, _ = fmt.Fprintf(g.Stdout, "BROKEN %s on %s (<%s %s>): %s\n", b.URL, b.Source, b.Tag, b.Attribute, b.Reason)
		}
	}

	if !report.OK() {
		return errors.ContentError("broken links found").
			WithContext("count", len(report.Broken)).
			Build()
	}
	return nil
}
