package commands

import (
	"fmt"
	"os"

	"git.home.luguber.info/inful/coffeedocs/internal/config"
	"git.home.luguber.info/inful/coffeedocs/internal/content"
	"git.home.luguber.info/inful/coffeedocs/internal/foundation/errors"
)

// DefaultConfigFile is written by 'init' when --config is not given.
const DefaultConfigFile = "coffeedocs.yaml"

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force   bool   `help:"Overwrite existing files"`
	Content string `help:"Also write the built-in content registry to this file and use it as the content override" type:"path"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	path := root.Config
	if path == "" {
		path = DefaultConfigFile
	}
	if i.Content != "" {
		if err := writeContent(i.Content, i.Force); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(g.Stdout, "Wrote content registry to %s\n", i.Content)
	}
	if err := config.Init(path, i.Force, i.Content); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(g.Stdout, "Wrote configuration to %s\n", path)
	return nil
}

// writeContent dumps the built-in registry as a starter content file.
func writeContent(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.ValidationError("content file already exists (use --force to overwrite)").
			WithContext("path", path).
			Build()
	}
	data, err := content.Marshal(content.Default())
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal content registry").Build()
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write content file").
			WithContext("path", path).
			Build()
	}
	return nil
}
