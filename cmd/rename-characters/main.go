package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kxue43/asset-toolkit/characters"
	"github.com/kxue43/asset-toolkit/rename"
	"github.com/kxue43/asset-toolkit/tui"
	"github.com/kxue43/asset-toolkit/version"
)

type CLI struct {
	Dir         string `name:"dir" type:"existingdir" help:"Directory containing the artwork files. Defaults to the directory of this executable."`
	Summary     string `name:"summary" type:"path" help:"Also write a YAML run summary to this file."`
	Interactive bool   `name:"interactive" short:"i" help:"Review the pending renames before applying them."`
	Version     bool   `name:"version" help:"Show version information and quit."`
}

func (c *CLI) Run() error {
	if c.Version {
		fmt.Println(version.FromBuildInfo())

		return nil
	}

	dir := c.Dir

	if dir == "" {
		var err error

		dir, err = rename.ExecutableDir()
		if err != nil {
			return err
		}
	}

	mapping := characters.Table()

	if err := mapping.Validate(); err != nil {
		return err
	}

	if c.Interactive {
		out, err := tea.NewProgram(tui.InitialModel(dir, mapping)).Run()
		if err != nil {
			return fmt.Errorf("failed to run the review screen: %w", err)
		}

		final, ok := out.(tui.Model)
		if !ok || !final.Confirmed() {
			return nil
		}

		mapping = final.Selected()
	}

	renamer := rename.Renamer{BaseDir: dir, Out: os.Stdout}

	report, err := renamer.Run(mapping)
	if err != nil {
		return err
	}

	if c.Summary != "" {
		return report.SaveSummary(c.Summary)
	}

	return nil
}

func main() {
	var cli CLI

	ctx := kong.Parse(
		&cli,
		kong.Name("rename-characters"),
		kong.Description("Rename character artwork files to their canonical names."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
