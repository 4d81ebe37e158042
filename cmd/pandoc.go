package cmd

import (
	"dti/system"
	"dti/tools/pandoc"

	"github.com/urfave/cli/v2"
)

func PandocInstall(cCtx *cli.Context) error {
	if err := system.RequireSudo(); err != nil {
		return err
	}

	l, err := system.GetLocalSystem()
	if err != nil {
		return err
	}

	m := pandoc.NewManager(l)
	if err := m.Install(); err != nil {
		return err
	}
	return m.Verify()
}

func PandocRemove(cCtx *cli.Context) error {
	if err := system.RequireSudo(); err != nil {
		return err
	}

	l, err := system.GetLocalSystem()
	if err != nil {
		return err
	}

	m := pandoc.NewManager(l)
	return m.Remove()
}
