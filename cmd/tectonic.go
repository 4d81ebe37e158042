package cmd

import (
	"dti/system"
	"dti/tools/tectonic"

	"github.com/urfave/cli/v2"
)

func TectonicInstall(cCtx *cli.Context) error {
	if err := system.RequireSudo(); err != nil {
		return err
	}

	l, err := system.GetLocalSystem()
	if err != nil {
		return err
	}

	m := tectonic.NewManager(l, cCtx.String("version"), cCtx.String("install-path"))
	if err := m.Install(); err != nil {
		return err
	}
	return m.Verify()
}

func TectonicUpgrade(cCtx *cli.Context) error {
	if err := system.RequireSudo(); err != nil {
		return err
	}

	l, err := system.GetLocalSystem()
	if err != nil {
		return err
	}

	m := tectonic.NewManager(l, cCtx.String("version"), cCtx.String("install-path"))
	return m.Update()
}

func TectonicRemove(cCtx *cli.Context) error {
	if err := system.RequireSudo(); err != nil {
		return err
	}

	l, err := system.GetLocalSystem()
	if err != nil {
		return err
	}

	m := tectonic.NewManager(l, "", cCtx.String("install-path"))
	return m.Remove()
}
