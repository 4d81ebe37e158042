package cmd

import (
	"dti/system"
	"dti/tools"

	"github.com/urfave/cli/v2"
)

func Init(cCtx *cli.Context) error {
	if err := system.RequireSudo(); err != nil {
		return err
	}

	l, err := system.GetLocalSystem()
	if err != nil {
		return err
	}

	return tools.Provision(l, cCtx.String("version"))
}
