package cmd

import (
	"dti/system"
	"dti/system/syspkg"

	"github.com/urfave/cli/v2"
)

func SysPkgUpdate(cCtx *cli.Context) error {
	l, err := system.GetLocalSystem()
	if err != nil {
		return err
	}
	return l.PackageManager.Update()
}

func SysPkgUpgrade(cCtx *cli.Context) error {
	l, err := system.GetLocalSystem()
	if err != nil {
		return err
	}
	return l.PackageManager.Upgrade(cCtx.Bool("dist"))
}

func SysPkgInstall(cCtx *cli.Context) error {
	l, err := system.GetLocalSystem()
	if err != nil {
		return err
	}

	list := &syspkg.PackageList{
		Packages:         cCtx.StringSlice("package"),
		PackageListFiles: cCtx.StringSlice("packages-file"),
	}
	return l.PackageManager.Install(list)
}

func SysPkgUninstall(cCtx *cli.Context) error {
	l, err := system.GetLocalSystem()
	if err != nil {
		return err
	}

	packages := cCtx.StringSlice("package")
	if len(packages) == 0 {
		return nil
	}
	return l.PackageManager.Remove(&syspkg.PackageList{Packages: packages})
}

func SysPkgClean(cCtx *cli.Context) error {
	l, err := system.GetLocalSystem()
	if err != nil {
		return err
	}
	return l.PackageManager.Clean()
}
