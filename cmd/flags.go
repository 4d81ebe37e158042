package cmd

import "github.com/urfave/cli/v2"

const categoryPackage = "Package installation: "

func versionFlag(usage, defaultText string) *cli.StringFlag {
	f := &cli.StringFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   usage,
	}
	if defaultText != "" {
		f.DefaultText = defaultText
	}

	return f
}

func packageFlag(usage string) *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:     "package",
		Aliases:  []string{"p"},
		Usage:    usage,
		Category: categoryPackage,
	}
}

func packageFileFlag(usage string) *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:     "packages-file",
		Aliases:  []string{"f"},
		Usage:    usage,
		Category: categoryPackage,
	}
}

func pathFlag(usage, defaultText string) *cli.StringFlag {
	f := &cli.StringFlag{
		Name:  "install-path",
		Usage: usage,
	}
	if defaultText != "" {
		f.DefaultText = defaultText
	}

	return f
}
