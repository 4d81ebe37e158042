package cmd

import (
	"dti/tools/tectonic"
	"log/slog"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
)

func Cli() *cli.App {
	app := &cli.App{
		Name:        "dti",
		Usage:       "Document Tools Installer",
		Description: "Provision a development container with the document converter and typesetting engine",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "Enable debug mode",
				Action: func(c *cli.Context, debugMode bool) error {
					if debugMode {
						slog.Info("Debug mode enabled")
						pterm.DefaultLogger.Level = pterm.LogLevelDebug
					}
					return nil
				},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Provision the container: packages, CA trust, converter, and typesetting engine",
				Flags: []cli.Flag{
					versionFlag("Typesetting engine release to install", tectonic.DefaultVersion),
				},
				Action: Init,
			},
			{
				Name:     "tectonic",
				Usage:    "Install or manage the Tectonic typesetting engine",
				Category: "tools",
				Subcommands: []*cli.Command{
					{
						Name:  "install",
						Usage: "Install Tectonic",
						Flags: []cli.Flag{
							versionFlag("Tectonic release to install", tectonic.DefaultVersion),
							pathFlag("Path to install the tectonic binary to", tectonic.DefaultInstallPath),
						},
						Action: TectonicInstall,
					},
					{
						Name:  "upgrade",
						Usage: "Remove and reinstall Tectonic",
						Flags: []cli.Flag{
							versionFlag("Tectonic release to install", tectonic.DefaultVersion),
							pathFlag("Path to install the tectonic binary to", tectonic.DefaultInstallPath),
						},
						Action: TectonicUpgrade,
					},
					{
						Name:  "remove",
						Usage: "Remove Tectonic",
						Flags: []cli.Flag{
							pathFlag("Path of the installed tectonic binary", tectonic.DefaultInstallPath),
						},
						Action: TectonicRemove,
					},
				},
			},
			{
				Name:     "pandoc",
				Usage:    "Install or manage the Pandoc document converter",
				Category: "tools",
				Subcommands: []*cli.Command{
					{
						Name:   "install",
						Usage:  "Install Pandoc from the system package manager",
						Action: PandocInstall,
					},
					{
						Name:   "remove",
						Usage:  "Remove Pandoc",
						Action: PandocRemove,
					},
				},
			},
			{
				Name:     "syspkg",
				Usage:    "Manage system package installations",
				Category: "container",
				Subcommands: []*cli.Command{
					{
						Name:   "update",
						Usage:  "Update package lists",
						Action: SysPkgUpdate,
					},
					{
						Name:  "upgrade",
						Usage: "Upgrade installed packages",
						Flags: []cli.Flag{
							&cli.BoolFlag{
								Name:  "dist",
								Usage: "Run dist-upgrade on Debian-based systems",
							},
						},
						Action: SysPkgUpgrade,
					},
					{
						Name:  "install",
						Usage: "Install system packages",
						Flags: []cli.Flag{
							packageFlag("Package(s) to install"),
							packageFileFlag("Path to file containing package names to install"),
						},
						Action: SysPkgInstall,
					},
					{
						Name:  "uninstall",
						Usage: "Uninstall system packages",
						Flags: []cli.Flag{
							packageFlag("Package(s) to uninstall"),
						},
						Action: SysPkgUninstall,
					},
					{
						Name:   "clean",
						Usage:  "Clean up package caches",
						Action: SysPkgClean,
					},
				},
			},
		},
	}
	return app
}
