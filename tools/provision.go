package tools

import (
	"dti/system"
	"dti/tools/container"
	"dti/tools/pandoc"
	"dti/tools/tectonic"
	"fmt"
	"log/slog"
)

// Provision runs the one-shot container setup: bootstrap the package
// manager and CA trust store, install the document converter, install the
// typesetting engine, and verify both. Every stage is fail-fast; in
// particular no download is attempted if the trust store refresh fails.
func Provision(l *system.LocalSystem, engineVersion string) error {
	defer l.PackageManager.Clean() //nolint:errcheck

	if err := container.Bootstrap(l); err != nil {
		return fmt.Errorf("container bootstrap failed: %w", err)
	}

	converter := pandoc.NewManager(l)
	if err := converter.Install(); err != nil {
		return err
	}

	engine := tectonic.NewManager(l, engineVersion, "")
	if err := engine.Install(); err != nil {
		return err
	}

	if err := converter.Verify(); err != nil {
		return err
	}
	if err := engine.Verify(); err != nil {
		return err
	}

	slog.Info("Container provisioned")

	return nil
}
