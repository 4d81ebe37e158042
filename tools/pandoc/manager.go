package pandoc

import (
	"dti/errors"
	"dti/system"
	"dti/system/command"
	"dti/system/syspkg"
	"fmt"
	"log/slog"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

const packageName = "pandoc"

var binPath = "pandoc"

// Distribution packages can lag far behind upstream; anything older than
// this produces documents we no longer support.
var minimumVersion = goversion.Must(goversion.NewVersion("2.0.0"))

type Manager struct {
	system.LocalSystem
}

func NewManager(l *system.LocalSystem) *Manager {
	return &Manager{
		LocalSystem: *l,
	}
}

func (m *Manager) Install() error {
	slog.Info("Installing pandoc from the system package manager")

	packages := &syspkg.PackageList{Packages: []string{packageName}}
	if err := m.PackageManager.Install(packages); err != nil {
		return fmt.Errorf(errors.ToolInstallFailedErrorTpl, packageName, err)
	}

	slog.Info("pandoc installed successfully")

	return nil
}

func (m *Manager) Remove() error {
	slog.Info("Removing pandoc")

	packages := &syspkg.PackageList{Packages: []string{packageName}}
	if err := m.PackageManager.Remove(packages); err != nil {
		return fmt.Errorf("failed to remove pandoc: %w", err)
	}

	return nil
}

// Verify runs a version query against the installed converter and checks
// the reported version against the minimum we support. An old converter
// is only a warning.
func (m *Manager) Verify() error {
	out, err := command.Output(binPath, "--version")
	if err != nil {
		return fmt.Errorf(errors.ToolVerifyFailedErrorTpl, packageName, err)
	}

	reported := reportedVersion(out)
	slog.Info("Installed pandoc " + reported)

	v, err := goversion.NewVersion(reported)
	if err != nil {
		slog.Warn("Could not parse pandoc version '" + reported + "': " + err.Error())
		return nil
	}
	if v.LessThan(minimumVersion) {
		slog.Warn(fmt.Sprintf("pandoc %s is older than the minimum supported version %s", v, minimumVersion))
	}

	return nil
}

// reportedVersion pulls the version number out of the first line of
// `pandoc --version` output, which looks like "pandoc 3.1.9".
func reportedVersion(out string) string {
	line, _, _ := strings.Cut(out, "\n")
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return strings.TrimSpace(line)
	}
	return fields[len(fields)-1]
}
