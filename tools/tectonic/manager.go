package tectonic

import (
	"dti/errors"
	"dti/system"
	"dti/system/command"
	"dti/system/file"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/afero"
)

const (
	// DefaultVersion is the asset name used by the continuous release
	// channel, a rolling always-latest build identified by a fixed tag.
	DefaultVersion = "latest"

	DefaultInstallPath = "/usr/local/bin/tectonic"
)

var downloadUrl = "https://github.com/tectonic-typesetting/tectonic/releases/download/continuous/tectonic-%s-%s.tar.gz"

type Manager struct {
	system.LocalSystem
	Version     string
	InstallPath string
}

func NewManager(l *system.LocalSystem, version, installPath string) *Manager {
	if version == "" {
		version = DefaultVersion
	}
	if installPath == "" {
		installPath = DefaultInstallPath
	}
	return &Manager{
		LocalSystem: *l,
		Version:     version,
		InstallPath: installPath,
	}
}

// releaseTriple maps a detected CPU architecture to the release build
// variant. aarch64 and arm64 both get the musl build; everything else
// falls through to the x86_64 gnu build.
func releaseTriple(arch string) string {
	switch arch {
	case "aarch64", "arm64":
		return "aarch64-unknown-linux-musl"
	default:
		return "x86_64-unknown-linux-gnu"
	}
}

func getDownloadUrl(version, arch string) (string, error) {
	if version == "" {
		version = DefaultVersion
	}
	if arch == "" {
		return "", fmt.Errorf("no system architecture provided for tectonic download")
	}
	return fmt.Sprintf(downloadUrl, version, releaseTriple(arch)), nil
}

func (m *Manager) Installed() (bool, error) {
	exists, err := file.IsPathExist(m.InstallPath)
	if err != nil {
		return false, fmt.Errorf("failed to check for existing tectonic installation at '%s': %w", m.InstallPath, err)
	}
	if exists {
		isFile, err := file.IsFile(m.InstallPath)
		if err != nil {
			return false, fmt.Errorf("failed to check if '%s' is a file: %w", m.InstallPath, err)
		}
		if !isFile {
			return false, fmt.Errorf("'%s' is not a file", m.InstallPath)
		}
	}
	return exists, nil
}

// Install downloads the release archive for the local architecture,
// extracts the binary, and moves it into place. An existing installation
// is overwritten so that re-running converges to the same state.
func (m *Manager) Install() error {
	downloadUrl, err := getDownloadUrl(m.Version, m.LocalSystem.Arch)
	if err != nil {
		return fmt.Errorf("unable to determine tectonic download url: %w", err)
	}
	slog.Debug("Download URL: " + downloadUrl)

	s, _ := pterm.DefaultSpinner.Start("Downloading tectonic...")

	downloadDir, err := afero.TempDir(file.AppFs, "", "dti")
	if err != nil {
		return fmt.Errorf("unable to create dti temporary directory for download: %w", err)
	}
	defer func() {
		err := file.AppFs.RemoveAll(downloadDir)
		if err != nil {
			slog.Warn("Failed to remove temporary directory '" + downloadDir + "': " + err.Error())
		}
	}()
	archivePath := downloadDir + "/tectonic.tar.gz"

	if err := file.DownloadFileWithFallback(downloadUrl, archivePath); err != nil {
		s.Fail("Download failed.")
		return fmt.Errorf(errors.ToolDownloadFailedErrorTpl, "tectonic", err)
	}
	s.Success("Download complete.")

	if err := file.ExtractTarGz(archivePath, downloadDir); err != nil {
		return fmt.Errorf("unable to extract tectonic archive from '%s' to '%s': %w", archivePath, downloadDir, err)
	}

	extractedBin := downloadDir + "/tectonic"
	isFile, err := file.IsFile(extractedBin)
	if err != nil {
		return fmt.Errorf("could not read tectonic extract path '%s': %w", extractedBin, err)
	}
	if !isFile {
		return &errors.BinaryDoesNotExistError{Pkg: "tectonic", Path: extractedBin}
	}

	installed, err := m.Installed()
	if err != nil {
		return fmt.Errorf("failed to check for existing tectonic: %w", err)
	}
	if installed {
		slog.Info("Overwriting existing tectonic installation at " + m.InstallPath)
		if err := file.AppFs.Remove(m.InstallPath); err != nil {
			return fmt.Errorf("failed to remove existing tectonic at '%s': %w", m.InstallPath, err)
		}
	}

	slog.Debug("Installing tectonic binary to: " + m.InstallPath)
	if err := file.Move(extractedBin, m.InstallPath); err != nil {
		return fmt.Errorf("failed to install tectonic to '%s': %w", m.InstallPath, err)
	}
	slog.Debug("Setting permissions for tectonic binary to 0755")
	if err := file.AppFs.Chmod(m.InstallPath, 0755); err != nil {
		return fmt.Errorf(errors.ToolSetPermissionsFailedErrorTpl, m.InstallPath, "0755", err)
	}
	slog.Info("tectonic installed successfully to " + m.InstallPath)

	return nil
}

func (m *Manager) Update() error {
	slog.Info("Updating tectonic")
	slog.Info("Checking for existing tectonic installation")
	installed, err := m.Installed()
	if err != nil {
		return fmt.Errorf("failed to check for existing tectonic installation: %w", err)
	}

	if installed {
		slog.Info("Existing tectonic installation found")
		err := m.Remove()
		if err != nil {
			return fmt.Errorf("failed to remove existing tectonic installation: %w", err)
		}
	} else {
		slog.Info("tectonic is not installed")
	}

	return m.Install()
}

func (m *Manager) Remove() error {
	installed, err := m.Installed()
	if err != nil {
		return fmt.Errorf("failed to check for existing tectonic: %w", err)
	}
	if !installed {
		slog.Info("tectonic is not installed")
		return nil
	}

	slog.Info("Removing tectonic")
	err = file.AppFs.Remove(m.InstallPath)
	if err != nil {
		return fmt.Errorf(errors.ToolRemovalFailedErrorTpl, "tectonic", m.InstallPath, err)
	}
	slog.Info("tectonic removed successfully from " + m.InstallPath)

	return nil
}

// Verify runs a version query against the installed binary.
func (m *Manager) Verify() error {
	out, err := command.Output(m.InstallPath, "--version")
	if err != nil {
		return fmt.Errorf(errors.ToolVerifyFailedErrorTpl, "tectonic", err)
	}
	slog.Info("Installed " + strings.TrimSpace(out))
	return nil
}
