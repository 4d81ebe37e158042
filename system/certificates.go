package system

import (
	"dti/errors"
	"dti/system/command"
	"fmt"
)

func (l *LocalSystem) UpdateCACertificates() error {
	var updateBin string

	switch l.Vendor {
	case "ubuntu", "debian":
		updateBin = "update-ca-certificates"
	case "almalinux", "centos", "rockylinux", "rhel":
		updateBin = "update-ca-trust"
	default:
		return &errors.UnsupportedOSError{Vendor: l.Vendor, Version: l.Version}
	}

	s := command.NewShellCommand(updateBin, nil, nil, true)
	err := s.Run()
	if err != nil {
		return fmt.Errorf("failed to update CA certificates: %w", err)
	}

	return nil
}
