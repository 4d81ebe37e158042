package dtitest

import "dti/system"

func NewUbuntuSystem() *system.LocalSystem {
	return &system.LocalSystem{
		Vendor:  "ubuntu",
		Version: "22.04",
		Arch:    "x86_64",
	}
}

func NewUbuntuArmSystem() *system.LocalSystem {
	return &system.LocalSystem{
		Vendor:  "ubuntu",
		Version: "22.04",
		Arch:    "aarch64",
	}
}

func NewRockySystem() *system.LocalSystem {
	return &system.LocalSystem{
		Vendor:  "rockylinux",
		Version: "8",
		Arch:    "x86_64",
	}
}
