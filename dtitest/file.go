package dtitest

import (
	"dti/system/file"

	"github.com/spf13/afero"
)

// ResetAppFs restores the real filesystem after a MemMapFs swap.
func ResetAppFs() {
	file.AppFs = afero.NewOsFs()
}
