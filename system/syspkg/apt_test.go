package syspkg

import (
	"dti/system/file"
	"fmt"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAptManager(t *testing.T) {
	assert := assert.New(t)

	m := NewAptManager()

	assert.Equal("apt-get", m.GetBin())
	assert.Equal(".deb", m.GetPackageExtension())
	assert.Contains(m.installOpts, "install")
	assert.Contains(m.updateOpts, "update")
	assert.Contains(m.upgradeOpts, "upgrade")
	assert.Contains(m.distUpgradeOpts, "dist-upgrade")
	assert.Contains(m.removeOpts, "remove")
	assert.Contains(m.autoRemoveOpts, "autoremove")
	assert.Contains(m.cleanOpts, "clean")
}

func TestAptManager_Install(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	oldFs := file.AppFs
	file.AppFs = afero.NewMemMapFs()
	defer func() {
		file.AppFs = oldFs
	}()

	packageListFile := "/lists/packages.txt"
	require.NoError(afero.WriteFile(file.AppFs, packageListFile, []byte("pkg3\npkg4\n"), 0644))
	require.NoError(afero.WriteFile(file.AppFs, "/tmp/pkg1.deb", []byte("deb"), 0644))
	require.NoError(afero.WriteFile(file.AppFs, "/tmp/pkg2.deb", []byte("deb"), 0644))

	tests := []struct {
		name              string
		packageList       *PackageList
		expectedCalls     int
		failOn            int
		runErr            error
		wantErr           bool
		wantFirstCallArgs []string
	}{
		{
			name:          "Empty package list",
			packageList:   &PackageList{},
			expectedCalls: 0,
			wantErr:       false,
		},
		{
			name: "String packages",
			packageList: &PackageList{
				Packages: []string{"pkg1", "pkg2"},
			},
			expectedCalls:     1,
			wantErr:           false,
			wantFirstCallArgs: []string{"install", "-y", "-q", "pkg1", "pkg2"},
		},
		{
			name: "Packages from list file",
			packageList: &PackageList{
				PackageListFiles: []string{packageListFile},
			},
			expectedCalls:     1,
			wantErr:           false,
			wantFirstCallArgs: []string{"install", "-y", "-q", "pkg3", "pkg4"},
		},
		{
			name: "Missing package list file",
			packageList: &PackageList{
				PackageListFiles: []string{"/lists/nonexistent.txt"},
			},
			expectedCalls: 0,
			wantErr:       true,
		},
		{
			name: "Local packages",
			packageList: &PackageList{
				LocalPackages: []string{"/tmp/pkg1.deb", "/tmp/pkg2.deb"},
			},
			expectedCalls: 2,
			wantErr:       false,
		},
		{
			name: "Missing local package",
			packageList: &PackageList{
				LocalPackages: []string{"/tmp/missing.deb"},
			},
			expectedCalls: 0,
			wantErr:       true,
		},
		{
			name: "Runtime error local packages",
			packageList: &PackageList{
				LocalPackages: []string{"/tmp/pkg1.deb", "/tmp/pkg2.deb"},
			},
			expectedCalls: 1,
			failOn:        1,
			runErr:        fmt.Errorf("runtime error"),
			wantErr:       true,
		},
		{
			name: "String and local packages",
			packageList: &PackageList{
				Packages:      []string{"pkg1", "pkg2"},
				LocalPackages: []string{"/tmp/pkg1.deb", "/tmp/pkg2.deb"},
			},
			expectedCalls: 3,
			wantErr:       false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []recordedCall
			restore := recordShellCommands(&calls, tt.failOn, tt.runErr)
			defer restore()

			m := NewAptManager()
			err := m.Install(tt.packageList)

			if tt.wantErr {
				assert.Error(err)
			} else {
				assert.NoError(err)
			}
			assert.Len(calls, tt.expectedCalls)
			if tt.wantFirstCallArgs != nil && len(calls) > 0 {
				assert.Equal("apt-get", calls[0].name)
				assert.Equal(tt.wantFirstCallArgs, calls[0].args)
			}
		})
	}
}

func TestAptManager_Remove(t *testing.T) {
	assert := assert.New(t)

	var calls []recordedCall
	restore := recordShellCommands(&calls, 0, nil)
	defer restore()

	m := NewAptManager()
	err := m.Remove(&PackageList{Packages: []string{"pkg1"}})

	assert.NoError(err)
	assert.Len(calls, 1)
	assert.Equal("apt-get", calls[0].name)
	assert.Equal([]string{"remove", "-y", "-q", "pkg1"}, calls[0].args)
}

func TestAptManager_Update(t *testing.T) {
	assert := assert.New(t)

	var calls []recordedCall
	restore := recordShellCommands(&calls, 0, nil)
	defer restore()

	m := NewAptManager()
	err := m.Update()

	assert.NoError(err)
	assert.Len(calls, 1)
	assert.Equal([]string{"update", "-q"}, calls[0].args)
}

func TestAptManager_Update_Error(t *testing.T) {
	assert := assert.New(t)

	var calls []recordedCall
	restore := recordShellCommands(&calls, 1, fmt.Errorf("network down"))
	defer restore()

	m := NewAptManager()
	err := m.Update()

	assert.Error(err)
	assert.ErrorContains(err, "apt update failed")
}

func TestAptManager_Upgrade(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		name          string
		fullUpgrade   bool
		expectedCalls int
	}{
		{
			name:          "upgrade only",
			fullUpgrade:   false,
			expectedCalls: 1,
		},
		{
			name:          "upgrade with dist-upgrade",
			fullUpgrade:   true,
			expectedCalls: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []recordedCall
			restore := recordShellCommands(&calls, 0, nil)
			defer restore()

			m := NewAptManager()
			err := m.Upgrade(tt.fullUpgrade)

			assert.NoError(err)
			assert.Len(calls, tt.expectedCalls)
		})
	}
}

func TestAptManager_Clean(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	oldFs := file.AppFs
	file.AppFs = afero.NewMemMapFs()
	defer func() {
		file.AppFs = oldFs
	}()
	require.NoError(file.AppFs.MkdirAll("/var/lib/apt/lists", 0755))

	var calls []recordedCall
	restore := recordShellCommands(&calls, 0, nil)
	defer restore()

	m := NewAptManager()
	err := m.Clean()

	assert.NoError(err)
	assert.Len(calls, 2)
	assert.Equal([]string{"clean", "-q"}, calls[0].args)
	assert.Equal([]string{"autoremove", "-y", "-q"}, calls[1].args)

	exists, err := afero.DirExists(file.AppFs, "/var/lib/apt/lists")
	require.NoError(err)
	assert.False(exists, "apt lists cache should be removed by Clean()")
}
