package dtitest

import (
	"dti/system/syspkg"

	"github.com/stretchr/testify/mock"
)

// MockSystemPackageManager is a hand-written testify mock for
// syspkg.SystemPackageManager.
type MockSystemPackageManager struct {
	mock.Mock
}

func (m *MockSystemPackageManager) GetBin() string {
	return m.Called().String(0)
}

func (m *MockSystemPackageManager) GetPackageExtension() string {
	return m.Called().String(0)
}

func (m *MockSystemPackageManager) Install(list *syspkg.PackageList) error {
	return m.Called(list).Error(0)
}

func (m *MockSystemPackageManager) Remove(list *syspkg.PackageList) error {
	return m.Called(list).Error(0)
}

func (m *MockSystemPackageManager) Update() error {
	return m.Called().Error(0)
}

func (m *MockSystemPackageManager) Upgrade(fullUpgrade bool) error {
	return m.Called(fullUpgrade).Error(0)
}

func (m *MockSystemPackageManager) Clean() error {
	return m.Called().Error(0)
}
