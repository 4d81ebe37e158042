package dtitest

import (
	"dti/system/command"
	"testing"

	"github.com/stretchr/testify/assert"
)

type FakeShellCallError struct {
	OnCall int
	Err    error
}

type ShellCall struct {
	Binary         string
	ContainsArgs   []string
	EnvVars        []string
	InheritEnvVars bool
}

func (s *ShellCall) Equal(t *testing.T, name string, args []string, envVars []string, inheritEnvVars bool) {
	assert := assert.New(t)
	assert.Equal(s.Binary, name)
	for _, arg := range s.ContainsArgs {
		assert.Contains(args, arg)
	}
	for _, v := range s.EnvVars {
		assert.Contains(envVars, v)
	}
	assert.Equal(s.InheritEnvVars, inheritEnvVars)
}

var CommonShellCalls = map[string]*ShellCall{
	"aptUpdate": {
		Binary:         "apt-get",
		ContainsArgs:   []string{"update", "-q"},
		EnvVars:        nil,
		InheritEnvVars: true,
	},
	"aptClean": {
		Binary:         "apt-get",
		ContainsArgs:   []string{"clean", "-q"},
		EnvVars:        nil,
		InheritEnvVars: true,
	},
	"debCAUpdate": {
		Binary:         "update-ca-certificates",
		ContainsArgs:   []string{},
		EnvVars:        nil,
		InheritEnvVars: true,
	},
	"dnfClean": {
		Binary:         "dnf",
		ContainsArgs:   []string{"clean", "all"},
		EnvVars:        nil,
		InheritEnvVars: true,
	},
	"rhelCAUpdate": {
		Binary:         "update-ca-trust",
		ContainsArgs:   []string{},
		EnvVars:        nil,
		InheritEnvVars: true,
	},
	"curlDownload": {
		Binary:         "curl",
		ContainsArgs:   []string{"-fSL"},
		EnvVars:        nil,
		InheritEnvVars: true,
	},
}

// RecordedCall captures one invocation of command.NewShellCommand.
type RecordedCall struct {
	Name           string
	Args           []string
	EnvVars        []string
	InheritEnvVars bool
}

// ShellRecorder replaces command.NewShellCommand with a runner that
// records calls instead of executing them. FailOn scripts an error on the
// nth recorded call (1-based).
type ShellRecorder struct {
	Calls  []*RecordedCall
	FailOn *FakeShellCallError
}

// Install swaps the constructor and returns a restore func for defer.
func (r *ShellRecorder) Install() func() {
	old := command.NewShellCommand
	command.NewShellCommand = func(name string, args []string, envVars []string, inheritEnvVars bool) command.ShellCommandRunner {
		r.Calls = append(r.Calls, &RecordedCall{
			Name:           name,
			Args:           args,
			EnvVars:        envVars,
			InheritEnvVars: inheritEnvVars,
		})
		fake := &fakeRunner{
			name:           name,
			args:           args,
			envVars:        envVars,
			inheritEnvVars: inheritEnvVars,
		}
		if r.FailOn != nil && len(r.Calls) == r.FailOn.OnCall {
			fake.err = r.FailOn.Err
		}
		return fake
	}
	return func() {
		command.NewShellCommand = old
	}
}

type fakeRunner struct {
	name           string
	args           []string
	envVars        []string
	inheritEnvVars bool
	err            error
}

func (f *fakeRunner) Run() error {
	return f.err
}

func (f *fakeRunner) String() string {
	return f.name
}

func (f *fakeRunner) GetName() string {
	return f.name
}

func (f *fakeRunner) GetArgs() []string {
	return f.args
}

func (f *fakeRunner) GetEnvVars() []string {
	return f.envVars
}

func (f *fakeRunner) GetInheritEnvVars() bool {
	return f.inheritEnvVars
}

func (f *fakeRunner) GetContext() command.ShellCommandContexter {
	return nil
}

func (f *fakeRunner) GetExecutor() command.ShellCommandExecutor {
	return nil
}
