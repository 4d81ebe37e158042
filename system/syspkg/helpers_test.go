package syspkg

import (
	"dti/system/command"
)

type recordedCall struct {
	name string
	args []string
}

type fakeRunner struct {
	name string
	err  error
}

func (f *fakeRunner) Run() error                                { return f.err }
func (f *fakeRunner) String() string                            { return f.name }
func (f *fakeRunner) GetName() string                           { return f.name }
func (f *fakeRunner) GetArgs() []string                         { return nil }
func (f *fakeRunner) GetEnvVars() []string                      { return nil }
func (f *fakeRunner) GetInheritEnvVars() bool                   { return true }
func (f *fakeRunner) GetContext() command.ShellCommandContexter { return nil }
func (f *fakeRunner) GetExecutor() command.ShellCommandExecutor { return nil }

// recordShellCommands swaps command.NewShellCommand for a recorder.
// failOn scripts an error on the nth call (1-based); 0 never fails.
func recordShellCommands(calls *[]recordedCall, failOn int, err error) func() {
	old := command.NewShellCommand
	command.NewShellCommand = func(name string, args []string, envVars []string, inheritEnvVars bool) command.ShellCommandRunner {
		*calls = append(*calls, recordedCall{name: name, args: args})
		f := &fakeRunner{name: name}
		if failOn > 0 && len(*calls) == failOn {
			f.err = err
		}
		return f
	}
	return func() {
		command.NewShellCommand = old
	}
}
