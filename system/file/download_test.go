package file

import (
	"dti/system/command"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadFile(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	tests := []struct {
		name         string
		urlPath      string
		status       int
		body         string
		wantContents string
		wantErr      bool
	}{
		{
			name:         "Successful request",
			urlPath:      "/success.txt",
			status:       http.StatusOK,
			body:         "200 OK",
			wantContents: "200 OK",
			wantErr:      false,
		},
		{
			name:    "Unsuccessful request",
			urlPath: "/fail.txt",
			status:  http.StatusNotFound,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useMemFs(t)

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != tt.urlPath {
					t.Errorf("Request URL = %v, want %v", r.URL.Path, tt.urlPath)
				}
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			dest := "/downloads/out.txt"
			require.NoError(AppFs.MkdirAll("/downloads", 0755))

			err := DownloadFile(srv.URL+tt.urlPath, dest)

			if tt.wantErr {
				assert.Error(err)
				return
			}
			require.NoError(err)
			contents, err := afero.ReadFile(AppFs, dest)
			require.NoError(err)
			assert.Equal(tt.wantContents, string(contents))
		})
	}
}

type fakeCurlRunner struct {
	err error
}

func (f *fakeCurlRunner) Run() error                                { return f.err }
func (f *fakeCurlRunner) String() string                            { return "curl" }
func (f *fakeCurlRunner) GetName() string                           { return "curl" }
func (f *fakeCurlRunner) GetArgs() []string                         { return nil }
func (f *fakeCurlRunner) GetEnvVars() []string                      { return nil }
func (f *fakeCurlRunner) GetInheritEnvVars() bool                   { return true }
func (f *fakeCurlRunner) GetContext() command.ShellCommandContexter { return nil }
func (f *fakeCurlRunner) GetExecutor() command.ShellCommandExecutor { return nil }

func TestDownloadFileWithFallback(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	tests := []struct {
		name         string
		status       int
		curlErr      error
		wantCurlCall bool
		wantErr      bool
	}{
		{
			name:         "primary succeeds, no fallback",
			status:       http.StatusOK,
			wantCurlCall: false,
			wantErr:      false,
		},
		{
			name:         "primary fails, curl succeeds",
			status:       http.StatusNotFound,
			wantCurlCall: true,
			wantErr:      false,
		},
		{
			name:         "primary and curl fail",
			status:       http.StatusNotFound,
			curlErr:      fmt.Errorf("curl: (6) could not resolve host"),
			wantCurlCall: true,
			wantErr:      true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useMemFs(t)

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte("payload"))
			}))
			defer srv.Close()

			var curlCalls [][]string
			old := command.NewShellCommand
			command.NewShellCommand = func(name string, args []string, envVars []string, inheritEnvVars bool) command.ShellCommandRunner {
				assert.Equal("curl", name)
				curlCalls = append(curlCalls, args)
				return &fakeCurlRunner{err: tt.curlErr}
			}
			defer func() {
				command.NewShellCommand = old
			}()

			url := srv.URL + "/artifact.tar.gz"
			dest := "/downloads/artifact.tar.gz"
			require.NoError(AppFs.MkdirAll("/downloads", 0755))

			err := DownloadFileWithFallback(url, dest)

			if tt.wantErr {
				assert.Error(err)
			} else {
				assert.NoError(err)
			}

			if tt.wantCurlCall {
				require.Len(curlCalls, 1)
				assert.Contains(curlCalls[0], "-fSL")
				assert.Contains(curlCalls[0], url, "curl must be given the same URL")
				assert.Contains(curlCalls[0], dest, "curl must be given the same destination")
			} else {
				assert.Empty(curlCalls)
			}
		})
	}
}
