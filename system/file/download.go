package file

import (
	"dti/errors"
	"dti/system/command"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Artifact downloads can be large, so the client timeout is generous.
var downloadClient = &http.Client{Timeout: 5 * time.Minute}

var curlBin = "curl"

func DownloadFile(url string, filepath string) error {
	slog.Debug("Downloading file from " + url + " to " + filepath)

	request, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build download request for %s: %w", url, err)
	}

	resp, err := downloadClient.Do(request)
	if err != nil {
		return fmt.Errorf(errors.DownloadFailedErrorTpl, url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf(errors.DownloadBadStatusErrorTpl, url, resp.Status)
	}

	newFh, err := Create(filepath)
	if err != nil {
		return fmt.Errorf("failed to save download to file '%s': %w", filepath, err)
	}
	defer newFh.Close()

	_, err = io.Copy(newFh, resp.Body)
	if err != nil {
		return err
	}

	slog.Debug("Download complete")

	return nil
}

// DownloadFileWithFallback tries the built-in HTTP client first and falls
// back to curl with the same URL and destination. Certificate verification
// stays on for both attempts; the trust store is expected to be current.
func DownloadFileWithFallback(url string, filepath string) error {
	err := DownloadFile(url, filepath)
	if err == nil {
		return nil
	}

	slog.Warn("Download failed, retrying with curl: " + err.Error())

	cmd := command.NewShellCommand(curlBin, []string{"-fSL", "-o", filepath, url}, nil, true)
	if curlErr := cmd.Run(); curlErr != nil {
		return fmt.Errorf("download of %s failed (%w) and curl fallback failed: %w", url, err, curlErr)
	}

	slog.Debug("curl fallback download complete")

	return nil
}
