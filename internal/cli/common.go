// Package cli provides shared helpers for the ecmaparse command line:
// version reporting, exit handling and diagnostic rendering.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
)

// Version information
const (
	Version   = "0.1.0"
	BuildDate = "2026-10-19"
	CommitSHA = "dev"
)

// VersionInfo contains version information
type VersionInfo struct {
	Version   string `json:"version"`
	BuildDate string `json:"build_date"`
	CommitSHA string `json:"commit_sha"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
	Arch      string `json:"arch"`
}

// GetVersionInfo returns version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:   Version,
		BuildDate: BuildDate,
		CommitSHA: CommitSHA,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// PrintVersion writes version information for toolName to w, as indented
// JSON when jsonOutput is set.
func PrintVersion(w io.Writer, toolName string, jsonOutput bool) error {
	info := GetVersionInfo()

	if jsonOutput {
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode version info: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	_, err := fmt.Fprintf(w, "%s %s\nBuild Date: %s\nCommit: %s\nGo Version: %s\nPlatform: %s/%s\n",
		toolName, info.Version, info.BuildDate, info.CommitSHA, info.GoVersion, info.Platform, info.Arch)
	return err
}

// ExitError carries the process exit code for a failed command. Commands
// return it when the failure has already been reported.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode maps a command error to a process exit code: 0 for nil, the
// carried code for *ExitError, and 2 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if e, ok := err.(*ExitError); ok {
		return e.Code
	}
	return 2
}
