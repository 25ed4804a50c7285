package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tayjaybabee/MIDIDiff/constants"
)

const Version = "1.1.0"

const latestReleaseURL = "https://api.github.com/repos/tayjaybabee/MIDIDiff/releases/latest"

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(debugInfoCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Shows version and environment info",
	Long:  fmt.Sprintf("Shows version and environment info (set %v to '1', 'true', or 'yes' to check for updates)", constants.UpdateCheckEnvVar),
	Run: func(cmd *cobra.Command, args []string) {
		printVersionInfo()
	},
}

var debugInfoCmd = &cobra.Command{
	Use:   "debug-info",
	Short: "Displays diagnostic and environment information",
	Long:  `Displays diagnostic and environment information`,
	Run: func(cmd *cobra.Command, args []string) {
		printDebugInfo()
	},
}

func dependencyVersion(path string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, dep := range info.Deps {
		if dep.Path == path {
			return dep.Version
		}
	}
	return "not installed"
}

func printVersionInfo() {
	fmt.Printf("MIDIDiff version: %v\n", Version)
	fmt.Printf("Go: %v\n", runtime.Version())
	fmt.Printf("Platform: %v/%v\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("gomidi: %v\n", dependencyVersion("gitlab.com/gomidi/midi/v2"))
	fmt.Printf("cobra: %v\n", dependencyVersion("github.com/spf13/cobra"))

	if constants.UpdateCheckEnabled() {
		fmt.Println(checkForUpdate(Version))
	} else {
		fmt.Printf("Update check disabled (set %v=1 to enable).\n", constants.UpdateCheckEnvVar)
	}
}

// checkForUpdate asks the release API for the newest tag. Never fatal:
// any failure comes back as a message for the user.
func checkForUpdate(currentVersion string) string {
	client := http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(latestReleaseURL)
	if err != nil {
		return fmt.Sprintf("Update check failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Sprintf("Update check failed: unexpected status %v", resp.Status)
	}

	var payload struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Sprintf("Update check failed: %v", err)
	}
	if payload.TagName == "" {
		return "Update check failed: missing version metadata."
	}

	latest := strings.TrimPrefix(payload.TagName, "v")
	if latest == currentVersion {
		return "Up to date."
	}
	return fmt.Sprintf("Update available: %v (installed %v).", latest, currentVersion)
}

func printDebugInfo() {
	printVersionInfo()

	exe, _ := os.Executable()
	wd, _ := os.Getwd()
	fmt.Printf("Executable: %v\n", exe)
	fmt.Printf("Working dir: %v\n", wd)
	fmt.Printf("%v: %q\n", constants.UpdateCheckEnvVar, os.Getenv(constants.UpdateCheckEnvVar))
}
