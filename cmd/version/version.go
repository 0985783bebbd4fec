package version

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	CoreVersion   = "unknown"
	GolangVersion = "unknown"
	BuildTime     = "unknown"
)

// Versions struct holds version information for the application.
type Versions struct {
	Version       string `json:"version"`
	GolangVersion string `json:"golang_version"`
	BuildTime     string `json:"build_time"`
}

// NewVersionCmd creates a new cobra.Command for the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "version",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 "Print the version number of the application",
		Run: func(cmd *cobra.Command, args []string) {
			versionInfo := Versions{
				Version:       CoreVersion,
				GolangVersion: GolangVersion,
				BuildTime:     BuildTime,
			}
			data, err := json.MarshalIndent(versionInfo, "", "  ")
			if err != nil {
				fmt.Printf("failed to marshal version info: %v\n", err)
				return
			}
			fmt.Println(string(data))
		},
	}
}
