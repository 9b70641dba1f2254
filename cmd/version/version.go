package version

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/scan-io-git/commentcheck/pkg/shared"
)

var (
	CoreVersion   = "unknown"
	GolangVersion = "unknown"
	BuildTime     = "unknown"
)

// CoreVersions holds version information for the application.
type CoreVersions struct {
	Versions shared.Versions `json:"versions"`
}

// NewVersionCmd creates a new cobra.Command for the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "version",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 "Print the version number of the application",
		RunE: func(cmd *cobra.Command, args []string) error {
			version := CoreVersions{
				Versions: shared.Versions{
					Version:       CoreVersion,
					GolangVersion: GolangVersion,
					BuildTime:     BuildTime,
				},
			}
			return printVersionInfo(cmd.OutOrStdout(), &version)
		},
	}
}

func printVersionInfo(w io.Writer, v *CoreVersions) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal version info: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
