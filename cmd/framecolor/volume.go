package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/frame-color/internal/settings"
)

var volumeCmd = &cobra.Command{
	Use:   "volume [value]",
	Short: "Show or set the feedback volume",
	Long: fmt.Sprintf(`Without an argument, prints the stored volume.
With a value, stores it. Values outside %d..%d are clamped.
Negative values must follow "--" so they are not read as flags.

Examples:
  framecolor volume
  framecolor volume 80
  framecolor volume -- -5`, settings.MinVolume, settings.MaxVolume),
	Args: cobra.MaximumNArgs(1),
	RunE: runVolume,
}

func init() {
	volumeCmd.SetFlagErrorFunc(volumeFlagError)
}

// volumeFlagError points at "--" when a negative value was parsed as a flag.
func volumeFlagError(_ *cobra.Command, err error) error {
	const prefix = "unknown shorthand flag: '"
	msg := err.Error()
	if strings.HasPrefix(msg, prefix) && len(msg) > len(prefix) {
		if c := msg[len(prefix)]; c >= '0' && c <= '9' {
			return fmt.Errorf("%w (pass negative values after \"--\", e.g. 'framecolor volume -- -5')", err)
		}
	}
	return err
}

func runVolume(cmd *cobra.Command, args []string) error {
	svc, err := openServices(true)
	if err != nil {
		return err
	}
	defer svc.Close()

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		fmt.Fprintf(out, "Volume: %d\n", svc.audio.Volume())
		return nil
	}

	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid volume %q: %w", args[0], err)
	}

	svc.audio.SetVolume(v)
	fmt.Fprintf(out, "Volume: %d\n", svc.audio.Volume())
	return nil
}
