package cli

import (
	"github.com/spf13/cobra"

	"github.com/pacetools/paceviz/pkg/formats"
)

// detectCommand creates the detect command: report which parser a file
// would be handed to, without parsing it.
func (c *CLI) detectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <file>",
		Short: "Report the detected format of a benchmark file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := formats.Detect(args[0])
			if err != nil {
				return err
			}
			printKeyValue("format", string(format))
			return nil
		},
	}
}
