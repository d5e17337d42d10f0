package commands

import (
	"github.com/spf13/cobra"
)

func Execute() error {
	root := &cobra.Command{
		Use:   "pricklybird",
		Short: "Convert binary data to and from human-friendly words",
	}

	root.AddCommand(encodeCmd(), decodeCmd(), fingerprintCmd(), selftestCmd())
	return root.Execute()
}
