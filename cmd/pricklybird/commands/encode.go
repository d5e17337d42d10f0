package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"pricklybird/internal/codec"
	"pricklybird/internal/util/wipe"
)

func encodeCmd() *cobra.Command {
	var hexInput bool

	cmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "Encode bytes as pricklybird words",
		Long: "Encode reads raw bytes from a file (or stdin) and prints the " +
			"pricklybird word sequence with its checksum word appended.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args)
			if err != nil {
				return err
			}
			if hexInput {
				data, err = hex.DecodeString(strings.Join(strings.Fields(string(data)), ""))
				if err != nil {
					return fmt.Errorf("parse hex input: %w", err)
				}
			}
			if len(data) == 0 {
				return fmt.Errorf("nothing to encode")
			}

			fmt.Println(codec.Encode(data))

			// Input is often key material; scrub our copy.
			wipe.Bytes(data)
			return nil
		},
	}

	cmd.Flags().BoolVar(&hexInput, "hex", false, "treat input as hex text instead of raw bytes")
	return cmd
}

// readInput returns the contents of the file named in args, or stdin when no
// argument is given.
func readInput(args []string) ([]byte, error) {
	if len(args) == 1 {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}
