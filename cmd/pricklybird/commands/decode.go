package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"pricklybird/internal/codec"
)

func decodeCmd() *cobra.Command {
	var ignoreCRC, raw bool

	cmd := &cobra.Command{
		Use:   "decode [words]",
		Short: "Decode pricklybird words back to bytes",
		Long: "Decode verifies the checksum word and prints the payload as hex. " +
			"Words are read from the argument or from stdin.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			if len(args) == 1 {
				text = args[0]
			} else {
				in, err := io.ReadAll(os.Stdin)
				if err != nil {
					return err
				}
				text = string(in)
			}

			decode := codec.Decode
			if ignoreCRC {
				decode = codec.DecodeNoVerify
			}
			payload, err := decode(text)
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}

			if raw {
				_, err = os.Stdout.Write(payload)
				return err
			}
			fmt.Println(hex.EncodeToString(payload))
			return nil
		},
	}

	cmd.Flags().BoolVar(&ignoreCRC, "ignore-crc", false, "skip checksum verification (for known-corrupt input)")
	cmd.Flags().BoolVar(&raw, "raw", false, "write the payload as raw bytes instead of hex")
	return cmd
}
