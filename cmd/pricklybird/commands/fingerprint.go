package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/blake2b"

	"pricklybird/internal/codec"
	"pricklybird/internal/util/wipe"
)

func fingerprintCmd() *cobra.Command {
	var length int

	cmd := &cobra.Command{
		Use:   "fingerprint [file]",
		Short: "Print a speakable fingerprint of a file or key",
		Long: "Fingerprint hashes the input with BLAKE2b-256, truncates the " +
			"digest and encodes it as pricklybird words, giving a short " +
			"fingerprint that can be read over the phone.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if length < 1 || length > blake2b.Size256 {
				return fmt.Errorf("length must be between 1 and %d bytes", blake2b.Size256)
			}

			data, err := readInput(args)
			if err != nil {
				return err
			}

			sum := blake2b.Sum256(data)
			wipe.Bytes(data)

			fmt.Println(codec.Encode(sum[:length]))
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", 8, "digest bytes to keep before encoding")
	return cmd
}
