package cmd

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tutils/mrgrand/crypt/xor"
)

// maskCmd represents the mask command
var maskCmd = &cobra.Command{
	Use:   "mask",
	Short: "XOR stdin with the generator keystream",
	Long: `Obfuscate stdin to stdout with a keystream drawn from the generator.
Not encryption: keys congruent modulo 24 share a keystream. For example:
  mrgrand mask --crypt-key=816559 < plain > masked
  mrgrand mask --crypt-key=816559 --decode < masked > plain`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMask(cmd.InOrStdin(), cmd.OutOrStdout(), maskKey, maskDecode)
	},
}

var (
	maskKey    int64
	maskDecode bool
)

func runMask(in io.Reader, out io.Writer, key int64, decode bool) error {
	c := xor.NewCrypt(key)
	var err error
	if decode {
		_, err = io.Copy(out, c.NewDecoder(in))
	} else {
		_, err = io.Copy(c.NewEncoder(out), in)
	}
	return errors.Wrap(err, "mask")
}

const defaultMaskKey = 98545715754651

func init() {
	rootCmd.AddCommand(maskCmd)

	flags := maskCmd.Flags()
	flags.Int64VarP(&maskKey, "crypt-key", "k", defaultMaskKey, "keystream seed")
	flags.BoolVarP(&maskDecode, "decode", "d", false, "reverse a previous mask")
}
