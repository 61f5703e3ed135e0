package cmd

import (
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/mkuran/wordseal/internal/codec"
)

// decodeCmd inspects a code offline: it unpacks the key id and tag bits
// without consulting any oracle, so it proves nothing about validity.
var decodeCmd = &cobra.Command{
	Use:   "decode <words...>",
	Short: "Decode a code without validating it",
	Long: `Splits a 10-word code into its key id and MAC tag bits.
This is a debugging aid; it performs no MAC check and says nothing about
whether the code is genuine or fresh.`,
	Example: `  wordseal decode word0005 word0000 word0016 word0128 ...`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tokens := strings.Fields(strings.Join(args, " "))

		bits, err := codec.DecodeWords(tokens)
		if err != nil {
			return err
		}
		keyID, macTag, err := codec.Unpack(bits)
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendRow(table.Row{"Key ID", keyID})
		t.AppendRow(table.Row{"Key Bits", bits[:codec.KeyBits]})
		t.AppendRow(table.Row{"MAC Tag", truncate(macTag, 48)})
		t.AppendRow(table.Row{"Words", len(tokens)})

		s := table.StyleRounded
		s.Format.Header = text.FormatDefault
		t.SetStyle(s)
		t.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
