package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ljwgithub/svtags/internal/scanner"
	"github.com/ljwgithub/svtags/pkg/keyword"
)

var (
	lexShowPos bool
	lexForceSV bool
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Dump the classified token stream for a file",
	Long: `Tokenize a Verilog/SystemVerilog file and print each word's parser
kind, useful for debugging the scanner without running a full scan.`,
	Args: cobra.ExactArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show each token's source line")
	lexCmd.Flags().BoolVar(&lexForceSV, "sv", false, "force SystemVerilog grammar regardless of extension")
}

func runLex(cmd *cobra.Command, args []string) error {
	filename := args[0]
	src, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	lang := keyword.Verilog
	if lexForceSV || strings.HasSuffix(filename, ".sv") || strings.HasSuffix(filename, ".svh") || strings.HasSuffix(filename, ".svi") {
		lang = keyword.SystemVerilog
	}

	return scanner.DumpTokens(os.Stdout, src, lang, keyword.Default, lexShowPos)
}
