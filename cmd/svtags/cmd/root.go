// Package cmd implements the svtags command line, grounded on the
// teacher's cmd/dwscript/cmd package: one cobra.Command per file, global
// flags registered on rootCmd in init(), version info set by build flags.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "svtags",
	Short: "Verilog/SystemVerilog tag extractor",
	Long: `svtags scans Verilog (IEEE 1364) and SystemVerilog (IEEE 1800)
source trees and emits a ctags-style tag stream: modules, classes,
functions, tasks, nets, registers, ports, parameters, typedefs, and more,
without building a full AST.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose diagnostic output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
