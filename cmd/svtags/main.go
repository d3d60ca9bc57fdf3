// Command svtags is the CLI front-end for the tag scanner.
package main

import (
	"fmt"
	"os"

	"github.com/ljwgithub/svtags/cmd/svtags/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
