// Command rtlayout writes the layout assertions of package rt from the shim
// element table. It runs through go generate in the rt directory.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/wippyai/bridgegen/shim"
)

func main() {
	out := flag.String("o", "layout.go", "Output file")
	flag.Parse()

	var b strings.Builder
	if err := shim.WriteRuntimeLayout(&b); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, []byte(b.String()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
