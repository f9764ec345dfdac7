// sif - SIF problem file tool
//
// Usage:
//
//	sif check FILE...   Parse files and report the first error in each
//	sif summary FILE    Print problem name and section counts
//	sif json FILE       Print the parsed problem as JSON
//
// Gzip-compressed inputs (.SIF.gz) are decompressed transparently.
package main

import (
	"os"

	"github.com/Neumenon/sif/cmd/sif/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
