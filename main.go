package main

import (
	"os"

	"github.com/ifedorova/langdrill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
