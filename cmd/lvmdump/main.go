package main

import (
	"os"

	"github.com/shapestone/shape-lvm/cmd/lvmdump/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
