package main

import (
	"os"

	"github.com/muhaimin059/dct-watermark/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
