package main

import (
	"os"

	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
