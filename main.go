package main

import (
	"os"

	"github.com/vladimirvivien/csdview/cmd"
)

func main() {
	if err := cmd.NewCSDViewCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
