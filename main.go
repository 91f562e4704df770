package main

import (
	"os"

	"github.com/iburimskiy/deskfolio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
