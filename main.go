package main

import (
	"os"

	"github.com/apmgui/alpm-setup/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
