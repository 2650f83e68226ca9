package main

import (
	"fmt"
	"os"

	"github.com/commissaire-project/bootstrap-agent/cmd"
	"github.com/commissaire-project/bootstrap-agent/internal/config"
)

func main() {
	cfg := config.NewConfigurationWithOptionsAndDefaults()
	if err := cmd.NewRunCommand(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
