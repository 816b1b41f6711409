package main

import (
	"fmt"
	"os"

	"worktime/internal/cli"
)

func main() {
	// Create repository factory based on environment
	factory := NewRepositoryFactory(getEnvironment())

	root := cli.NewRootCommand(factory.OpenBusinessAPI)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.Error(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
