package main

import (
	"fmt"
	"os"
)

func main() {
	root := newRootCommand()
	root.AddCommand(newUpCommand(), newDownCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
