package main

import (
	"os"

	"github.com/msto63/verifier/cmd/verifier/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
