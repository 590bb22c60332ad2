package main

import (
	"os"

	"github.com/Krish2786/LegalMind-AI/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
