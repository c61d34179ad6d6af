package main

import (
	"fmt"
	"os"

	"github.com/Lumos-Labs-HQ/sampledata/cmd"
)

func main() {
	if err := cmd.ExecuteSampleData(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
