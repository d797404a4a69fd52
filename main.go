package main

import (
	"fmt"
	"os"

	"github.com/d-kiselev/tester/cmd"
)

// This variable is set in the make/build script, during the go build
var version = "dev"

func main() {
	if version == "" {
		fmt.Fprintln(os.Stderr, "tester was built incorrectly and its version string is empty")
		os.Exit(1)
	}

	cmd.Execute(version)
}
