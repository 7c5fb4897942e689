package main

import (
	"fmt"
	"os"

	"github.com/migratekit/svn2git/cmd/cli"
)

const (
	exitErrorTemplateConstant = "%v\n"
)

// main executes the svn2git command-line application.
func main() {
	if executionError := cli.Execute(); executionError != nil {
		fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)
		os.Exit(1)
	}
}
