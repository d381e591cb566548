// Command wsp generates a random point set and thins it with the WSP
// space-filling algorithm, writing the surviving points as CSV.
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd, err := newRootCommand()
	if err == nil {
		err = cmd.Execute()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
