package main

import (
	"fmt"
	"os"

	"github.com/salmon302/DSATrain-sub001/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
