package main

import (
	"fmt"
	"os"

	"gitlab.ozon.dev/pupkingeorgij/checkout/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
