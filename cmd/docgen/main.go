// Command docgen renders and validates documents from the command line using
// the same descriptors as the HTTP API.
//
// Usage:
//
//	docgen types
//	docgen sample receipt -o receipt.pdf
//	docgen sample receipt --json > receipt.json
//	docgen validate receipt receipt.json
//	docgen render receipt receipt.json -o receipt.pdf
package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
