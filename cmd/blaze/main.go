// Command blaze is the Blaze scripting language front end.
package main

import (
	"os"

	"github.com/you-not-fish/blaze/cmd/blaze/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
