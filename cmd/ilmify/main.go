// Command ilmify is the offline knowledge engine of the Ilmify school
// portal. It indexes the downloaded resources on the hotspot device and
// answers questions from them without an internet connection.
package main

import (
	"os"

	"github.com/ilmify/ilmify-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
