// Command contract-mapper suggests, explains, reviews and validates field
// mappings between data contracts, and serves the same operations over HTTP.
package main

import "contract-mapper/internal/cli"

func main() {
	cli.Execute()
}
