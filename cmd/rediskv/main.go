// Command rediskv is a small operational CLI for poking a Redis-shaped
// store through the rediskv facade: scalar get/set/delete, list and hash
// operations, TTL inspection and pattern purges.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
