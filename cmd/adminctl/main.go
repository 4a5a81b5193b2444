// Command adminctl is the operator CLI for triggering batch ranking jobs
// manually and for running the server itself.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "adminctl",
		Short: "Operator CLI for the product ranking service",
	}
	root.AddCommand(newTriggerCmd())
	root.AddCommand(newServeCmd())
	return root
}
