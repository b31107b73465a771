// Transfer command for the seriesmint CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/seriesmint/pkg/types"
)

var transferCmd = &cobra.Command{
	Use:   "transfer <token-id> <receiver>",
	Short: "Transfer a token to another account (token owner only)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		call, err := callContext()
		if err != nil {
			return err
		}

		if err := ledger.NFTTransfer(call, args[0], types.AccountID(args[1])); err != nil {
			return err
		}

		fmt.Printf("transferred %s to %s\n", args[0], args[1])
		return nil
	},
}
