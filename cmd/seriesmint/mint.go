// Mint command for the seriesmint CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/seriesmint/pkg/types"
)

var mintCmd = &cobra.Command{
	Use:   "mint <series-id> <receiver>",
	Short: "Mint the next token of a series (series owner only)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		seriesID, err := parseSeriesID(args[0])
		if err != nil {
			return err
		}
		call, err := callContext()
		if err != nil {
			return err
		}

		tokenID, refund, err := ledger.NFTMint(call, seriesID, types.AccountID(args[1]))
		if err != nil {
			return err
		}

		fmt.Printf("minted %s to %s\n", tokenID, args[1])
		printRefund(refund)
		return nil
	},
}
