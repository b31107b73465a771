// Receipts command for the seriesmint CLI.
package main

import (
	"github.com/spf13/cobra"
)

var receiptsLimit int

var receiptsCmd = &cobra.Command{
	Use:   "receipts",
	Short: "Show the call journal, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		rs, err := ledger.Receipts(receiptsLimit)
		if err != nil {
			return err
		}
		return printRecord(rs)
	},
}

func init() {
	receiptsCmd.Flags().IntVar(&receiptsLimit, "limit", 20, "maximum receipts to show (0 = all)")
}
