// Allow-list commands for the seriesmint CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/seriesmint/pkg/types"
)

var allowedCmd = &cobra.Command{
	Use:   "allowed",
	Short: "Manage the contract-wide allowed-transfer list",
}

var allowedSetCmd = &cobra.Command{
	Use:   "set [account]...",
	Short: "Replace the allow-list wholesale (administrator only)",
	Long: `Replace the allowed-transfer list with the given accounts. With no
arguments the list becomes empty, freezing every non-transferable token
with its current owner.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		call, err := callContext()
		if err != nil {
			return err
		}

		addrs := make([]types.AccountID, len(args))
		for i, a := range args {
			addrs[i] = types.AccountID(a)
		}

		refund, err := ledger.SetAllowedAddresses(call, addrs)
		if err != nil {
			return err
		}

		fmt.Printf("allow-list replaced, %d entries\n", len(addrs))
		printRefund(refund)
		return nil
	},
}

var allowedListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the allowed-transfer list",
	RunE: func(cmd *cobra.Command, args []string) error {
		addrs, err := ledger.AllowedAddresses()
		if err != nil {
			return err
		}
		return printRecord(addrs)
	},
}

var allowedCheckCmd = &cobra.Command{
	Use:   "check <token-id> <destination>",
	Short: "Check whether a transfer would pass the policy guard",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ok, err := ledger.IsTransferAllowed(args[0], types.AccountID(args[1]))
		if err != nil {
			return err
		}
		if ok {
			fmt.Printf("%s -> %s: allowed\n", args[0], args[1])
		} else {
			fmt.Printf("%s -> %s: forbidden\n", args[0], args[1])
		}
		return nil
	},
}

func init() {
	allowedCmd.AddCommand(allowedSetCmd)
	allowedCmd.AddCommand(allowedListCmd)
	allowedCmd.AddCommand(allowedCheckCmd)
}
