// Token enumeration commands for the seriesmint CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/seriesmint/pkg/types"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Inspect minted tokens",
}

var tokenGetCmd = &cobra.Command{
	Use:   "get <token-id>",
	Short: "Show one token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tok, err := ledger.NFTToken(args[0])
		if err != nil {
			return err
		}
		return printRecord(tok)
	},
}

var (
	tokenListOwner  string
	tokenListSeries uint64
	tokenListOffset int
	tokenListLimit  int
)

var tokenListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tokens by owner or by series",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch {
		case tokenListOwner != "" && tokenListSeries != 0:
			return fmt.Errorf("--owner and --series are mutually exclusive")
		case tokenListOwner != "":
			toks, err := ledger.NFTTokensForOwner(types.AccountID(tokenListOwner), tokenListOffset, tokenListLimit)
			if err != nil {
				return err
			}
			return printRecord(toks)
		case tokenListSeries != 0:
			toks, err := ledger.NFTTokensForSeries(tokenListSeries, tokenListOffset, tokenListLimit)
			if err != nil {
				return err
			}
			return printRecord(toks)
		default:
			return fmt.Errorf("one of --owner or --series is required")
		}
	},
}

var (
	supplyOwner  string
	supplySeries uint64
)

var supplyCmd = &cobra.Command{
	Use:   "supply",
	Short: "Count minted tokens, overall or per owner/series",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			n   uint64
			err error
		)
		switch {
		case supplyOwner != "" && supplySeries != 0:
			return fmt.Errorf("--owner and --series are mutually exclusive")
		case supplyOwner != "":
			n, err = ledger.NFTSupplyForOwner(types.AccountID(supplyOwner))
		case supplySeries != 0:
			n, err = ledger.NFTSupplyForSeries(supplySeries)
		default:
			n, err = ledger.NFTTotalSupply()
		}
		if err != nil {
			return err
		}
		fmt.Println(n)
		return nil
	},
}

func init() {
	tokenListCmd.Flags().StringVar(&tokenListOwner, "owner", "", "list tokens held by this account")
	tokenListCmd.Flags().Uint64Var(&tokenListSeries, "series", 0, "list tokens minted from this series")
	tokenListCmd.Flags().IntVar(&tokenListOffset, "offset", 0, "skip the first N tokens")
	tokenListCmd.Flags().IntVar(&tokenListLimit, "limit", 0, "maximum tokens to list (0 = all)")

	supplyCmd.Flags().StringVar(&supplyOwner, "owner", "", "count tokens held by this account")
	supplyCmd.Flags().Uint64Var(&supplySeries, "series", 0, "count tokens minted from this series")

	tokenCmd.AddCommand(tokenGetCmd)
	tokenCmd.AddCommand(tokenListCmd)
}
