// Init command for the seriesmint CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/seriesmint/pkg/types"
)

var (
	initSpec      string
	initName      string
	initSymbol    string
	initIcon      string
	initBaseURI   string
	initReference string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the contract, recording the caller as administrator",
	RunE: func(cmd *cobra.Command, args []string) error {
		call, err := callContext()
		if err != nil {
			return err
		}

		md := types.ContractMetadata{
			Spec:      initSpec,
			Name:      initName,
			Symbol:    initSymbol,
			Icon:      initIcon,
			BaseURI:   initBaseURI,
			Reference: initReference,
		}
		if err := ledger.Init(call, md); err != nil {
			return err
		}

		fmt.Printf("initialized as %s\n", call.Caller)
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initSpec, "spec", "nft-1.0.0", "metadata spec version")
	initCmd.Flags().StringVar(&initName, "name", "", "contract name (required)")
	initCmd.Flags().StringVar(&initSymbol, "symbol", "", "contract symbol (required)")
	initCmd.Flags().StringVar(&initIcon, "icon", "", "contract icon, data URL")
	initCmd.Flags().StringVar(&initBaseURI, "base-uri", "", "gateway base for media references")
	initCmd.Flags().StringVar(&initReference, "reference", "", "off-chain metadata reference")
	initCmd.MarkFlagRequired("name")
	initCmd.MarkFlagRequired("symbol")
}
