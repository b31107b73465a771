// Contract metadata commands for the seriesmint CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/seriesmint/pkg/types"
)

var metadataCmd = &cobra.Command{
	Use:   "metadata",
	Short: "Show the contract metadata",
	RunE: func(cmd *cobra.Command, args []string) error {
		md, err := ledger.Metadata()
		if err != nil {
			return err
		}
		return printRecord(md)
	},
}

var (
	metaSetSpec      string
	metaSetName      string
	metaSetSymbol    string
	metaSetIcon      string
	metaSetBaseURI   string
	metaSetReference string
)

var metadataSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Replace the contract metadata (administrator only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		call, err := callContext()
		if err != nil {
			return err
		}

		md := types.ContractMetadata{
			Spec:      metaSetSpec,
			Name:      metaSetName,
			Symbol:    metaSetSymbol,
			Icon:      metaSetIcon,
			BaseURI:   metaSetBaseURI,
			Reference: metaSetReference,
		}
		if err := ledger.UpdateContractMetadata(call, md); err != nil {
			return err
		}
		return printRecord(md)
	},
}

func init() {
	metadataSetCmd.Flags().StringVar(&metaSetSpec, "spec", "nft-1.0.0", "metadata spec version")
	metadataSetCmd.Flags().StringVar(&metaSetName, "name", "", "contract name (required)")
	metadataSetCmd.Flags().StringVar(&metaSetSymbol, "symbol", "", "contract symbol (required)")
	metadataSetCmd.Flags().StringVar(&metaSetIcon, "icon", "", "contract icon, data URL")
	metadataSetCmd.Flags().StringVar(&metaSetBaseURI, "base-uri", "", "gateway base for media references")
	metadataSetCmd.Flags().StringVar(&metaSetReference, "reference", "", "off-chain metadata reference")
	metadataSetCmd.MarkFlagRequired("name")
	metadataSetCmd.MarkFlagRequired("symbol")

	metadataCmd.AddCommand(metadataSetCmd)
}
