// Series commands for the seriesmint CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/seriesmint/pkg/types"
)

var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "Manage token series",
}

var (
	seriesMetaTitle       string
	seriesMetaDescription string
	seriesMetaMedia       string
	seriesMetaReference   string
	seriesMetaExtra       []string

	seriesCreateNonTransferable bool
	seriesListLimit             int
)

// seriesMetadataFromFlags assembles the shared metadata flag set.
func seriesMetadataFromFlags() (types.TokenMetadata, error) {
	extra, err := parseExtra(seriesMetaExtra)
	if err != nil {
		return types.TokenMetadata{}, err
	}
	return types.TokenMetadata{
		Title:       seriesMetaTitle,
		Description: seriesMetaDescription,
		Media:       seriesMetaMedia,
		Reference:   seriesMetaReference,
		Extra:       extra,
	}, nil
}

func addSeriesMetadataFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&seriesMetaTitle, "title", "", "series title (required)")
	cmd.Flags().StringVar(&seriesMetaDescription, "description", "", "series description")
	cmd.Flags().StringVar(&seriesMetaMedia, "media", "", "media URL")
	cmd.Flags().StringVar(&seriesMetaReference, "reference", "", "off-chain metadata reference")
	cmd.Flags().StringArrayVar(&seriesMetaExtra, "extra", nil, "extra metadata field, key=value (repeatable)")
	cmd.MarkFlagRequired("title")
}

var seriesCreateCmd = &cobra.Command{
	Use:   "create <id>",
	Short: "Create a new series owned by the caller",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseSeriesID(args[0])
		if err != nil {
			return err
		}
		call, err := callContext()
		if err != nil {
			return err
		}
		md, err := seriesMetadataFromFlags()
		if err != nil {
			return err
		}

		refund, err := ledger.CreateSeries(call, id, md, seriesCreateNonTransferable)
		if err != nil {
			return err
		}

		fmt.Printf("created series %d\n", id)
		printRefund(refund)
		return nil
	},
}

var seriesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one series",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseSeriesID(args[0])
		if err != nil {
			return err
		}
		s, err := ledger.GetSeries(id)
		if err != nil {
			return err
		}
		return printRecord(s)
	},
}

var seriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List series in id order",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, err := ledger.ListSeries(seriesListLimit)
		if err != nil {
			return err
		}
		return printRecord(all)
	},
}

var seriesSetMetadataCmd = &cobra.Command{
	Use:   "set-metadata <id>",
	Short: "Replace a series' metadata (series owner only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseSeriesID(args[0])
		if err != nil {
			return err
		}
		call, err := callContext()
		if err != nil {
			return err
		}
		md, err := seriesMetadataFromFlags()
		if err != nil {
			return err
		}

		if err := ledger.UpdateSeriesMetadata(call, id, md); err != nil {
			return err
		}
		fmt.Printf("updated series %d\n", id)
		return nil
	},
}

var seriesSetOwnerCmd = &cobra.Command{
	Use:   "set-owner <id> <new-owner>",
	Short: "Hand the series mint right to another account (series owner only)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseSeriesID(args[0])
		if err != nil {
			return err
		}
		call, err := callContext()
		if err != nil {
			return err
		}

		if err := ledger.UpdateSeriesOwner(call, id, types.AccountID(args[1])); err != nil {
			return err
		}
		fmt.Printf("series %d now owned by %s\n", id, args[1])
		return nil
	},
}

func init() {
	addSeriesMetadataFlags(seriesCreateCmd)
	seriesCreateCmd.Flags().BoolVar(&seriesCreateNonTransferable, "non-transferable", false, "tokens move only to allow-listed destinations")

	addSeriesMetadataFlags(seriesSetMetadataCmd)

	seriesListCmd.Flags().IntVar(&seriesListLimit, "limit", 0, "maximum series to list (0 = all)")

	seriesCmd.AddCommand(seriesCreateCmd)
	seriesCmd.AddCommand(seriesGetCmd)
	seriesCmd.AddCommand(seriesListCmd)
	seriesCmd.AddCommand(seriesSetMetadataCmd)
	seriesCmd.AddCommand(seriesSetOwnerCmd)
}
