package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/altsoph/community-loglike/pkg/community"
)

var compareCmd = &cobra.Command{
	Use:   "compare <partition-a> <partition-b>",
	Short: "Compare two partition files with Rand/Jaccard/NMI",
	Args:  cobra.ExactArgs(2),
	RunE:  runCompare,
}

func runCompare(cmd *cobra.Command, args []string) error {
	a, err := loadPartition(args[0])
	if err != nil {
		return err
	}
	b, err := loadPartition(args[1])
	if err != nil {
		return err
	}

	res, err := community.ComparePartitions(a, b)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "rand\t% 0.6f\tjaccard\t% 0.6f\tnmi\t% 0.6f\n", res.Rand, res.Jaccard, res.NMI)
	return nil
}
