package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/altsoph/community-loglike/pkg/community"
)

var estimateModel string

var estimateCmd = &cobra.Command{
	Use:   "estimate <graph-file> <partition-file>",
	Short: "Estimate a model's free parameter for a fixed partition and report its log-likelihood",
	Args:  cobra.ExactArgs(2),
	RunE:  runEstimate,
}

func init() {
	estimateCmd.Flags().StringVar(&estimateModel, "model", "dcppm", "objective: ppm, dcppm, ilfr, ilfrs")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	g, err := loadGraph(args[0])
	if err != nil {
		return err
	}
	partition, err := loadPartition(args[1])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	switch estimateModel {
	case "ilfr", "ilfrs":
		mu, err := community.EstimateMu(g, partition, nil)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "mu\t% 0.6f\n", mu)
		if estimateModel == "ilfr" {
			ll, err := community.IlfrMuLogLikelihood(g, partition, &mu)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "ilfr_mu_loglike\t% 0.6f\n", ll)
		}
		loglike, err := community.ModelLogLikelihood(g, partition, estimateModel, map[string]float64{"mu": mu})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "loglike\t% 0.6f\n", loglike)
	default:
		gamma, err := community.EstimateGamma(g, partition, estimateModel, nil)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "gamma\t% 0.6f\n", gamma)
		loglike, err := community.ModelLogLikelihood(g, partition, estimateModel, map[string]float64{"gamma": gamma})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "loglike\t% 0.6f\n", loglike)
	}
	return nil
}
