package cmd

import (
	"github.com/spf13/cobra"

	"chemcalc/calculator"
)

var yieldIn = calculator.DefaultYieldInputs()

var yieldCmd = &cobra.Command{
	Use:   "yield",
	Short: "Compute limiting reactant, theoretical yield and atom economy.",
	Long: `yield computes the acetanilide batch result for aniline + acetic anhydride
(1:1). Masses are in kg.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := calc.Yield(yieldIn)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), res)
	},
}

func init() {
	yieldCmd.Flags().Float64Var(&yieldIn.AnilineMass, "aniline", yieldIn.AnilineMass, "aniline charged, kg")
	yieldCmd.Flags().Float64Var(&yieldIn.AceticAnhydrideMass, "anhydride", yieldIn.AceticAnhydrideMass, "acetic anhydride charged, kg")
	yieldCmd.Flags().Float64Var(&yieldIn.ActualProductMass, "actual", yieldIn.ActualProductMass, "acetanilide recovered, kg")
}
