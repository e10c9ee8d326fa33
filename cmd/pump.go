package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"chemcalc/calculator"
	"chemcalc/model"
)

var pumpPreset string

var pumpCmd = &cobra.Command{
	Use:   "pump",
	Short: "Size a pump line.",
	Long: `pump computes velocity, Reynolds number, friction factor, head loss, total
head, hydraulic and brake power and pressure drop for one pump line. Inputs
start from --preset and are overridden by any flag that is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, ok := calc.Preset(pumpPreset)
		if !ok {
			return fmt.Errorf("unknown preset %s", pumpPreset)
		}
		in := p.Pump
		if err := pumpOverrides(cmd.Flags(), &in); err != nil {
			return err
		}
		res, err := calc.Pump(in)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), res)
	},
}

var pumpFloatFlags = []struct {
	name, usage string
	field       func(in *model.PumpInputs) *float64
}{
	{"flow-rate", "volumetric flow rate, m3/h", func(in *model.PumpInputs) *float64 { return &in.FlowRate }},
	{"density", "fluid density, kg/m3", func(in *model.PumpInputs) *float64 { return &in.Density }},
	{"viscosity", "dynamic viscosity, cP", func(in *model.PumpInputs) *float64 { return &in.Viscosity }},
	{"pipe-diameter", "pipe inner diameter, mm", func(in *model.PumpInputs) *float64 { return &in.PipeDiameter }},
	{"pipe-length", "straight pipe length, m", func(in *model.PumpInputs) *float64 { return &in.PipeLength }},
	{"elevation", "static lift, m (negative for a downhill run)", func(in *model.PumpInputs) *float64 { return &in.Elevation }},
	{"roughness", "absolute pipe roughness, mm", func(in *model.PumpInputs) *float64 { return &in.Roughness }},
	{"efficiency", "pump efficiency, %", func(in *model.PumpInputs) *float64 { return &in.Efficiency }},
}

var pumpIntFlags = []struct {
	name, usage string
	field       func(in *model.PumpInputs) *int
}{
	{"elbows", "number of 90 degree elbows", func(in *model.PumpInputs) *int { return &in.Elbows }},
	{"valves", "number of gate valves", func(in *model.PumpInputs) *int { return &in.Valves }},
}

func pumpOverrides(fs *pflag.FlagSet, in *model.PumpInputs) error {
	for _, f := range pumpFloatFlags {
		if !fs.Changed(f.name) {
			continue
		}
		v, err := fs.GetFloat64(f.name)
		if err != nil {
			return err
		}
		*f.field(in) = v
	}
	for _, f := range pumpIntFlags {
		if !fs.Changed(f.name) {
			continue
		}
		v, err := fs.GetInt(f.name)
		if err != nil {
			return err
		}
		*f.field(in) = v
	}
	return nil
}

func init() {
	pumpCmd.Flags().StringVar(&pumpPreset, "preset", calculator.DefaultPumpPreset, "preset the inputs start from")
	for _, f := range pumpFloatFlags {
		pumpCmd.Flags().Float64(f.name, 0, f.usage)
	}
	for _, f := range pumpIntFlags {
		pumpCmd.Flags().Int(f.name, 0, f.usage)
	}
}
