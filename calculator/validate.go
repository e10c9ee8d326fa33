package calculator

import (
	"errors"
	"fmt"
	"math"

	"chemcalc/model"
)

// 输入超出定义域
var ErrInvalidInput = errors.New("invalid input")

type InputError struct {
	Field string
	Value float64
	Rule  string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s = %v, must be %s", ErrInvalidInput, e.Field, e.Value, e.Rule)
}

func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func positive(x float64) bool {
	return finite(x) && x > 0
}

func nonNegative(x float64) bool {
	return finite(x) && x >= 0
}

// 先于计算执行，保证结果不会出现 NaN、Inf
func validatePump(in model.PumpInputs) error {
	switch {
	case !positive(in.FlowRate):
		return &InputError{"flowRate", in.FlowRate, "> 0"}
	case !positive(in.Density):
		return &InputError{"density", in.Density, "> 0"}
	case !positive(in.Viscosity):
		return &InputError{"viscosity", in.Viscosity, "> 0"}
	case !positive(in.PipeDiameter):
		return &InputError{"pipeDiameter", in.PipeDiameter, "> 0"}
	case !nonNegative(in.PipeLength):
		return &InputError{"pipeLength", in.PipeLength, ">= 0"}
	case !finite(in.Elevation):
		return &InputError{"elevation", in.Elevation, "finite"}
	case !nonNegative(in.Roughness):
		return &InputError{"roughness", in.Roughness, ">= 0"}
	case in.Elbows < 0:
		return &InputError{"elbows", float64(in.Elbows), ">= 0"}
	case in.Valves < 0:
		return &InputError{"valves", float64(in.Valves), ">= 0"}
	case !positive(in.Efficiency) || in.Efficiency > 100:
		return &InputError{"efficiency", in.Efficiency, "in (0, 100]"}
	}
	return nil
}

func validateYield(in model.YieldInputs) error {
	switch {
	case !nonNegative(in.AnilineMass):
		return &InputError{"anilineMass", in.AnilineMass, ">= 0"}
	case !nonNegative(in.AceticAnhydrideMass):
		return &InputError{"aceticAnhydrideMass", in.AceticAnhydrideMass, ">= 0"}
	case !nonNegative(in.ActualProductMass):
		return &InputError{"actualProductMass", in.ActualProductMass, ">= 0"}
	}
	return nil
}
