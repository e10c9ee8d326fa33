package calculator

import (
	"math"

	"chemcalc/model"
)

// 泵送管路水力计算的中间量，未修约
type pumpState struct {
	flow           float64 // m3/s
	diameter       float64 // m
	velocity       float64 // m/s
	reynolds       float64
	frictionFactor float64
	velocityHead   float64 // m
	majorHeadLoss  float64 // m，沿程
	minorHeadLoss  float64 // m，局部
	headLoss       float64 // m
	totalHead      float64 // m
	hydraulicPower float64 // kW
	brakePower     float64 // kW
	pressureDrop   float64 // kPa
}

// 泵送管路水力计算：流速、雷诺数、摩擦系数、压头损失、总扬程、轴功率、压降
func SolvePumpHydraulics(in model.PumpInputs) (model.PumpResults, error) {
	if err := validatePump(in); err != nil {
		return model.PumpResults{}, err
	}
	s := pumpHydraulics(in)
	return model.PumpResults{
		Velocity:       toFixed(s.velocity, model.VelocityDigits),
		Reynolds:       toFixed(s.reynolds, model.ReynoldsDigits),
		FrictionFactor: toFixed(s.frictionFactor, model.FrictionFactorDigits),
		HeadLoss:       toFixed(s.headLoss, model.HeadDigits),
		TotalHead:      toFixed(s.totalHead, model.HeadDigits),
		HydraulicPower: toFixed(s.hydraulicPower, model.PowerDigits),
		BrakePower:     toFixed(s.brakePower, model.PowerDigits),
		PressureDrop:   toFixed(s.pressureDrop, model.PressureDigits),
	}, nil
}

func pumpHydraulics(in model.PumpInputs) pumpState {
	var s pumpState

	// 1. 单位换算
	s.flow = in.FlowRate / 3600
	viscosity := in.Viscosity / 1000 // Pa.s
	s.diameter = in.PipeDiameter / 1000
	roughness := in.Roughness / 1000 // m

	// 2. 流速
	area := math.Pi * math.Pow(s.diameter/2, 2)
	s.velocity = s.flow / area

	// 3. 雷诺数
	s.reynolds = (in.Density * s.velocity * s.diameter) / viscosity

	// 4. 摩擦系数
	s.frictionFactor = frictionFactor(s.reynolds, roughness, s.diameter)

	// 5. Darcy-Weisbach 压头损失
	k := model.KElbow*float64(in.Elbows) + model.KValve*float64(in.Valves) + model.KEntrance + model.KExit
	s.velocityHead = math.Pow(s.velocity, 2) / (2 * model.Gravity)
	s.majorHeadLoss = s.frictionFactor * (in.PipeLength / s.diameter) * s.velocityHead
	s.minorHeadLoss = k * s.velocityHead
	s.headLoss = s.majorHeadLoss + s.minorHeadLoss

	s.totalHead = in.Elevation + s.headLoss

	// 6. 功率，P = rho * g * Q * H
	s.hydraulicPower = in.Density * model.Gravity * s.flow * s.totalHead / 1000
	s.brakePower = s.hydraulicPower / (in.Efficiency / 100)

	// 7. 压降，只计动压头损失
	s.pressureDrop = in.Density * model.Gravity * s.headLoss / 1000
	return s
}

// Re < 2000 按层流 64/Re，否则用 Swamee-Jain 显式近似 Colebrook-White
// 两段在 Re = 2000 处不连续
func frictionFactor(reynolds, roughness, diameter float64) float64 {
	if reynolds < model.LaminarReynolds {
		return 64 / reynolds
	}
	a := roughness / (3.7 * diameter)
	b := 5.74 / math.Pow(reynolds, 0.9)
	return 0.25 / math.Pow(math.Log10(a+b), 2)
}
