package calculator

import (
	"chemcalc/model"
	"chemcalc/species"
)

// 苯胺与乙酸酐按 1:1 生成乙酰苯胺：限量反应物、理论产量、收率、原子经济性
func SolveYieldStoichiometry(in model.YieldInputs) (model.YieldResults, error) {
	if err := validateYield(in); err != nil {
		return model.YieldResults{}, err
	}
	r := species.Acetylation
	aniline, anhydride := r.Reactants[0], r.Reactants[1]

	molesAniline := aniline.Moles(in.AnilineMass)
	molesAnhydride := anhydride.Moles(in.AceticAnhydrideMass)

	// 严格小于，物质的量相等时取乙酸酐
	limiting, theoreticalMoles := anhydride, molesAnhydride
	if molesAniline < molesAnhydride {
		limiting, theoreticalMoles = aniline, molesAniline
	}

	theoreticalYield := r.Product.Mass(theoreticalMoles)
	percentageYield := 0.0
	if theoreticalYield > 0 {
		percentageYield = (in.ActualProductMass / theoreticalYield) * 100
	}

	return model.YieldResults{
		LimitingReactant: limiting.Name,
		TheoreticalYield: toFixed(theoreticalYield, model.YieldDigits),
		PercentageYield:  toFixed(percentageYield, model.YieldDigits),
		AtomEconomy:      toFixed(r.AtomEconomy(), model.YieldDigits),
	}, nil
}
