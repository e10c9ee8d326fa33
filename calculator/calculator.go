package calculator

import (
	log "github.com/sirupsen/logrus"

	"chemcalc/model"
)

// calculator 的接口定义

type Calculator interface {
	// 泵送管路水力计算
	Pump(in model.PumpInputs) (model.PumpResults, error)

	// 收率与化学计量
	Yield(in model.YieldInputs) (model.YieldResults, error)

	// 预设工况
	Preset(name string) (model.Preset, bool)
	Presets() []model.Preset
}

// 无状态，可并发调用
type calculator struct {
	presets *PresetLibrary
}

func NewCalculator(presets *PresetLibrary) Calculator {
	if presets == nil {
		presets = NewPresetLibrary()
	}
	return &calculator{presets: presets}
}

func (c *calculator) Pump(in model.PumpInputs) (model.PumpResults, error) {
	res, err := SolvePumpHydraulics(in)
	if err != nil {
		log.WithField("err", err).Warn("泵送参数不合法")
		return res, err
	}
	log.WithFields(log.Fields{
		"velocity":   res.Velocity,
		"reynolds":   res.Reynolds,
		"totalHead":  res.TotalHead,
		"brakePower": res.BrakePower,
	}).Debug("泵送水力计算完成")
	return res, nil
}

func (c *calculator) Yield(in model.YieldInputs) (model.YieldResults, error) {
	res, err := SolveYieldStoichiometry(in)
	if err != nil {
		log.WithField("err", err).Warn("投料参数不合法")
		return res, err
	}
	log.WithFields(log.Fields{
		"limitingReactant": res.LimitingReactant,
		"theoreticalYield": res.TheoreticalYield,
		"percentageYield":  res.PercentageYield,
	}).Debug("收率计算完成")
	return res, nil
}

func (c *calculator) Preset(name string) (model.Preset, bool) {
	return c.presets.Get(name)
}

func (c *calculator) Presets() []model.Preset {
	return c.presets.List()
}
