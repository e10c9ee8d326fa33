package worksheet

import (
	"errors"
	"fmt"
	"math"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cast"

	"chemcalc/calculator"
	"chemcalc/model"
)

// 计算器页面的输入状态：逐项修改输入，按需计算，重置为预设工况
// 每个连接一份，不跨 goroutine 共享

var (
	ErrUnknownField  = errors.New("unknown field")
	ErrUnknownPreset = errors.New("unknown preset")
)

type Worksheet struct {
	c calculator.Calculator

	pump  model.PumpInputs
	yield model.YieldInputs

	lastPump  *model.PumpResults
	lastYield *model.YieldResults
}

func New(c calculator.Calculator) *Worksheet {
	w := &Worksheet{
		c:     c,
		yield: calculator.DefaultYieldInputs(),
	}
	if p, ok := c.Preset(calculator.DefaultPumpPreset); ok {
		w.pump = p.Pump
	}
	return w
}

// 无法解析的输入按 0 处理
func coerce(value string) float64 {
	v := cast.ToFloat64(strings.TrimSpace(value))
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// 个数取整数部分，超出范围的值交给校验拒绝
func count(v float64) int {
	if v >= math.MaxInt32 || v <= math.MinInt32 {
		return -1
	}
	return int(v)
}

func (w *Worksheet) SetPumpField(name, value string) error {
	v := coerce(value)
	switch name {
	case "flowRate":
		w.pump.FlowRate = v
	case "density":
		w.pump.Density = v
	case "viscosity":
		w.pump.Viscosity = v
	case "pipeDiameter":
		w.pump.PipeDiameter = v
	case "pipeLength":
		w.pump.PipeLength = v
	case "elevation":
		w.pump.Elevation = v
	case "roughness":
		w.pump.Roughness = v
	case "elbows":
		w.pump.Elbows = count(v)
	case "valves":
		w.pump.Valves = count(v)
	case "efficiency":
		w.pump.Efficiency = v
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	log.WithFields(log.Fields{
		"field": name,
		"value": v,
	}).Info("设置泵送参数")
	return nil
}

func (w *Worksheet) SetYieldField(name, value string) error {
	v := coerce(value)
	switch name {
	case "anilineMass":
		w.yield.AnilineMass = v
	case "aceticAnhydrideMass":
		w.yield.AceticAnhydrideMass = v
	case "actualProductMass":
		w.yield.ActualProductMass = v
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	log.WithFields(log.Fields{
		"field": name,
		"value": v,
	}).Info("设置投料参数")
	return nil
}

func (w *Worksheet) SetPumpInputs(in model.PumpInputs) {
	w.pump = in
}

func (w *Worksheet) SetYieldInputs(in model.YieldInputs) {
	w.yield = in
}

// 载入预设工况并清除上次结果，name 为空时使用 P-101
func (w *Worksheet) ResetPump(name string) error {
	if name == "" {
		name = calculator.DefaultPumpPreset
	}
	p, ok := w.c.Preset(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	w.pump = p.Pump
	w.lastPump = nil
	log.WithField("preset", name).Info("重置泵送参数")
	return nil
}

func (w *Worksheet) CalculatePump() (model.PumpResults, error) {
	res, err := w.c.Pump(w.pump)
	if err != nil {
		w.lastPump = nil
		return res, err
	}
	w.lastPump = &res
	return res, nil
}

func (w *Worksheet) CalculateYield() (model.YieldResults, error) {
	res, err := w.c.Yield(w.yield)
	if err != nil {
		w.lastYield = nil
		return res, err
	}
	w.lastYield = &res
	return res, nil
}

func (w *Worksheet) PumpInputs() model.PumpInputs {
	return w.pump
}

func (w *Worksheet) YieldInputs() model.YieldInputs {
	return w.yield
}

// 尚未计算或上次计算失败时返回 false
func (w *Worksheet) LastPump() (model.PumpResults, bool) {
	if w.lastPump == nil {
		return model.PumpResults{}, false
	}
	return *w.lastPump, true
}

func (w *Worksheet) LastYield() (model.YieldResults, bool) {
	if w.lastYield == nil {
		return model.YieldResults{}, false
	}
	return *w.lastYield, true
}
