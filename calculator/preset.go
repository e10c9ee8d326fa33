package calculator

import (
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"

	"chemcalc/model"
)

// 默认泵送工况
const DefaultPumpPreset = "P-101"

// P-101：苯胺储罐 T-101 至间歇反应釜 R-101
var presetP101 = model.Preset{
	Name:        DefaultPumpPreset,
	Description: "Aniline storage T-101 to batch reactor R-101",
	Pump: model.PumpInputs{
		FlowRate:     18.726,
		Density:      1022,
		Viscosity:    3.7,
		PipeDiameter: 77.9, // 3 inch Sch 40
		PipeLength:   25,
		Elevation:    4,
		Roughness:    0.046, // 商用钢管
		Elbows:       3,
		Valves:       1,
		Efficiency:   60,
	},
}

// 收率计算的默认投料
func DefaultYieldInputs() model.YieldInputs {
	return model.YieldInputs{
		AnilineMass:         100,
		AceticAnhydrideMass: 120,
		ActualProductMass:   130,
	}
}

// 预设工况库，加载完成后只读
type PresetLibrary struct {
	names   []string
	presets map[string]model.Preset
}

func NewPresetLibrary() *PresetLibrary {
	l := &PresetLibrary{presets: make(map[string]model.Preset)}
	l.add(presetP101)
	return l
}

type presetFile struct {
	Pump []presetEntry `toml:"pump"`
}

type presetEntry struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
	model.PumpInputs
}

// 内置工况加上 toml 文件中的 [[pump]] 工况，文件不存在时只有内置工况
func LoadPresetLibrary(path string) (*PresetLibrary, error) {
	l := NewPresetLibrary()
	if path == "" {
		return l, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.WithField("file", path).Warn("预设工况文件不存在，仅使用内置工况")
		return l, nil
	}

	var file presetFile
	md, err := toml.DecodeFile(path, &file)
	if err != nil {
		return nil, fmt.Errorf("preset file %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.WithFields(log.Fields{
			"file": path,
			"key":  key.String(),
		}).Warn("预设工况文件中存在未识别的字段")
	}

	for _, e := range file.Pump {
		if e.Name == "" {
			return nil, fmt.Errorf("preset file %s: pump preset without name", path)
		}
		if _, ok := l.presets[e.Name]; ok {
			return nil, fmt.Errorf("preset file %s: duplicate preset %s", path, e.Name)
		}
		if err := validatePump(e.PumpInputs); err != nil {
			return nil, fmt.Errorf("preset %s: %w", e.Name, err)
		}
		l.add(model.Preset{Name: e.Name, Description: e.Description, Pump: e.PumpInputs})
	}
	log.WithFields(log.Fields{
		"file":    path,
		"presets": len(l.names),
	}).Info("预设工况加载完成")
	return l, nil
}

func (l *PresetLibrary) add(p model.Preset) {
	l.names = append(l.names, p.Name)
	l.presets[p.Name] = p
}

func (l *PresetLibrary) Get(name string) (model.Preset, bool) {
	p, ok := l.presets[name]
	return p, ok
}

// 内置工况在前，其余按名称排序
func (l *PresetLibrary) List() []model.Preset {
	names := append([]string(nil), l.names[1:]...)
	sort.Strings(names)
	res := []model.Preset{l.presets[l.names[0]]}
	for _, name := range names {
		res = append(res, l.presets[name])
	}
	return res
}
