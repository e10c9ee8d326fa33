package model

// 泵送管路计算输入
type PumpInputs struct {
	FlowRate     float64 `json:"flowRate" toml:"flowRate"`         // 体积流量 m3/h
	Density      float64 `json:"density" toml:"density"`           // 密度 kg/m3
	Viscosity    float64 `json:"viscosity" toml:"viscosity"`       // 粘度 cP
	PipeDiameter float64 `json:"pipeDiameter" toml:"pipeDiameter"` // 管内径 mm
	PipeLength   float64 `json:"pipeLength" toml:"pipeLength"`     // 管长 m
	Elevation    float64 `json:"elevation" toml:"elevation"`       // 提升高度 m，可为负
	Roughness    float64 `json:"roughness" toml:"roughness"`       // 绝对粗糙度 mm
	Elbows       int     `json:"elbows" toml:"elbows"`             // 90°弯头个数
	Valves       int     `json:"valves" toml:"valves"`             // 闸阀个数
	Efficiency   float64 `json:"efficiency" toml:"efficiency"`     // 泵效率 %
}

// 泵送管路计算结果，各字段已按固定小数位修约
type PumpResults struct {
	Velocity       float64 `json:"velocity"`       // m/s
	Reynolds       float64 `json:"reynolds"`       //
	FrictionFactor float64 `json:"frictionFactor"` //
	HeadLoss       float64 `json:"headLoss"`       // m
	TotalHead      float64 `json:"totalHead"`      // m
	HydraulicPower float64 `json:"hydraulicPower"` // kW
	BrakePower     float64 `json:"brakePower"`     // kW
	PressureDrop   float64 `json:"pressureDrop"`   // kPa
}

// 收率计算输入
type YieldInputs struct {
	AnilineMass         float64 `json:"anilineMass"`         // kg
	AceticAnhydrideMass float64 `json:"aceticAnhydrideMass"` // kg
	ActualProductMass   float64 `json:"actualProductMass"`   // kg
}

// 收率计算结果
type YieldResults struct {
	LimitingReactant string  `json:"limitingReactant"`
	TheoreticalYield float64 `json:"theoreticalYield"` // kg
	PercentageYield  float64 `json:"percentageYield"`  // %
	AtomEconomy      float64 `json:"atomEconomy"`      // %
}

// 预设工况，对应工艺流程图上的一台泵
type Preset struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Pump        PumpInputs `json:"pump"`
}

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// 单个字段修改请求
type FieldEdit struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// 消息类型
const (
	MsgPump     = "pump"
	MsgYield    = "yield"
	MsgSetPump  = "setPump"
	MsgSetYield = "setYield"
	MsgReset    = "reset"
	MsgPresets  = "presets"

	MsgPumpResult  = "pumpResult"
	MsgYieldResult = "yieldResult"
	MsgInputs      = "inputs"
	MsgError       = "error"
)
