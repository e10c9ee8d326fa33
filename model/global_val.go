package model

// 全局常量，进程内只读

// 物理常数
const (
	Gravity = 9.81 // 重力加速度 m/s2
)

// 流态判据，Re 小于该值按层流处理，不做过渡区平滑
const (
	LaminarReynolds = 2000.0
)

// 局部阻力系数 K
const (
	KElbow    = 0.9 // 标准90°弯头
	KValve    = 0.2 // 全开闸阀
	KEntrance = 0.5 // 入口
	KExit     = 1.0 // 出口
)

// 各结果字段的修约位数
const (
	VelocityDigits       = 3
	ReynoldsDigits       = 0
	FrictionFactorDigits = 5
	HeadDigits           = 3
	PowerDigits          = 3
	PressureDigits       = 3

	YieldDigits = 2
)
