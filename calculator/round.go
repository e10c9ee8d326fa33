package calculator

import (
	"math"
	"math/big"
)

// 按 JavaScript Number.prototype.toFixed 的规则修约，再解析回浮点数
// 在 x 的精确二进制值上取最近的 n / 10^digits，距离相等时取绝对值较大者
// |x| >= 1e21 以及 NaN、Inf 原样返回
func toFixed(x float64, digits int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.Abs(x) >= 1e21 {
		return x
	}
	neg := x < 0
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)

	r := new(big.Rat).SetFloat64(math.Abs(x))
	r.Mul(r, new(big.Rat).SetInt(scale))
	r.Add(r, big.NewRat(1, 2))
	// 分母恒为正，Div 为欧几里得除法，即向下取整
	n := new(big.Int).Div(r.Num(), r.Denom())

	f, _ := new(big.Rat).SetFrac(n, scale).Float64()
	if neg {
		return -f
	}
	return f
}
