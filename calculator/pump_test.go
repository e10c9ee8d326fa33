package calculator

import (
	"errors"
	"math"
	"testing"

	"chemcalc/model"

	"gonum.org/v1/gonum/floats/scalar"
)

func p101() model.PumpInputs {
	return model.PumpInputs{
		FlowRate:     18.726,
		Density:      1022,
		Viscosity:    3.7,
		PipeDiameter: 77.9,
		PipeLength:   25,
		Elevation:    4,
		Roughness:    0.046,
		Elbows:       3,
		Valves:       1,
		Efficiency:   60,
	}
}

func TestSolvePumpHydraulics(t *testing.T) {
	laminar := p101()
	laminar.Viscosity = 500

	downhill := p101()
	downhill.Elevation = -10
	downhill.Efficiency = 100

	straight := p101()
	straight.PipeLength = 0
	straight.Elbows = 0
	straight.Valves = 0

	cases := []struct {
		name string
		in   model.PumpInputs
		want model.PumpResults
	}{
		{"P-101", p101(), model.PumpResults{
			Velocity: 1.091, Reynolds: 23484, FrictionFactor: 0.02632, HeadLoss: 0.78,
			TotalHead: 4.78, HydraulicPower: 0.249, BrakePower: 0.415, PressureDrop: 7.82,
		}},
		{"laminar", laminar, model.PumpResults{
			Velocity: 1.091, Reynolds: 174, FrictionFactor: 0.36828, HeadLoss: 7.442,
			TotalHead: 11.442, HydraulicPower: 0.597, BrakePower: 0.995, PressureDrop: 74.617,
		}},
		{"downhill", downhill, model.PumpResults{
			Velocity: 1.091, Reynolds: 23484, FrictionFactor: 0.02632, HeadLoss: 0.78,
			TotalHead: -9.22, HydraulicPower: -0.481, BrakePower: -0.481, PressureDrop: 7.82,
		}},
		{"no fittings", straight, model.PumpResults{
			Velocity: 1.091, Reynolds: 23484, FrictionFactor: 0.02632, HeadLoss: 0.091,
			TotalHead: 4.091, HydraulicPower: 0.213, BrakePower: 0.356, PressureDrop: 0.913,
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := SolvePumpHydraulics(c.in)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got != c.want {
				t.Errorf("got %+v\nwant %+v", got, c.want)
			}
		})
	}
}

func TestP101Scenario(t *testing.T) {
	in := p101()
	s := pumpHydraulics(in)
	if s.reynolds < model.LaminarReynolds {
		t.Errorf("expected turbulent flow, Re = %v", s.reynolds)
	}
	if s.totalHead <= in.Elevation {
		t.Errorf("total head %v should exceed elevation %v", s.totalHead, in.Elevation)
	}
	if s.brakePower <= s.hydraulicPower {
		t.Errorf("brake power %v should exceed hydraulic power %v", s.brakePower, s.hydraulicPower)
	}
	if !scalar.EqualWithinAbs(s.velocity, 1.0913843492003237, 1e-12) {
		t.Errorf("velocity = %v", s.velocity)
	}
}

func TestVelocityFormula(t *testing.T) {
	for _, d := range []float64{12.7, 26.6, 52.5, 77.9, 154.1} {
		in := p101()
		in.PipeDiameter = d
		want := in.FlowRate / 3600 / (math.Pi * math.Pow(in.PipeDiameter/2000, 2))
		if got := pumpHydraulics(in).velocity; !scalar.EqualWithinRel(got, want, 1e-15) {
			t.Errorf("diameter %v: velocity = %v, want %v", d, got, want)
		}
	}
}

func TestLaminarFrictionFactor(t *testing.T) {
	for _, mu := range []float64{50, 120, 500, 2000} {
		in := p101()
		in.Viscosity = mu
		s := pumpHydraulics(in)
		if s.reynolds >= model.LaminarReynolds {
			t.Fatalf("viscosity %v: expected laminar, Re = %v", mu, s.reynolds)
		}
		if !scalar.EqualWithinRel(s.frictionFactor, 64/s.reynolds, 1e-15) {
			t.Errorf("viscosity %v: f = %v, want %v", mu, s.frictionFactor, 64/s.reynolds)
		}
	}
}

// 层流与湍流公式在 Re = 2000 处不做平滑，断开处两侧分别符合各自公式
func TestFrictionFactorDiscontinuity(t *testing.T) {
	roughness, diameter := 0.046/1000, 77.9/1000

	reBelow, reAbove := 1999.9, 2000.1
	below := frictionFactor(reBelow, roughness, diameter)
	above := frictionFactor(reAbove, roughness, diameter)

	if want := 64 / reBelow; below != want {
		t.Errorf("f(1999.9) = %v, want %v", below, want)
	}
	want := 0.25 / math.Pow(math.Log10(roughness/(3.7*diameter)+5.74/math.Pow(reAbove, 0.9)), 2)
	if above != want {
		t.Errorf("f(2000.1) = %v, want %v", above, want)
	}
	if !scalar.EqualWithinAbs(below, 0.032001600080004, 1e-12) {
		t.Errorf("f(1999.9) = %v", below)
	}
	if !scalar.EqualWithinAbs(above, 0.05161134835284978, 1e-9) {
		t.Errorf("f(2000.1) = %v", above)
	}
	if jump := above - below; jump < 0.019 {
		t.Errorf("expected a jump of ~0.0196 at Re = 2000, got %v", jump)
	}
}

func TestTotalHeadIsElevationPlusHeadLoss(t *testing.T) {
	for _, z := range []float64{-25, -4, 0, 4, 31.5} {
		in := p101()
		in.Elevation = z
		s := pumpHydraulics(in)
		if s.totalHead != z+s.headLoss {
			t.Errorf("elevation %v: total head %v != %v", z, s.totalHead, z+s.headLoss)
		}
		if s.headLoss != s.majorHeadLoss+s.minorHeadLoss {
			t.Errorf("elevation %v: head loss %v is not major + minor", z, s.headLoss)
		}
	}
}

func TestBrakePower(t *testing.T) {
	for _, eff := range []float64{35, 60, 82.5, 100} {
		in := p101()
		in.Efficiency = eff
		s := pumpHydraulics(in)
		if want := s.hydraulicPower / (eff / 100); s.brakePower != want {
			t.Errorf("efficiency %v: brake power %v, want %v", eff, s.brakePower, want)
		}
	}

	in := p101()
	in.Efficiency = 100
	got, err := SolvePumpHydraulics(in)
	if err != nil {
		t.Fatal(err)
	}
	if got.BrakePower != got.HydraulicPower {
		t.Errorf("at 100%% efficiency brake power %v != hydraulic power %v", got.BrakePower, got.HydraulicPower)
	}
}

func TestSolvePumpHydraulicsDeterministic(t *testing.T) {
	a, _ := SolvePumpHydraulics(p101())
	b, _ := SolvePumpHydraulics(p101())
	if a != b {
		t.Errorf("results differ: %+v vs %+v", a, b)
	}
}

func TestSolvePumpHydraulicsInvalid(t *testing.T) {
	cases := []struct {
		field string
		edit  func(in *model.PumpInputs)
	}{
		{"flowRate", func(in *model.PumpInputs) { in.FlowRate = 0 }},
		{"density", func(in *model.PumpInputs) { in.Density = -1 }},
		{"viscosity", func(in *model.PumpInputs) { in.Viscosity = 0 }},
		{"pipeDiameter", func(in *model.PumpInputs) { in.PipeDiameter = 0 }},
		{"pipeLength", func(in *model.PumpInputs) { in.PipeLength = -3 }},
		{"elevation", func(in *model.PumpInputs) { in.Elevation = math.NaN() }},
		{"roughness", func(in *model.PumpInputs) { in.Roughness = math.Inf(1) }},
		{"elbows", func(in *model.PumpInputs) { in.Elbows = -1 }},
		{"valves", func(in *model.PumpInputs) { in.Valves = -2 }},
		{"efficiency", func(in *model.PumpInputs) { in.Efficiency = 0 }},
		{"efficiency", func(in *model.PumpInputs) { in.Efficiency = 100.5 }},
	}
	for _, c := range cases {
		in := p101()
		c.edit(&in)
		got, err := SolvePumpHydraulics(in)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", c.field, err)
			continue
		}
		var ie *InputError
		if !errors.As(err, &ie) || ie.Field != c.field {
			t.Errorf("expected field %s, got %v", c.field, err)
		}
		if got != (model.PumpResults{}) {
			t.Errorf("%s: expected zero result, got %+v", c.field, got)
		}
	}
}

// 管长为 0 与无提升高度属于合法输入
func TestSolvePumpHydraulicsBoundary(t *testing.T) {
	in := p101()
	in.PipeLength = 0
	in.Elevation = 0
	in.Roughness = 0
	got, err := SolvePumpHydraulics(in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.TotalHead != got.HeadLoss {
		t.Errorf("total head %v should equal head loss %v", got.TotalHead, got.HeadLoss)
	}
}
