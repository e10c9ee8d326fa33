package species

// 乙酰苯胺工段涉及的物质及其摩尔质量，单位 g/mol（等价于 kg/kmol）
// 反应：C6H5NH2 + (CH3CO)2O -> C6H5NHCOCH3 + CH3COOH，计量比 1:1

type Species struct {
	Number          int
	Name            string
	Formula         string
	MolecularWeight float64
}

var (
	Aniline         = Species{Number: 1, Name: "Aniline", Formula: "C6H5NH2", MolecularWeight: 93.13}
	AceticAnhydride = Species{Number: 2, Name: "Acetic Anhydride", Formula: "(CH3CO)2O", MolecularWeight: 102.09}
	Acetanilide     = Species{Number: 3, Name: "Acetanilide", Formula: "C6H5NHCOCH3", MolecularWeight: 135.17}
	AceticAcid      = Species{Number: 4, Name: "Acetic Acid", Formula: "CH3COOH", MolecularWeight: 60.05}
)

var all = []Species{Aniline, AceticAnhydride, Acetanilide, AceticAcid}

// 根据名称获取物质
func ByName(name string) (Species, bool) {
	for _, s := range all {
		if s.Name == name {
			return s, true
		}
	}
	return Species{}, false
}

// 质量 kg -> 物质的量 kmol
func (s Species) Moles(mass float64) float64 {
	return mass / s.MolecularWeight
}

// 物质的量 kmol -> 质量 kg
func (s Species) Mass(moles float64) float64 {
	return moles * s.MolecularWeight
}

type Reaction struct {
	Reactants [2]Species
	Product   Species
	Byproduct Species
}

// 苯胺乙酰化
var Acetylation = Reaction{
	Reactants: [2]Species{Aniline, AceticAnhydride},
	Product:   Acetanilide,
	Byproduct: AceticAcid,
}

// 原子经济性 = 目标产物摩尔质量 / 反应物摩尔质量之和 * 100
// 只与摩尔质量有关，与投料量无关
func (r Reaction) AtomEconomy() float64 {
	return r.Product.MolecularWeight / (r.Reactants[0].MolecularWeight + r.Reactants[1].MolecularWeight) * 100
}
