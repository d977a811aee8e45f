package pressure

import (
	"math"

	log "github.com/sirupsen/logrus"

	"tofu/model"
	"tofu/validator"
)

// 管道压降计算引擎
// 不可压缩流体采用 Darcy-Weisbach 公式，沿程 + 局部 + 静压头三项
// 可压缩流体提供绝热和等温两种简化算法

const (
	// 流态分界雷诺数
	laminarLimit    = 2000
	transitionLimit = 4000

	g = 9.81
)

// 流态名称
const (
	RegimeLaminar    = "层流"
	RegimeTransition = "过渡流"
	RegimeTurbulent  = "湍流"
)

// 计算管道压降
func Compute(p *model.PressureDropParams) (*model.PressureDropResult, error) {
	if err := validator.PressureDrop(p); err != nil {
		return nil, err
	}

	// 流速，流量 m³/h -> m³/s
	area := math.Pi * p.Diameter * p.Diameter / 4
	velocity := (p.FlowRate / 3600) / area

	// 雷诺数，粘度 mPa·s -> Pa·s
	viscosity := p.Viscosity / 1000
	reynolds := p.Density * velocity * p.Diameter / viscosity

	// 摩擦系数
	var frictionFactor float64
	var regime string
	switch {
	case reynolds < laminarLimit:
		frictionFactor = 64 / reynolds
		regime = RegimeLaminar
	case reynolds < transitionLimit:
		frictionFactor = 0.25 / math.Pow(math.Log10(p.Roughness/(3.7*p.Diameter)+5.74/math.Pow(reynolds, 0.9)), 2)
		regime = RegimeTransition
	default:
		frictionFactor = solveColebrook(p.Roughness/p.Diameter, reynolds)
		regime = RegimeTurbulent
	}

	result := &model.PressureDropResult{
		Mode:           p.Mode,
		Velocity:       velocity,
		Reynolds:       reynolds,
		FlowRegime:     regime,
		FrictionFactor: frictionFactor,
	}

	dynamicPressure := p.Density * velocity * velocity / 2

	switch p.Mode {
	case model.FlowModeIncompressible:
		result.FrictionDrop = frictionFactor * (p.Length / p.Diameter) * dynamicPressure
		result.LocalDrop = p.LocalCoeff * dynamicPressure
		result.ElevationDrop = p.Density * g * p.Elevation
		result.TotalDrop = result.FrictionDrop + result.LocalDrop + result.ElevationDrop

	case model.FlowModeAdiabatic:
		// 绝热流动简化算法，温度按 20℃ 取
		startPressure := p.StartPressure * 1000
		mach := velocity / math.Sqrt(p.AdiabaticIndex*287*293)
		result.MachNumber = mach
		if mach < 1 {
			pressureRatio := 1 - (frictionFactor*p.Length/p.Diameter)*(p.AdiabaticIndex*mach*mach)/2
			if pressureRatio <= 0 {
				return nil, model.UndefinedResult("绝热流动压力比非正，管长超出该工况的极限管长")
			}
			result.TotalDrop = startPressure * (1 - pressureRatio)
		} else {
			result.TotalDrop = frictionFactor * (p.Length / p.Diameter) * dynamicPressure
		}
		result.FrictionDrop = result.TotalDrop

	case model.FlowModeIsothermal:
		// 等温流动简化算法
		result.TotalDrop = frictionFactor * p.Length * dynamicPressure / p.Diameter
		result.FrictionDrop = result.TotalDrop
	}

	log.WithFields(log.Fields{
		"mode":     p.Mode,
		"regime":   regime,
		"reynolds": reynolds,
		"total":    result.TotalDrop,
	}).Debug("管道压降计算完成")
	return result, nil
}

// Colebrook-White 方程迭代求解摩擦系数
func solveColebrook(relativeRoughness, reynolds float64) float64 {
	f := 0.02
	for i := 0; i < 100; i++ {
		fNew := 1 / math.Pow(-2*math.Log10(relativeRoughness/3.7+2.51/(reynolds*math.Sqrt(f))), 2)
		if math.Abs(fNew-f) < 1e-8 {
			return fNew
		}
		f = fNew
	}
	return f
}
