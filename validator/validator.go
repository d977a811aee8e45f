package validator

import (
	"math"

	"tofu/model"
)

// 参数校验，作为引擎调用前的前置检查，无副作用
// 各字段按其物理意义检查闭区间范围，非法即返回对应字段的错误

const (
	// 温度允许范围，℃
	TempMin = -273
	TempMax = 1000
)

// 单个数值字段的范围规则
type rule struct {
	field string
	value float64
	min   float64
	max   float64
}

func checkRules(rules []rule) error {
	for _, r := range rules {
		if math.IsNaN(r.value) || math.IsInf(r.value, 0) {
			return model.MissingField(r.field)
		}
		if r.value < r.min || r.value > r.max {
			return model.OutOfRange(r.field, "应在 [%g, %g] 之间，实际为 %g", r.min, r.max, r.value)
		}
	}
	return nil
}

// 校验理想循环参数
func IdealCycle(p *model.IdealCycleParams) error {
	if p.Refrigerant == "" {
		return model.MissingField("refrigerant")
	}
	err := checkRules([]rule{
		{"evaporating_temp", p.EvaporatingTemp, TempMin, TempMax},
		{"condensing_temp", p.CondensingTemp, TempMin, TempMax},
		{"mass_flow_rate", p.MassFlowRate, 1e-9, 1e6},
		{"isentropic_efficiency", p.IsentropicEfficiency, 1e-9, 1},
	})
	if err != nil {
		return err
	}
	// 冷凝温度必须高于蒸发温度
	if p.CondensingTemp <= p.EvaporatingTemp {
		return model.OutOfRange("condensing_temp", "冷凝温度 %g℃ 必须高于蒸发温度 %g℃", p.CondensingTemp, p.EvaporatingTemp)
	}
	return nil
}

// 校验实际循环参数
func RealCycle(p *model.RealCycleParams) error {
	if p.Refrigerant == "" {
		return model.MissingField("refrigerant")
	}
	err := checkRules([]rule{
		{"evaporating_temp", p.EvaporatingTemp, TempMin, TempMax},
		{"condensing_temp", p.CondensingTemp, TempMin, TempMax},
		{"subcooling", p.Subcooling, 0, 100},
		{"superheat", p.Superheat, 0, 100},
		{"mass_flow_rate", p.MassFlowRate, 1e-9, 1e6},
		{"isentropic_efficiency", p.IsentropicEfficiency, 1e-9, 1},
	})
	if err != nil {
		return err
	}
	if p.CondensingTemp <= p.EvaporatingTemp {
		return model.OutOfRange("condensing_temp", "冷凝温度 %g℃ 必须高于蒸发温度 %g℃", p.CondensingTemp, p.EvaporatingTemp)
	}
	return nil
}

// 校验汽蚀余量参数
func NPSHa(p *model.NPSHaParams) error {
	rules := []rule{
		{"atmospheric_pressure", p.AtmosphericPressure, 1e-6, 1e4},
		{"vapor_pressure", p.VaporPressure, 0, 1e4},
		{"static_head", p.StaticHead, -1000, 1000},
		{"friction_loss", p.FrictionLoss, 0, 1000},
		{"density", p.Density, 1e-3, 1e5},
	}
	if p.RequiredNPSH != nil {
		rules = append(rules, rule{"required_npsh", *p.RequiredNPSH, 0, 1000})
	}
	return checkRules(rules)
}

// 校验管道压降参数
func PressureDrop(p *model.PressureDropParams) error {
	switch p.Mode {
	case model.FlowModeIncompressible, model.FlowModeAdiabatic, model.FlowModeIsothermal:
	default:
		return model.MissingField("mode")
	}
	rules := []rule{
		{"diameter", p.Diameter, 1e-4, 10},
		{"length", p.Length, 1e-3, 1e6},
		{"flow_rate", p.FlowRate, 1e-9, 1e9},
		{"density", p.Density, 1e-3, 1e5},
		{"viscosity", p.Viscosity, 1e-6, 1e6},
		{"roughness", p.Roughness, 0, 0.1},
		{"local_coeff", p.LocalCoeff, 0, 1e4},
	}
	if p.Mode == model.FlowModeIncompressible {
		rules = append(rules, rule{"elevation", p.Elevation, -1000, 1000})
	} else {
		rules = append(rules, rule{"start_pressure", p.StartPressure, 1e-6, 1e6})
	}
	if p.Mode == model.FlowModeAdiabatic {
		rules = append(rules, rule{"adiabatic_index", p.AdiabaticIndex, 1, 2})
	}
	return checkRules(rules)
}
