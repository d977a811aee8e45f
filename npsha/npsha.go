package npsha

import (
	log "github.com/sirupsen/logrus"

	"tofu/model"
	"tofu/validator"
)

// 离心泵有效汽蚀余量计算引擎
//
// NPSHa = (Pa - Pv) / (ρ·g) + Hs - Hf
// 压力单位 kPa，高度单位 m，密度单位 kg/m³

const (
	// 重力加速度，m/s²
	G = 9.80665

	// 安全裕量，富余量不低于该值判定为安全，m
	DefaultSafetyMargin = 0.5
)

// 计算有效汽蚀余量，margin 为安全裕量，m，非正时取默认值
func Compute(p *model.NPSHaParams, margin float64) (*model.NPSHaResult, error) {
	if err := validator.NPSHa(p); err != nil {
		return nil, err
	}
	if p.VaporPressure >= p.AtmosphericPressure {
		return nil, model.OutOfRange("vapor_pressure",
			"饱和蒸气压 %g kPa 不应高于液面压力 %g kPa", p.VaporPressure, p.AtmosphericPressure)
	}
	if margin <= 0 {
		margin = DefaultSafetyMargin
	}

	// kPa -> Pa
	pressureHead := (p.AtmosphericPressure - p.VaporPressure) * 1000 / (p.Density * G)
	available := pressureHead + p.StaticHead - p.FrictionLoss

	result := &model.NPSHaResult{Available: available}
	if p.RequiredNPSH != nil {
		m := available - *p.RequiredNPSH
		safe := m >= margin
		result.Margin = &m
		result.Safe = &safe
	}

	log.WithFields(log.Fields{
		"available": available,
		"static":    p.StaticHead,
		"friction":  p.FrictionLoss,
	}).Debug("汽蚀余量计算完成")
	return result, nil
}
