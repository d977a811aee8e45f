package cycle

import (
	log "github.com/sirupsen/logrus"

	"tofu/model"
	"tofu/refrigerant"
	"tofu/validator"
)

// 蒸气压缩制冷循环计算引擎
//
// 状态点编号
// 1 压缩机入口（蒸发压力下饱和蒸气或过热蒸气）
// 2 压缩机出口
// 3 冷凝器出口（冷凝压力下饱和液体或过冷液体）
// 4 蒸发器入口（节流后，h4 = h3）
//
// 理想循环与实际循环为两种独立的参数形态，理想形态不存在过冷过热字段，
// 因此不存在"理想模式下传入过冷过热"的歧义

// 计算理想循环
func ComputeIdeal(p *model.IdealCycleParams) (*model.CycleResult, error) {
	if err := validator.IdealCycle(p); err != nil {
		return nil, err
	}
	src, err := refrigerant.Lookup(p.Refrigerant)
	if err != nil {
		return nil, model.OutOfRange("refrigerant", "%s", err)
	}
	return compute(src, model.CycleModeIdeal,
		p.EvaporatingTemp, p.CondensingTemp, 0, 0,
		p.MassFlowRate, p.IsentropicEfficiency)
}

// 计算实际循环，过冷过热取 0 时与理想循环结果一致
func ComputeReal(p *model.RealCycleParams) (*model.CycleResult, error) {
	if err := validator.RealCycle(p); err != nil {
		return nil, err
	}
	src, err := refrigerant.Lookup(p.Refrigerant)
	if err != nil {
		return nil, model.OutOfRange("refrigerant", "%s", err)
	}
	return compute(src, model.CycleModeReal,
		p.EvaporatingTemp, p.CondensingTemp, p.Subcooling, p.Superheat,
		p.MassFlowRate, p.IsentropicEfficiency)
}

func compute(src refrigerant.PropertySource, mode string,
	tEvap, tCond, subcooling, superheat, massFlow, efficiency float64) (*model.CycleResult, error) {

	// 状态点 1：蒸发压力下的蒸气
	h1, err := src.SuperheatedEnthalpy(tEvap, superheat)
	if err != nil {
		return nil, err
	}
	s1, err := src.SuperheatedEntropy(tEvap, superheat)
	if err != nil {
		return nil, err
	}

	// 状态点 2s：等熵压缩到冷凝压力
	h2s, err := src.IsentropicDischargeEnthalpy(tCond, s1)
	if err != nil {
		return nil, err
	}

	// 状态点 3：冷凝器出口液体
	h3, err := src.SubcooledEnthalpy(tCond, subcooling)
	if err != nil {
		return nil, err
	}
	// 状态点 4：节流，等焓
	h4 := h3

	pEvap, err := src.SaturationPressure(tEvap)
	if err != nil {
		return nil, err
	}
	pCond, err := src.SaturationPressure(tCond)
	if err != nil {
		return nil, err
	}

	capacity := massFlow * (h1 - h4)
	idealWork := massFlow * (h2s - h1)
	work := idealWork / efficiency
	// 实际出口焓：等熵焓升按效率折算
	h2 := h1 + (h2s-h1)/efficiency
	heatRejected := massFlow * (h2 - h3)

	// 压缩功非正时 COP 无定义，按错误返回而不是哨兵值
	if work <= 0 {
		return nil, model.UndefinedResult("实际压缩功 %.4f kW 非正，COP 无定义", work)
	}
	cop := capacity / work

	log.WithFields(log.Fields{
		"refrigerant": src.Name(),
		"mode":        mode,
		"capacity":    capacity,
		"work":        work,
		"cop":         cop,
	}).Debug("制冷循环计算完成")

	return &model.CycleResult{
		Mode:        mode,
		Refrigerant: src.Name(),
		States: model.StatePoints{
			H1:  h1,
			H2:  h2,
			H2s: h2s,
			H3:  h3,
			H4:  h4,
		},
		Capacity:         capacity,
		IdealWork:        idealWork,
		Work:             work,
		HeatRejected:     heatRejected,
		COP:              cop,
		EvaporatingPress: pEvap,
		CondensingPress:  pCond,
	}, nil
}
