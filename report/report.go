package report

import (
	"fmt"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"tofu/model"
)

// 计算书生成
// 只有 Completed 置位的记录才能生成计算书，否则返回 model.ErrNotReady
// 计算书编号为 前缀-日期-当日序号，序号在进程内维护，按天重置

type Formatter struct {
	Project model.ProjectInfo
	Version string // 版本标签，如 1.0
	Prefix  string // 编号前缀，如 PD

	mu          sync.Mutex
	counterDate string
	counter     int

	now func() time.Time
}

func NewFormatter(project model.ProjectInfo, version, prefix string) *Formatter {
	if version == "" {
		version = "1.0"
	}
	if prefix == "" {
		prefix = "PD"
	}
	return &Formatter{
		Project: project,
		Version: version,
		Prefix:  prefix,
		now:     time.Now,
	}
}

// 下一个计算书编号，如 PD-20260828-001
func (f *Formatter) nextNumber(t time.Time) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	day := t.Format("20060102")
	if f.counterDate != day {
		f.counterDate = day
		f.counter = 0
	}
	f.counter++
	return fmt.Sprintf("%s-%s-%03d", f.Prefix, day, f.counter)
}

// 由计算记录生成计算书文档
func (f *Formatter) Format(rec *model.CalculationRecord) (*model.Document, error) {
	if rec == nil || !rec.Completed {
		return nil, model.ErrNotReady
	}

	body, err := buildBody(rec)
	if err != nil {
		return nil, err
	}

	now := f.now()
	number := f.nextNumber(now)

	var b strings.Builder
	fmt.Fprintf(&b, "工程计算书 - %s\n", rec.Title)
	fmt.Fprintf(&b, "生成时间: %s\n", now.Format("2006-01-02 15:04:05"))
	b.WriteString("计算工具: TofuSoft 工程计算模块\n")
	b.WriteString("========================================\n\n")
	b.WriteString(body)

	section(&b, "工程信息")
	fmt.Fprintf(&b, "    公司名称: %s\n", f.Project.CompanyName)
	fmt.Fprintf(&b, "    工程编号: %s\n", f.Project.ProjectNumber)
	fmt.Fprintf(&b, "    工程名称: %s\n", f.Project.ProjectName)
	fmt.Fprintf(&b, "    子项名称: %s\n", f.Project.SubprojectName)
	fmt.Fprintf(&b, "    计算日期: %s\n", now.Format("2006-01-02"))

	section(&b, "计算书标识")
	fmt.Fprintf(&b, "    计算书编号: %s\n", number)
	fmt.Fprintf(&b, "    版本: %s\n", f.Version)
	b.WriteString("    状态: 正式计算书\n")

	section(&b, "备注说明")
	b.WriteString("    1. 本计算书基于流体力学及工程热力学原理编制\n")
	b.WriteString("    2. 计算结果仅供参考，实际应用需考虑安全系数\n")
	b.WriteString("    3. 重要工程参数应经专业工程师审核确认\n")
	b.WriteString("    4. 计算条件变更时应重新进行计算\n")
	b.WriteString("\n---\n生成于 TofuSoft 工程计算模块\n")

	log.WithFields(log.Fields{"number": number, "kind": rec.Kind}).Info("生成计算书")
	return &model.Document{
		Number:      number,
		Title:       rec.Title,
		Version:     f.Version,
		GeneratedAt: now,
		Body:        b.String(),
	}, nil
}

func section(b *strings.Builder, title string) {
	b.WriteString("\n══════════\n")
	b.WriteString(title)
	b.WriteString("\n══════════\n\n")
}

// 按记录类型组装输入参数和计算结果两个小节
func buildBody(rec *model.CalculationRecord) (string, error) {
	switch result := rec.Result.(type) {
	case *model.CycleResult:
		params, ok := cycleParams(rec.Params)
		if !ok {
			return "", fmt.Errorf("记录 %s 的参数类型与结果不匹配", rec.UID)
		}
		return cycleBody(params, result), nil
	case *model.NPSHaResult:
		params, ok := rec.Params.(*model.NPSHaParams)
		if !ok {
			return "", fmt.Errorf("记录 %s 的参数类型与结果不匹配", rec.UID)
		}
		return npshaBody(params, result), nil
	case *model.PressureDropResult:
		params, ok := rec.Params.(*model.PressureDropParams)
		if !ok {
			return "", fmt.Errorf("记录 %s 的参数类型与结果不匹配", rec.UID)
		}
		return pressureBody(params, result), nil
	default:
		return "", fmt.Errorf("记录 %s 的结果类型未知", rec.UID)
	}
}

// 理想/实际两种参数形态统一到一组展示字段
type cycleParamView struct {
	refrigerant string
	tEvap       float64
	tCond       float64
	subcooling  float64
	superheat   float64
	massFlow    float64
	efficiency  float64
	mode        string
}

func cycleParams(v interface{}) (*cycleParamView, bool) {
	switch p := v.(type) {
	case *model.IdealCycleParams:
		return &cycleParamView{
			refrigerant: p.Refrigerant,
			tEvap:       p.EvaporatingTemp,
			tCond:       p.CondensingTemp,
			massFlow:    p.MassFlowRate,
			efficiency:  p.IsentropicEfficiency,
			mode:        "理想循环",
		}, true
	case *model.RealCycleParams:
		return &cycleParamView{
			refrigerant: p.Refrigerant,
			tEvap:       p.EvaporatingTemp,
			tCond:       p.CondensingTemp,
			subcooling:  p.Subcooling,
			superheat:   p.Superheat,
			massFlow:    p.MassFlowRate,
			efficiency:  p.IsentropicEfficiency,
			mode:        "实际循环",
		}, true
	}
	return nil, false
}

func cycleBody(p *cycleParamView, r *model.CycleResult) string {
	var b strings.Builder
	section(&b, "输入参数")
	fmt.Fprintf(&b, "    计算模式: %s\n", p.mode)
	fmt.Fprintf(&b, "    制冷剂: %s\n", p.refrigerant)
	fmt.Fprintf(&b, "    蒸发温度: %.2f ℃\n", p.tEvap)
	fmt.Fprintf(&b, "    冷凝温度: %.2f ℃\n", p.tCond)
	if p.mode == "实际循环" {
		fmt.Fprintf(&b, "    过冷度: %.2f K\n", p.subcooling)
		fmt.Fprintf(&b, "    过热度: %.2f K\n", p.superheat)
	}
	fmt.Fprintf(&b, "    质量流量: %.4f kg/s\n", p.massFlow)
	fmt.Fprintf(&b, "    等熵效率: %.3f\n", p.efficiency)

	section(&b, "计算结果")
	b.WriteString("    状态点焓值:\n")
	fmt.Fprintf(&b, "    • 压缩机入口 h1: %.4f kJ/kg\n", r.States.H1)
	fmt.Fprintf(&b, "    • 等熵压缩出口 h2s: %.4f kJ/kg\n", r.States.H2s)
	fmt.Fprintf(&b, "    • 压缩机出口 h2: %.4f kJ/kg\n", r.States.H2)
	fmt.Fprintf(&b, "    • 冷凝器出口 h3: %.4f kJ/kg\n", r.States.H3)
	fmt.Fprintf(&b, "    • 蒸发器入口 h4: %.4f kJ/kg\n", r.States.H4)
	b.WriteString("\n    性能指标:\n")
	fmt.Fprintf(&b, "    • 蒸发压力: %.2f kPa\n", r.EvaporatingPress)
	fmt.Fprintf(&b, "    • 冷凝压力: %.2f kPa\n", r.CondensingPress)
	fmt.Fprintf(&b, "    • 制冷量: %.4f kW\n", r.Capacity)
	fmt.Fprintf(&b, "    • 理论压缩功: %.4f kW\n", r.IdealWork)
	fmt.Fprintf(&b, "    • 实际压缩功: %.4f kW\n", r.Work)
	fmt.Fprintf(&b, "    • 冷凝放热量: %.4f kW\n", r.HeatRejected)
	fmt.Fprintf(&b, "    • COP: %.4f\n", r.COP)
	return b.String()
}

func npshaBody(p *model.NPSHaParams, r *model.NPSHaResult) string {
	var b strings.Builder
	section(&b, "输入参数")
	fmt.Fprintf(&b, "    液面压力: %.3f kPa\n", p.AtmosphericPressure)
	fmt.Fprintf(&b, "    饱和蒸气压: %.3f kPa\n", p.VaporPressure)
	fmt.Fprintf(&b, "    静吸入高度: %.3f m\n", p.StaticHead)
	fmt.Fprintf(&b, "    吸入管路阻力损失: %.3f m\n", p.FrictionLoss)
	fmt.Fprintf(&b, "    液体密度: %.1f kg/m³\n", p.Density)
	if p.RequiredNPSH != nil {
		fmt.Fprintf(&b, "    必需汽蚀余量 NPSHr: %.3f m\n", *p.RequiredNPSH)
	}

	section(&b, "计算结果")
	fmt.Fprintf(&b, "    • 有效汽蚀余量 NPSHa: %.4f m\n", r.Available)
	if r.Margin != nil {
		fmt.Fprintf(&b, "    • 富余量: %.4f m\n", *r.Margin)
		if r.Safe != nil && *r.Safe {
			b.WriteString("    • 判定: 满足安全裕量，不易发生汽蚀\n")
		} else {
			b.WriteString("    • 判定: 不满足安全裕量，存在汽蚀风险\n")
		}
	}
	return b.String()
}

func pressureBody(p *model.PressureDropParams, r *model.PressureDropResult) string {
	modeName := map[string]string{
		model.FlowModeIncompressible: "不可压缩流体",
		model.FlowModeAdiabatic:      "可压缩流体（绝热）",
		model.FlowModeIsothermal:     "可压缩流体（等温）",
	}

	var b strings.Builder
	section(&b, "输入参数")
	fmt.Fprintf(&b, "    计算模式: %s\n", modeName[p.Mode])
	fmt.Fprintf(&b, "    管道内径: %.1f mm\n", p.Diameter*1000)
	fmt.Fprintf(&b, "    管道长度: %g m\n", p.Length)
	if p.Mode == model.FlowModeIncompressible {
		fmt.Fprintf(&b, "    标高变化: %g m\n", p.Elevation)
	} else {
		fmt.Fprintf(&b, "    起点压力: %g kPa\n", p.StartPressure)
	}
	fmt.Fprintf(&b, "    流体流量: %g m³/h\n", p.FlowRate)
	fmt.Fprintf(&b, "    流体密度: %.3f kg/m³\n", p.Density)
	fmt.Fprintf(&b, "    流体粘度: %.6f mPa·s\n", p.Viscosity)
	fmt.Fprintf(&b, "    管道粗糙度: %.3f mm\n", p.Roughness*1000)
	fmt.Fprintf(&b, "    局部阻力系数: %.3f\n", p.LocalCoeff)

	section(&b, "计算结果")
	b.WriteString("    流动特性:\n")
	fmt.Fprintf(&b, "    • 流速: %.4f m/s\n", r.Velocity)
	fmt.Fprintf(&b, "    • 雷诺数: %.0f\n", r.Reynolds)
	fmt.Fprintf(&b, "    • 流态: %s\n", r.FlowRegime)
	fmt.Fprintf(&b, "    • 摩擦系数: %.6f\n", r.FrictionFactor)
	b.WriteString("\n    压力损失分析:\n")
	fmt.Fprintf(&b, "    • 沿程阻力损失: %.4f kPa\n", r.FrictionDrop/1000)
	if p.Mode == model.FlowModeIncompressible {
		fmt.Fprintf(&b, "    • 局部阻力损失: %.4f kPa\n", r.LocalDrop/1000)
		fmt.Fprintf(&b, "    • 静压头变化: %.4f kPa\n", r.ElevationDrop/1000)
	}
	if p.Mode == model.FlowModeAdiabatic {
		fmt.Fprintf(&b, "    • 马赫数: %.4f\n", r.MachNumber)
	}
	fmt.Fprintf(&b, "    • 总压力损失: %.4f kPa\n", r.TotalDrop/1000)
	return b.String()
}
