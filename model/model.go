package model

import "time"

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// 制冷循环计算模式
const (
	CycleModeIdeal = "ideal" // 理想循环，无过冷过热
	CycleModeReal  = "real"  // 实际循环，考虑过冷过热
)

// 理想循环参数，压缩机入口为饱和蒸气，冷凝器出口为饱和液体
type IdealCycleParams struct {
	Refrigerant          string  `json:"refrigerant"`           // 制冷剂编号，如 R134a
	EvaporatingTemp      float64 `json:"evaporating_temp"`      // 蒸发温度，℃
	CondensingTemp       float64 `json:"condensing_temp"`       // 冷凝温度，℃
	MassFlowRate         float64 `json:"mass_flow_rate"`        // 质量流量，kg/s
	IsentropicEfficiency float64 `json:"isentropic_efficiency"` // 压缩机等熵效率，(0,1]
}

// 实际循环参数，在理想循环基础上增加过冷度和过热度
type RealCycleParams struct {
	Refrigerant          string  `json:"refrigerant"`
	EvaporatingTemp      float64 `json:"evaporating_temp"`
	CondensingTemp       float64 `json:"condensing_temp"`
	Subcooling           float64 `json:"subcooling"` // 过冷度，K
	Superheat            float64 `json:"superheat"`  // 过热度，K
	MassFlowRate         float64 `json:"mass_flow_rate"`
	IsentropicEfficiency float64 `json:"isentropic_efficiency"`
}

// 循环四个状态点的焓值，kJ/kg
// 1 压缩机入口 2 压缩机出口 3 冷凝器出口 4 蒸发器入口
type StatePoints struct {
	H1  float64 `json:"h1"`
	H2  float64 `json:"h2"`
	H2s float64 `json:"h2s"` // 等熵压缩出口焓
	H3  float64 `json:"h3"`
	H4  float64 `json:"h4"`
}

// 制冷循环计算结果，计算完成后不再修改
type CycleResult struct {
	Mode             string      `json:"mode"`
	Refrigerant      string      `json:"refrigerant"`
	States           StatePoints `json:"states"`
	Capacity         float64     `json:"capacity"`          // 制冷量，kW
	IdealWork        float64     `json:"ideal_work"`        // 理论压缩功，kW
	Work             float64     `json:"work"`              // 实际压缩功，kW
	HeatRejected     float64     `json:"heat_rejected"`     // 冷凝放热量，kW
	COP              float64     `json:"cop"`               // 性能系数
	EvaporatingPress float64     `json:"evaporating_press"` // 蒸发压力，kPa
	CondensingPress  float64     `json:"condensing_press"`  // 冷凝压力，kPa
}

// 泵汽蚀余量计算参数
type NPSHaParams struct {
	AtmosphericPressure float64  `json:"atmospheric_pressure"` // 大气压，kPa
	VaporPressure       float64  `json:"vapor_pressure"`       // 饱和蒸气压，kPa
	StaticHead          float64  `json:"static_head"`          // 静吸入高度，m，液面低于泵时为负
	FrictionLoss        float64  `json:"friction_loss"`        // 吸入管路阻力损失，m
	Density             float64  `json:"density"`              // 液体密度，kg/m³
	RequiredNPSH        *float64 `json:"required_npsh"`        // 必需汽蚀余量，m，可选
}

// 泵汽蚀余量计算结果
type NPSHaResult struct {
	Available float64  `json:"available"` // 有效汽蚀余量，m
	Margin    *float64 `json:"margin"`    // 富余量 = 有效 - 必需，m
	Safe      *bool    `json:"safe"`      // 富余量是否满足安全裕量
}

// 管道压降计算模式
const (
	FlowModeIncompressible = "incompressible" // 不可压缩流体
	FlowModeAdiabatic      = "adiabatic"      // 可压缩流体（绝热）
	FlowModeIsothermal     = "isothermal"     // 可压缩流体（等温）
)

// 管道压降计算参数
type PressureDropParams struct {
	Mode           string  `json:"mode"`
	Diameter       float64 `json:"diameter"`        // 管道内径，m
	Length         float64 `json:"length"`          // 管道长度，m
	Elevation      float64 `json:"elevation"`       // 标高变化，m，仅不可压缩模式
	FlowRate       float64 `json:"flow_rate"`       // 流量，m³/h
	Density        float64 `json:"density"`         // 密度，kg/m³
	Viscosity      float64 `json:"viscosity"`       // 粘度，mPa·s
	Roughness      float64 `json:"roughness"`       // 粗糙度，m
	LocalCoeff     float64 `json:"local_coeff"`     // 局部阻力系数之和
	AdiabaticIndex float64 `json:"adiabatic_index"` // 绝热指数，仅绝热模式
	StartPressure  float64 `json:"start_pressure"`  // 起点压力，kPa，仅可压缩模式
}

// 管道压降计算结果
type PressureDropResult struct {
	Mode           string  `json:"mode"`
	Velocity       float64 `json:"velocity"`        // 流速，m/s
	Reynolds       float64 `json:"reynolds"`        // 雷诺数
	FlowRegime     string  `json:"flow_regime"`     // 流态
	FrictionFactor float64 `json:"friction_factor"` // 摩擦系数
	FrictionDrop   float64 `json:"friction_drop"`   // 沿程阻力损失，Pa
	LocalDrop      float64 `json:"local_drop"`      // 局部阻力损失，Pa
	ElevationDrop  float64 `json:"elevation_drop"`  // 静压头变化，Pa
	TotalDrop      float64 `json:"total_drop"`      // 总压力损失，Pa
	MachNumber     float64 `json:"mach_number"`     // 马赫数，仅绝热模式
}

// 工程信息，出现在计算书的工程信息部分
type ProjectInfo struct {
	CompanyName    string `json:"company_name"`
	ProjectNumber  string `json:"project_number"`
	ProjectName    string `json:"project_name"`
	SubprojectName string `json:"subproject_name"`
}

// 一次计算的完整记录，一次会话内有效
// Completed 未置位时不允许生成计算书
type CalculationRecord struct {
	UID       string      `json:"uid"`
	Kind      string      `json:"kind"`  // cycle / npsha / pressure_drop
	Title     string      `json:"title"` // 计算书标题，如 制冷循环计算
	Params    interface{} `json:"params"`
	Result    interface{} `json:"result"`
	Completed bool        `json:"completed"`
	CreatedAt time.Time   `json:"created_at"`
}

// 计算书文档
type Document struct {
	Number      string    `json:"number"` // 计算书编号，如 PD-20260828-001
	Title       string    `json:"title"`
	Version     string    `json:"version"`
	GeneratedAt time.Time `json:"generated_at"`
	Body        string    `json:"body"`
}
