package npsha

// 常用参考数据，静态表，供前端填表时选用，不参与计算

// 标准大气压，kPa
const StandardAtmosphere = 101.325

// 海拔对应大气压，kPa
type AltitudePressure struct {
	Altitude float64 `json:"altitude"` // m
	Pressure float64 `json:"pressure"` // kPa
}

var AltitudePressures = []AltitudePressure{
	{Altitude: 0, Pressure: 101.325},
	{Altitude: 500, Pressure: 95.46},
	{Altitude: 1000, Pressure: 89.88},
	{Altitude: 1500, Pressure: 84.56},
	{Altitude: 2000, Pressure: 79.50},
	{Altitude: 3000, Pressure: 70.12},
	{Altitude: 4000, Pressure: 61.66},
}

// 水的饱和蒸气压，kPa
type WaterVaporPressure struct {
	Temp     float64 `json:"temp"`     // ℃
	Pressure float64 `json:"pressure"` // kPa
}

var WaterVaporPressures = []WaterVaporPressure{
	{Temp: 0, Pressure: 0.6113},
	{Temp: 5, Pressure: 0.8726},
	{Temp: 10, Pressure: 1.2281},
	{Temp: 15, Pressure: 1.7057},
	{Temp: 20, Pressure: 2.3392},
	{Temp: 25, Pressure: 3.1699},
	{Temp: 30, Pressure: 4.2470},
	{Temp: 40, Pressure: 7.3849},
	{Temp: 50, Pressure: 12.352},
	{Temp: 60, Pressure: 19.946},
	{Temp: 70, Pressure: 31.201},
	{Temp: 80, Pressure: 47.414},
	{Temp: 90, Pressure: 70.182},
	{Temp: 100, Pressure: 101.42},
}

// 常见液体密度，kg/m³，常温
type LiquidDensity struct {
	Name    string  `json:"name"`
	Density float64 `json:"density"`
}

var LiquidDensities = []LiquidDensity{
	{Name: "水(20℃)", Density: 998},
	{Name: "海水", Density: 1025},
	{Name: "汽油", Density: 720},
	{Name: "柴油", Density: 840},
	{Name: "乙醇", Density: 789},
	{Name: "苯", Density: 876},
	{Name: "甲苯", Density: 867},
	{Name: "30%氢氧化钠溶液", Density: 1328},
	{Name: "98%硫酸", Density: 1836},
}

// 预置参考数据汇总，presets 消息的应答内容
type Presets struct {
	StandardAtmosphere  float64              `json:"standard_atmosphere"`
	AltitudePressures   []AltitudePressure   `json:"altitude_pressures"`
	WaterVaporPressures []WaterVaporPressure `json:"water_vapor_pressures"`
	LiquidDensities     []LiquidDensity      `json:"liquid_densities"`
	Refrigerants        []string             `json:"refrigerants"`
}
