package refrigerant

// 内置常用制冷剂饱和物性表，取自常用工程手册，-40℃ ~ 50℃，步长 10℃
// 基准态：-40℃ 饱和液体焓为 0

var r134a = &Table{
	Refrigerant: "R134a",
	CpVapor:     0.90,
	CpLiquid:    1.40,
	Rows: []SatRow{
		{Temp: -40, Pressure: 51.2, Hf: 0.00, Hg: 225.86, Sg: 0.9687},
		{Temp: -30, Pressure: 84.4, Hf: 12.49, Hg: 231.62, Sg: 0.9559},
		{Temp: -20, Pressure: 132.7, Hf: 25.49, Hg: 237.24, Sg: 0.9457},
		{Temp: -10, Pressure: 200.6, Hf: 38.76, Hg: 242.71, Sg: 0.9377},
		{Temp: 0, Pressure: 292.8, Hf: 52.32, Hg: 247.98, Sg: 0.9315},
		{Temp: 10, Pressure: 414.6, Hf: 66.18, Hg: 253.01, Sg: 0.9268},
		{Temp: 20, Pressure: 571.7, Hf: 80.40, Hg: 257.73, Sg: 0.9234},
		{Temp: 30, Pressure: 770.2, Hf: 95.03, Hg: 262.06, Sg: 0.9209},
		{Temp: 40, Pressure: 1017.0, Hf: 110.19, Hg: 265.91, Sg: 0.9190},
		{Temp: 50, Pressure: 1318.1, Hf: 126.05, Hg: 269.14, Sg: 0.9175},
	},
}

var r22 = &Table{
	Refrigerant: "R22",
	CpVapor:     0.74,
	CpLiquid:    1.26,
	Rows: []SatRow{
		{Temp: -40, Pressure: 104.9, Hf: 0.00, Hg: 233.18, Sg: 1.0002},
		{Temp: -30, Pressure: 163.5, Hf: 11.05, Hg: 237.98, Sg: 0.9770},
		{Temp: -20, Pressure: 245.3, Hf: 22.53, Hg: 242.46, Sg: 0.9574},
		{Temp: -10, Pressure: 354.8, Hf: 34.25, Hg: 246.57, Sg: 0.9405},
		{Temp: 0, Pressure: 498.0, Hf: 46.39, Hg: 250.24, Sg: 0.9256},
		{Temp: 10, Pressure: 681.2, Hf: 58.97, Hg: 253.42, Sg: 0.9124},
		{Temp: 20, Pressure: 910.9, Hf: 72.03, Hg: 256.02, Sg: 0.9002},
		{Temp: 30, Pressure: 1192.1, Hf: 85.66, Hg: 257.94, Sg: 0.8888},
		{Temp: 40, Pressure: 1533.5, Hf: 99.97, Hg: 259.04, Sg: 0.8777},
		{Temp: 50, Pressure: 1942.3, Hf: 115.14, Hg: 259.12, Sg: 0.8662},
	},
}

// 氨
var r717 = &Table{
	Refrigerant: "R717",
	CpVapor:     2.40,
	CpLiquid:    4.70,
	Rows: []SatRow{
		{Temp: -40, Pressure: 71.7, Hf: 0.0, Hg: 1390.6, Sg: 5.9589},
		{Temp: -30, Pressure: 119.5, Hf: 44.7, Hg: 1405.6, Sg: 5.7744},
		{Temp: -20, Pressure: 190.2, Hf: 89.8, Hg: 1419.3, Sg: 5.6049},
		{Temp: -10, Pressure: 290.9, Hf: 135.4, Hg: 1431.7, Sg: 5.4478},
		{Temp: 0, Pressure: 429.4, Hf: 181.2, Hg: 1442.6, Sg: 5.3013},
		{Temp: 10, Pressure: 615.1, Hf: 227.6, Hg: 1451.8, Sg: 5.1637},
		{Temp: 20, Pressure: 857.5, Hf: 274.9, Hg: 1459.0, Sg: 5.0333},
		{Temp: 30, Pressure: 1167.0, Hf: 323.1, Hg: 1463.9, Sg: 4.9086},
		{Temp: 40, Pressure: 1554.9, Hf: 372.6, Hg: 1466.0, Sg: 4.7881},
		{Temp: 50, Pressure: 2033.1, Hf: 423.8, Hg: 1465.2, Sg: 4.6700},
	},
}

func init() {
	Register(r134a)
	Register(r22)
	Register(r717)
}
