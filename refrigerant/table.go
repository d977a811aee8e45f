package refrigerant

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"math"

	log "github.com/sirupsen/logrus"

	"tofu/model"
)

// 基于饱和物性表线性插值的数据源实现
// 过热区采用定压比热近似：h = hg + cp·ΔT，s = sg + cp·ln(T/Tsat)
// 工程计算中该近似在常用过热度范围内误差可以接受

// 饱和物性表的一行
type SatRow struct {
	Temp     float64 `json:"temp"`     // 饱和温度，℃
	Pressure float64 `json:"pressure"` // 饱和压力，kPa
	Hf       float64 `json:"hf"`       // 饱和液体焓，kJ/kg
	Hg       float64 `json:"hg"`       // 饱和蒸气焓，kJ/kg
	Sg       float64 `json:"sg"`       // 饱和蒸气熵，kJ/(kg·K)
}

type Table struct {
	Refrigerant string   `json:"refrigerant"`
	CpVapor     float64  `json:"cp_vapor"`  // 蒸气定压比热，kJ/(kg·K)
	CpLiquid    float64  `json:"cp_liquid"` // 液体定压比热，kJ/(kg·K)
	Rows        []SatRow `json:"rows"`      // 按温度升序
}

func (t *Table) Name() string { return t.Refrigerant }

// 在饱和表内按温度插值，列选择函数 pick 取出待插值的列
func (t *Table) interpolate(temp string, tv float64, pick func(r SatRow) float64) (float64, error) {
	rows := t.Rows
	if tv < rows[0].Temp || tv > rows[len(rows)-1].Temp {
		return 0, model.OutOfRange(temp, "%s 物性表温度范围为 [%g, %g]℃，实际为 %g℃",
			t.Refrigerant, rows[0].Temp, rows[len(rows)-1].Temp, tv)
	}
	for i := 1; i < len(rows); i++ {
		if tv <= rows[i].Temp {
			lo, hi := rows[i-1], rows[i]
			ratio := (tv - lo.Temp) / (hi.Temp - lo.Temp)
			return pick(lo) + ratio*(pick(hi)-pick(lo)), nil
		}
	}
	return pick(rows[len(rows)-1]), nil
}

func (t *Table) SaturationPressure(tv float64) (float64, error) {
	return t.interpolate("temperature", tv, func(r SatRow) float64 { return r.Pressure })
}

func (t *Table) LiquidEnthalpy(tv float64) (float64, error) {
	return t.interpolate("temperature", tv, func(r SatRow) float64 { return r.Hf })
}

func (t *Table) VaporEnthalpy(tv float64) (float64, error) {
	return t.interpolate("temperature", tv, func(r SatRow) float64 { return r.Hg })
}

func (t *Table) VaporEntropy(tv float64) (float64, error) {
	return t.interpolate("temperature", tv, func(r SatRow) float64 { return r.Sg })
}

func (t *Table) SuperheatedEnthalpy(tSat, superheat float64) (float64, error) {
	hg, err := t.VaporEnthalpy(tSat)
	if err != nil {
		return 0, err
	}
	return hg + t.CpVapor*superheat, nil
}

func (t *Table) SuperheatedEntropy(tSat, superheat float64) (float64, error) {
	sg, err := t.VaporEntropy(tSat)
	if err != nil {
		return 0, err
	}
	tk := tSat + 273.15
	return sg + t.CpVapor*math.Log((tk+superheat)/tk), nil
}

func (t *Table) SubcooledEnthalpy(tSat, subcooling float64) (float64, error) {
	hf, err := t.LiquidEnthalpy(tSat)
	if err != nil {
		return 0, err
	}
	return hf - t.CpLiquid*subcooling, nil
}

// 等熵压缩出口焓
// 由 s = sg(Tc) + cp·ln(T/Tc) 反解出口温度，再求焓
func (t *Table) IsentropicDischargeEnthalpy(tCond, entropy float64) (float64, error) {
	sg, err := t.VaporEntropy(tCond)
	if err != nil {
		return 0, err
	}
	hg, err := t.VaporEnthalpy(tCond)
	if err != nil {
		return 0, err
	}
	tck := tCond + 273.15
	// 入口熵低于冷凝饱和蒸气熵时压缩终点落入两相区，按饱和蒸气处理
	if entropy <= sg {
		return hg, nil
	}
	tk := tck * math.Exp((entropy-sg)/t.CpVapor)
	return hg + t.CpVapor*(tk-tck), nil
}

// 校验一张物性表是否可用
func (t *Table) check() error {
	if t.Refrigerant == "" {
		return fmt.Errorf("物性表缺少制冷剂编号")
	}
	if len(t.Rows) < 2 {
		return fmt.Errorf("%s 物性表至少需要两行", t.Refrigerant)
	}
	if t.CpVapor <= 0 || t.CpLiquid <= 0 {
		return fmt.Errorf("%s 物性表比热必须为正", t.Refrigerant)
	}
	for i := 1; i < len(t.Rows); i++ {
		if t.Rows[i].Temp <= t.Rows[i-1].Temp {
			return fmt.Errorf("%s 物性表温度必须严格升序", t.Refrigerant)
		}
	}
	return nil
}

// 从 JSON 文件加载额外的制冷剂物性表并注册
// 文件内容为 Table 数组，格式见 conf/refrigerants.json 示例
func LoadFromJSON(path string) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return fmt.Errorf("读取物性表文件失败: %w", err)
	}
	var tables []*Table
	if err = json.Unmarshal(data, &tables); err != nil {
		return fmt.Errorf("解析物性表文件失败: %w", err)
	}
	for _, t := range tables {
		if err = t.check(); err != nil {
			return err
		}
		Register(t)
		log.WithFields(log.Fields{"refrigerant": t.Refrigerant, "rows": len(t.Rows)}).Info("加载制冷剂物性表")
	}
	return nil
}
