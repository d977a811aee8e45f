package refrigerant

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// 制冷剂物性数据源的接口定义
// 循环算法只依赖该接口，新增制冷剂或接入其他物性库时不需要改动循环算法

type PropertySource interface {
	// 制冷剂编号
	Name() string

	// 饱和压力，kPa
	SaturationPressure(t float64) (float64, error)

	// 饱和液体焓，kJ/kg
	LiquidEnthalpy(t float64) (float64, error)

	// 饱和蒸气焓，kJ/kg
	VaporEnthalpy(t float64) (float64, error)

	// 饱和蒸气熵，kJ/(kg·K)
	VaporEntropy(t float64) (float64, error)

	// 过热蒸气焓，tSat 为饱和温度，superheat 为过热度
	SuperheatedEnthalpy(tSat, superheat float64) (float64, error)

	// 过热蒸气熵
	SuperheatedEntropy(tSat, superheat float64) (float64, error)

	// 过冷液体焓，tSat 为饱和温度，subcooling 为过冷度
	SubcooledEnthalpy(tSat, subcooling float64) (float64, error)

	// 等熵压缩到冷凝压力后的出口焓，entropy 为入口熵
	IsentropicDischargeEnthalpy(tCond, entropy float64) (float64, error)
}

var (
	mu       sync.RWMutex
	registry = map[string]PropertySource{}
)

// 注册一种制冷剂，编号不区分大小写，重复注册以后者为准
func Register(s PropertySource) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToUpper(s.Name())] = s
}

// 按编号获取制冷剂物性数据源
func Lookup(name string) (PropertySource, error) {
	mu.RLock()
	defer mu.RUnlock()
	s, ok := registry[strings.ToUpper(name)]
	if !ok {
		return nil, fmt.Errorf("未收录的制冷剂: %s", name)
	}
	return s, nil
}

// 已收录的制冷剂编号列表
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for _, s := range registry {
		names = append(names, s.Name())
	}
	sort.Strings(names)
	return names
}
