package npsha

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tofu/model"
)

func baseParams() *model.NPSHaParams {
	// 20℃ 清水，标准大气压，静吸入 2 m，管路损失 0.5 m
	return &model.NPSHaParams{
		AtmosphericPressure: 101.325,
		VaporPressure:       2.34,
		StaticHead:          2,
		FrictionLoss:        0.5,
		Density:             998,
	}
}

func TestComputeTypical(t *testing.T) {
	result, err := Compute(baseParams(), 0)
	require.NoError(t, err)

	// (101325 - 2340) / (998 × 9.80665) + 2 - 0.5 = 11.614 m
	assert.InDelta(t, 11.614, result.Available, 0.001)
	assert.Nil(t, result.Margin)
	assert.Nil(t, result.Safe)
}

func TestMarginClassification(t *testing.T) {
	// 富余量 0.61 m ≥ 0.5 m，判定安全
	p := baseParams()
	required := 11.0
	p.RequiredNPSH = &required

	result, err := Compute(p, 0)
	require.NoError(t, err)
	require.NotNil(t, result.Margin)
	require.NotNil(t, result.Safe)
	assert.InDelta(t, result.Available-required, *result.Margin, 1e-9)
	assert.True(t, *result.Safe)

	// 富余量 0.31 m < 0.5 m，富余为正但不满足安全裕量
	required = 11.3
	result, err = Compute(p, 0)
	require.NoError(t, err)
	assert.Greater(t, *result.Margin, 0.0)
	assert.False(t, *result.Safe)
}

func TestCustomSafetyMargin(t *testing.T) {
	p := baseParams()
	required := 11.3
	p.RequiredNPSH = &required

	result, err := Compute(p, 0.2)
	require.NoError(t, err)
	assert.True(t, *result.Safe)
}

// 单调性：大气压和静吸入高度增大时 NPSHa 增大，
// 蒸气压和管路损失增大时 NPSHa 减小
func TestMonotonicity(t *testing.T) {
	base, err := Compute(baseParams(), 0)
	require.NoError(t, err)

	p := baseParams()
	p.AtmosphericPressure += 5
	higher, err := Compute(p, 0)
	require.NoError(t, err)
	assert.Greater(t, higher.Available, base.Available)

	p = baseParams()
	p.StaticHead += 1
	higher, err = Compute(p, 0)
	require.NoError(t, err)
	assert.Greater(t, higher.Available, base.Available)

	p = baseParams()
	p.VaporPressure += 5
	lower, err := Compute(p, 0)
	require.NoError(t, err)
	assert.Less(t, lower.Available, base.Available)

	p = baseParams()
	p.FrictionLoss += 1
	lower, err = Compute(p, 0)
	require.NoError(t, err)
	assert.Less(t, lower.Available, base.Available)
}

func TestVaporPressureAboveAtmosphericRejected(t *testing.T) {
	p := baseParams()
	p.VaporPressure = 120
	_, err := Compute(p, 0)
	assert.Error(t, err)
}

func TestNegativeStaticHead(t *testing.T) {
	// 液面低于泵中心线，倒灌高度为负
	p := baseParams()
	p.StaticHead = -3
	result, err := Compute(p, 0)
	require.NoError(t, err)
	assert.InDelta(t, 11.614-5, result.Available, 0.001)
}

func TestPresetsTable(t *testing.T) {
	// 静态参考数据抽查
	assert.Equal(t, 101.325, StandardAtmosphere)

	var water20 float64
	for _, row := range WaterVaporPressures {
		if row.Temp == 20 {
			water20 = row.Pressure
		}
	}
	assert.InDelta(t, 2.339, water20, 0.001)
}
