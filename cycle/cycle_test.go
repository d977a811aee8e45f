package cycle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tofu/model"
	"tofu/refrigerant"
)

func TestComputeRealTypical(t *testing.T) {
	// R134a 空调典型工况
	result, err := ComputeReal(&model.RealCycleParams{
		Refrigerant:          "R134a",
		EvaporatingTemp:      -10,
		CondensingTemp:       40,
		Subcooling:           5,
		Superheat:            5,
		MassFlowRate:         0.1,
		IsentropicEfficiency: 0.75,
	})
	require.NoError(t, err)

	assert.Equal(t, model.CycleModeReal, result.Mode)
	assert.Greater(t, result.Capacity, 0.0)
	assert.Greater(t, result.Work, result.IdealWork)
	assert.Greater(t, result.COP, 0.0)
	assert.Less(t, result.COP, 15.0)

	// 状态点焓值次序：h2 > h2s > h1 > h4
	assert.Greater(t, result.States.H2, result.States.H2s)
	assert.Greater(t, result.States.H2s, result.States.H1)
	assert.Greater(t, result.States.H1, result.States.H4)
	assert.Equal(t, result.States.H3, result.States.H4)

	// 冷凝压力高于蒸发压力
	assert.Greater(t, result.CondensingPress, result.EvaporatingPress)

	// 能量平衡：放热量 = 制冷量 + 实际压缩功
	assert.InDelta(t, result.Capacity+result.Work, result.HeatRejected, 1e-9)
}

// 对所有收录制冷剂和一组常见工况，COP 必须为正
func TestCOPPositiveAcrossOperatingRange(t *testing.T) {
	for _, name := range []string{"R134a", "R22", "R717"} {
		for _, tEvap := range []float64{-30, -20, -10, 0} {
			for _, tCond := range []float64{30, 40} {
				for _, eff := range []float64{0.6, 0.8, 1.0} {
					result, err := ComputeReal(&model.RealCycleParams{
						Refrigerant:          name,
						EvaporatingTemp:      tEvap,
						CondensingTemp:       tCond,
						Subcooling:           3,
						Superheat:            5,
						MassFlowRate:         0.2,
						IsentropicEfficiency: eff,
					})
					require.NoError(t, err, "%s Te=%g Tc=%g eff=%g", name, tEvap, tCond, eff)
					assert.Greater(t, result.COP, 0.0, "%s Te=%g Tc=%g eff=%g", name, tEvap, tCond, eff)
				}
			}
		}
	}
}

// 过冷过热为零的实际循环必须与理想循环结果一致
func TestIdealRealContinuity(t *testing.T) {
	ideal, err := ComputeIdeal(&model.IdealCycleParams{
		Refrigerant:          "R22",
		EvaporatingTemp:      -15,
		CondensingTemp:       35,
		MassFlowRate:         0.15,
		IsentropicEfficiency: 0.8,
	})
	require.NoError(t, err)

	real, err := ComputeReal(&model.RealCycleParams{
		Refrigerant:          "R22",
		EvaporatingTemp:      -15,
		CondensingTemp:       35,
		Subcooling:           0,
		Superheat:            0,
		MassFlowRate:         0.15,
		IsentropicEfficiency: 0.8,
	})
	require.NoError(t, err)

	assert.Equal(t, ideal.States, real.States)
	assert.Equal(t, ideal.Capacity, real.Capacity)
	assert.Equal(t, ideal.Work, real.Work)
	assert.Equal(t, ideal.COP, real.COP)
}

// 过冷增大制冷量，过热抬高吸气焓
func TestSubcoolingAndSuperheatEffects(t *testing.T) {
	base := &model.RealCycleParams{
		Refrigerant:          "R134a",
		EvaporatingTemp:      -10,
		CondensingTemp:       40,
		MassFlowRate:         0.1,
		IsentropicEfficiency: 0.8,
	}
	noOffset, err := ComputeReal(base)
	require.NoError(t, err)

	subcooled := *base
	subcooled.Subcooling = 8
	withSubcool, err := ComputeReal(&subcooled)
	require.NoError(t, err)
	assert.Greater(t, withSubcool.Capacity, noOffset.Capacity)

	superheated := *base
	superheated.Superheat = 8
	withSuperheat, err := ComputeReal(&superheated)
	require.NoError(t, err)
	assert.Greater(t, withSuperheat.States.H1, noOffset.States.H1)
}

func TestUnknownRefrigerant(t *testing.T) {
	_, err := ComputeIdeal(&model.IdealCycleParams{
		Refrigerant:          "R9999",
		EvaporatingTemp:      -10,
		CondensingTemp:       40,
		MassFlowRate:         0.1,
		IsentropicEfficiency: 0.8,
	})
	var oor *model.OutOfRangeError
	require.True(t, errors.As(err, &oor))
	assert.Equal(t, "refrigerant", oor.Field)
}

func TestTemperatureOutsideTable(t *testing.T) {
	_, err := ComputeIdeal(&model.IdealCycleParams{
		Refrigerant:          "R134a",
		EvaporatingTemp:      -10,
		CondensingTemp:       120, // 超出物性表范围
		MassFlowRate:         0.1,
		IsentropicEfficiency: 0.8,
	})
	require.Error(t, err)
	var oor *model.OutOfRangeError
	assert.True(t, errors.As(err, &oor))
}

// 压缩功非正时 COP 无定义，以错误返回
// 构造一张焓随温度下降的病态物性表触发该分支
func TestNonPositiveWorkIsUndefined(t *testing.T) {
	refrigerant.Register(&refrigerant.Table{
		Refrigerant: "RTEST-DEGENERATE",
		CpVapor:     1.0,
		CpLiquid:    2.0,
		Rows: []refrigerant.SatRow{
			{Temp: -40, Pressure: 100, Hf: 0, Hg: 300, Sg: 1.0},
			{Temp: 50, Pressure: 1000, Hf: 50, Hg: 200, Sg: 2.0},
		},
	})

	_, err := ComputeIdeal(&model.IdealCycleParams{
		Refrigerant:          "RTEST-DEGENERATE",
		EvaporatingTemp:      -10,
		CondensingTemp:       40,
		MassFlowRate:         0.1,
		IsentropicEfficiency: 0.8,
	})
	require.Error(t, err)
	var undef *model.UndefinedResultError
	assert.True(t, errors.As(err, &undef))
}
