package validator

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tofu/model"
)

func validRealParams() *model.RealCycleParams {
	return &model.RealCycleParams{
		Refrigerant:          "R134a",
		EvaporatingTemp:      -10,
		CondensingTemp:       40,
		Subcooling:           5,
		Superheat:            5,
		MassFlowRate:         0.1,
		IsentropicEfficiency: 0.75,
	}
}

func TestRealCycleValid(t *testing.T) {
	require.NoError(t, RealCycle(validRealParams()))
}

func TestRealCycleTemperatureRange(t *testing.T) {
	p := validRealParams()
	p.EvaporatingTemp = -300
	err := RealCycle(p)
	require.Error(t, err)

	var oor *model.OutOfRangeError
	require.True(t, errors.As(err, &oor))
	assert.Equal(t, "evaporating_temp", oor.Field)
}

func TestRealCycleCondensingMustExceedEvaporating(t *testing.T) {
	p := validRealParams()
	p.CondensingTemp = p.EvaporatingTemp
	err := RealCycle(p)
	require.Error(t, err)

	var oor *model.OutOfRangeError
	require.True(t, errors.As(err, &oor))
	assert.Equal(t, "condensing_temp", oor.Field)
}

func TestRealCycleEfficiencyBounds(t *testing.T) {
	p := validRealParams()
	p.IsentropicEfficiency = 0
	assert.Error(t, RealCycle(p))

	p.IsentropicEfficiency = 1.2
	assert.Error(t, RealCycle(p))

	p.IsentropicEfficiency = 1
	assert.NoError(t, RealCycle(p))
}

func TestRealCycleNaNIsMissing(t *testing.T) {
	p := validRealParams()
	p.MassFlowRate = math.NaN()
	err := RealCycle(p)
	require.Error(t, err)

	var missing *model.MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "mass_flow_rate", missing.Field)
}

func TestIdealCycleMissingRefrigerant(t *testing.T) {
	err := IdealCycle(&model.IdealCycleParams{
		EvaporatingTemp:      -10,
		CondensingTemp:       40,
		MassFlowRate:         0.1,
		IsentropicEfficiency: 0.8,
	})
	var missing *model.MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "refrigerant", missing.Field)
}

func TestNPSHa(t *testing.T) {
	p := &model.NPSHaParams{
		AtmosphericPressure: 101.325,
		VaporPressure:       2.34,
		StaticHead:          2,
		FrictionLoss:        0.5,
		Density:             998,
	}
	require.NoError(t, NPSHa(p))

	p.Density = 0
	assert.Error(t, NPSHa(p))

	p.Density = 998
	p.FrictionLoss = -1
	assert.Error(t, NPSHa(p))
}

func TestPressureDropModeRequired(t *testing.T) {
	p := &model.PressureDropParams{
		Mode:      "magic",
		Diameter:  0.1,
		Length:    100,
		FlowRate:  50,
		Density:   998,
		Viscosity: 1,
	}
	var missing *model.MissingFieldError
	require.True(t, errors.As(PressureDrop(p), &missing))

	p.Mode = model.FlowModeIncompressible
	assert.NoError(t, PressureDrop(p))
}
