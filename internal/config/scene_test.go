package config

import (
	"image/color"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	sc := Default()
	require.NoError(t, sc.Validate())
	assert.Equal(t, 20*time.Millisecond, sc.TickInterval())
	assert.Len(t, sc.Tanks, 4)
	for _, tank := range sc.Tanks {
		assert.Equal(t, float64(TankWidth), tank.Width)
		assert.Equal(t, float64(TankHeight), tank.Height)
	}
}

func TestLoad(t *testing.T) {
	for _, name := range []string{"cascade.toml", "cascade.yaml"} {
		t.Run(name, func(t *testing.T) {
			sc, err := Load(filepath.Join("testdata", name))
			require.NoError(t, err)

			assert.Equal(t, "Two stage", sc.Title)
			assert.Equal(t, 1.5, sc.FlowRate)
			assert.Equal(t, 40*time.Millisecond, sc.TickInterval())

			require.Len(t, sc.Tanks, 2)
			assert.Equal(t, "feed", sc.Tanks[0].Name)
			assert.Equal(t, 80.0, sc.Tanks[0].Initial)
			assert.Equal(t, 100.0, sc.Tanks[0].Capacity)
			assert.Equal(t, 50.0, sc.Tanks[1].Capacity)
			assert.Equal(t, float64(TankHeight), sc.Tanks[1].Height)

			require.Len(t, sc.Pipes, 1)
			assert.Equal(t, GateNotEmpty, sc.Pipes[0].Gate)
			assert.True(t, sc.Pipes[0].Heated)

			c, ok := sc.Tanks[1].LiquidColor()
			require.True(t, ok)
			assert.Equal(t, color.RGBA{R: 255, G: 100, B: 0, A: 255}, c)
			_, ok = sc.Tanks[0].LiquidColor()
			assert.False(t, ok)
		})
	}
}

func TestLoadReportsEveryProblem(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "broken.toml"))
	require.Error(t, err)
	for _, want := range []string{
		"flow_rate -1 is negative",
		`tank "a": initial 120 outside [0, 100]`,
		`tank "a" defined twice`,
		`color "not-a-colour"`,
		`unknown destination tank "ghost"`,
		`unknown gate "sometimes"`,
	} {
		assert.ErrorContains(t, err, want)
	}
}

func TestLoadRejectsNonFiniteNumbers(t *testing.T) {
	tests := []struct {
		file string
		want []string
	}{
		{
			file: "nonfinite.toml",
			want: []string{
				"flow_rate NaN is not a finite number",
				`tank "sink": x +Inf is not a finite number`,
				`tank "sink": capacity -Inf is not a finite number`,
			},
		},
		{
			file: "nonfinite.yaml",
			want: []string{
				"flow_rate NaN is not a finite number",
				`tank "sink": height +Inf is not a finite number`,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			_, err := Load(filepath.Join("testdata", tt.file))
			require.Error(t, err)
			for _, want := range tt.want {
				assert.ErrorContains(t, err, want)
			}
		})
	}
}

func TestValidateNaNInitial(t *testing.T) {
	sc := Default()
	sc.Tanks[0].Initial = math.NaN()
	assert.ErrorContains(t, sc.Validate(), `tank "Zbiornik 1": initial NaN is not a finite number`)
}

func TestLoadUnsupportedFormat(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "scene.json"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(filepath.Join("testdata", "missing.toml"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedFormat)
}

func TestValidateSelfFeedingPipe(t *testing.T) {
	sc := Default()
	sc.Pipes = append(sc.Pipes, PipeSpec{From: "Zbiornik 2", To: "Zbiornik 2", Gate: GateReserve})
	assert.ErrorContains(t, sc.Validate(), "feeds itself")
}

func TestValidateNoTanks(t *testing.T) {
	assert.ErrorContains(t, Scene{}.Validate(), "no tanks")
}
