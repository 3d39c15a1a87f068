package horoscope

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildSeed(t *testing.T) {
	require.Equal(t, Seed("2024-01-01|koc"), BuildSeed("2024-01-01", "koc"))
	require.Equal(t, Seed("2024-01-01|koc|love"), BuildSeed("2024-01-01", "koc", discriminatorLove))
	require.NotEqual(t, BuildSeed("2024-01-01", "koc", discriminatorMoney), BuildSeed("2024-01-01", "koc", discriminatorHealth))
}

func TestUniformPinnedValues(t *testing.T) {
	require.InDelta(t, 0.8326776844525425, Uniform("2024-01-01|koc"), 1e-15)
	require.InDelta(t, 0.13647846764337235, Uniform("2024-01-01|koc|love"), 1e-15)
}

func TestUniformRange(t *testing.T) {
	for _, sign := range Signs() {
		for _, d := range []string{"", discriminatorFocus, discriminatorAdvice, discriminatorLove, discriminatorMoney, discriminatorHealth} {
			seed := BuildSeed("2024-05-05", sign)
			if d != "" {
				seed = BuildSeed("2024-05-05", sign, d)
			}
			v := Uniform(seed)
			require.GreaterOrEqual(t, v, 0.0)
			require.Less(t, v, 1.0)
		}
	}
}

func TestUniformAvalanche(t *testing.T) {
	a := Uniform("2024-01-01|koc")
	b := Uniform("2024-01-01|kod")
	require.Greater(t, math.Abs(a-b), 1e-6)
}

func TestChooseIndex(t *testing.T) {
	cases := []struct {
		name   string
		sample float64
		n      int
		want   int
	}{
		{name: "zero", sample: 0, n: 5, want: 0},
		{name: "middle", sample: 0.5, n: 5, want: 2},
		{name: "just below one", sample: maxSample, n: 5, want: 4},
		{name: "exactly one clamps", sample: 1, n: 5, want: 4},
		{name: "negative clamps", sample: -0.1, n: 5, want: 0},
		{name: "single entry", sample: 0.99, n: 1, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ChooseIndex(tc.sample, tc.n)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestChooseIndexRejectsEmptyList(t *testing.T) {
	for _, n := range []int{0, -3} {
		_, err := ChooseIndex(0.5, n)
		require.ErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestScore(t *testing.T) {
	require.Equal(t, 0, Score(0))
	require.Equal(t, 50, Score(0.5))
	require.Equal(t, 100, Score(maxSample))
	require.Equal(t, 100, Score(1))
}

func TestScoreSpreadsAcrossRange(t *testing.T) {
	seen := make(map[int]struct{})
	for day := 1; day <= 28; day++ {
		for _, sign := range Signs() {
			date := DateStamp(mustDate(t, "2024-02-01").AddDate(0, 0, day-1), nil)
			seen[Score(Uniform(BuildSeed(date, sign, discriminatorLove)))] = struct{}{}
		}
	}
	require.Greater(t, len(seen), 50)
}
