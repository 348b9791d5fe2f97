package spyce

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleCfg = `// Kerbin and a moon, trimmed.
SYSTEM
{
	name = sample

	BODY
	{
		name = Kerbin
		radius = 600000 // meters
		ORBIT
		{
			semi_major_axis = 13599840256
			eccentricity = 0
		}
		tag = first
		tag = second
	}
	BODY {
		name = Mun
		radius = 200000
	}
}
`

func TestParseConfig(t *testing.T) {
	root, err := ParseConfig(strings.NewReader(sampleCfg))
	require.NoError(t, err)

	system, ok := root.Node("SYSTEM")
	require.True(t, ok)
	name, ok := system.Get("name")
	require.True(t, ok)
	require.Equal(t, "sample", name)

	require.Len(t, system.Nodes("BODY"), 2)

	kerbin, ok := system.NodeNamed("BODY", "Kerbin")
	require.True(t, ok)
	radius, err := kerbin.Float("radius") // the trailing comment is stripped
	require.NoError(t, err)
	require.Equal(t, 600000.0, radius)
	require.Equal(t, []string{"first", "second"}, kerbin.GetAll("tag"))
	require.Equal(t, []string{"name", "radius", "ORBIT", "tag", "tag"}, kerbin.Keys())

	orbit, ok := kerbin.Node("ORBIT")
	require.True(t, ok)
	sma, err := orbit.Int("semi_major_axis")
	require.NoError(t, err)
	require.EqualValues(t, 13599840256, sma)

	mun, ok := system.NodeNamed("BODY", "Mun") // brace trailing the block name
	require.True(t, ok)
	r2, err := mun.Float("radius")
	require.NoError(t, err)
	require.Equal(t, 200000.0, r2)

	_, ok = system.NodeNamed("BODY", "Duna")
	require.False(t, ok)
	_, ok = system.Node("name") // a scalar is not a block
	require.False(t, ok)
	_, ok = system.Get("BODY") // a block is not a scalar
	require.False(t, ok)
}

func TestParseConfigErrors(t *testing.T) {
	cases := []struct {
		name, text, wantInMsg string
	}{
		{"orphan open", "{\n", "line 1"},
		{"unbalanced close", "SYSTEM\n{\n}\n}\n", "line 4"},
		{"unclosed block", "SYSTEM\n{\n", "unclosed"},
		{"dangling name", "SYSTEM\n", "never opened"},
		{"name then entry", "SYSTEM\nfoo = bar\n", "never opened"},
		{"two words", "SYSTEM EXTRA\n{\n}\n", "line 1"},
		{"entry without key", "SYSTEM\n{\n= 4\n}\n", "line 3"},
	}
	for _, tc := range cases {
		_, err := ParseConfig(strings.NewReader(tc.text))
		require.ErrorIs(t, err, ErrMalformedConfig, tc.name)
		require.Contains(t, err.Error(), tc.wantInMsg, tc.name)
	}
}

func TestConfigNodeMissing(t *testing.T) {
	root, err := ParseConfig(strings.NewReader("N\n{\nx = hello\n}\n"))
	require.NoError(t, err)
	n, ok := root.Node("N")
	require.True(t, ok)
	_, err = n.Float("x")
	require.ErrorIs(t, err, ErrMalformedConfig)
	_, err = n.Int("x")
	require.ErrorIs(t, err, ErrMalformedConfig)
	_, err = n.Float("missing")
	require.ErrorIs(t, err, ErrMalformedConfig)
	require.Nil(t, n.GetAll("missing"))
	require.Empty(t, n.Nodes("missing"))
}
