package demo_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sghaida/patterns/demo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_OrderAndLookup(t *testing.T) {
	t.Parallel()

	demos := demo.Registry()
	require.Len(t, demos, 3)
	assert.Equal(t, "prototype", demos[0].Name)
	assert.Equal(t, "singleton", demos[1].Name)
	assert.Equal(t, "proxy", demos[2].Name)

	d, ok := demo.ByName("proxy")
	require.True(t, ok)
	assert.Equal(t, "proxy", d.Name)
	assert.NotEmpty(t, d.Summary)
	require.NotNil(t, d.Run)

	_, ok = demo.ByName("decorator")
	assert.False(t, ok)
}

func TestPrototypeDemo_Lines(t *testing.T) {
	t.Parallel()

	d, ok := demo.ByName("prototype")
	require.True(t, ok)

	lines, err := d.Run(demo.DefaultScript())
	require.NoError(t, err)

	assert.Equal(t, []string{
		`species "Dog" defines: speak`,
		"Rex says Woof!",
		"Fido says Woof!",
		`added "fetch" to "Dog" after the instances existed`,
		`Rex masters "fetch"`,
		`Fido masters "fetch"`,
		`species "SuperDog" extends "Dog"`,
		"Krypto takes off!",
		"Krypto says Woof!",
		`lookup "teleport": prototype: member "teleport" not found on "SuperDog" or its ancestors`,
	}, lines)
}

// The singleton demo reports deltas, so its output is identical no matter how
// much the process-wide counter moved before.
func TestSingletonDemo_LinesAreStable(t *testing.T) {
	// Not parallel: the demo moves the process-wide counter.
	d, ok := demo.ByName("singleton")
	require.True(t, ok)

	want := []string{
		"handle constructed once, frozen: true",
		"second construction attempt: singleton: handle already constructed, use GetInstance",
		"applied 3 increments and 1 decrements: net change +2",
		`override attempt on "increment" accepted: false`,
		"increment still behaves: +1",
	}

	first, err := d.Run(demo.DefaultScript())
	require.NoError(t, err)
	assert.Equal(t, want, first)

	second, err := d.Run(demo.DefaultScript())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestProxyDemo_Lines(t *testing.T) {
	t.Parallel()

	d, ok := demo.ByName("proxy")
	require.True(t, ok)

	lines, err := d.Run(demo.DefaultScript())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"target starts as name=John Doe age=42",
		`tracing read: the value of "age" is 42`,
		`tracing read: the key "height" does not exist`,
		`write age="33": rejected: only numeric values are allowed for "age", got string`,
		`write age=33: applied: changed "age" from 42 to 33`,
		`write name="J": rejected: "name" must be at least 2 characters long`,
		`write name="Thanos": applied: changed "name" from John Doe to Thanos`,
		"target ends as name=Thanos age=33",
	}, lines)
}

func TestRunner_PlainOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := demo.NewRunner(&buf, demo.WithPlain(true))

	require.NoError(t, r.Run(demo.DefaultScript(), "proxy"))

	out := buf.String()
	assert.Contains(t, out, "=== proxy: reads and writes mediated by an interception policy ===")
	assert.Contains(t, out, "target starts as name=John Doe age=42")
	assert.Contains(t, out, "target ends as name=Thanos age=33")
}

func TestRunner_AllDemosByDefault(t *testing.T) {
	// Not parallel: includes the singleton demo.
	var buf bytes.Buffer
	r := demo.NewRunner(&buf, demo.WithPlain(true))

	// nil script falls back to the default.
	require.NoError(t, r.Run(nil))

	out := buf.String()
	for _, d := range demo.Registry() {
		assert.Contains(t, out, "=== "+d.Name+":")
	}
}

func TestRunner_StyledBanner(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := demo.NewRunner(&buf, demo.WithWidth(40))

	require.NoError(t, r.Run(demo.DefaultScript(), "prototype"))
	assert.Contains(t, buf.String(), "prototype")
	assert.Contains(t, buf.String(), "shared-behavior delegation")
}

func TestRunner_UnknownDemo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := demo.NewRunner(&buf, demo.WithPlain(true))

	err := r.Run(demo.DefaultScript(), "decorator")
	require.Error(t, err)

	var unknown demo.UnknownDemoError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "decorator", unknown.Name)
	assert.Equal(t, `demo: unknown demo "decorator"`, err.Error())
	assert.Empty(t, buf.String())
}

func TestRunner_InvalidScript(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := demo.NewRunner(&buf, demo.WithPlain(true))

	bad := demo.DefaultScript()
	bad.Proxy.MinNameLen = 0

	err := r.Run(bad)
	require.Error(t, err)

	var invalid demo.InvalidScriptError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "proxy.min_name_len", invalid.Field)
}
