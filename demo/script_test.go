package demo_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sghaida/patterns/demo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleScript = `
prototype:
  names: [Laika, Hachiko]
  new_trick: roll over
singleton:
  increments: 5
  decrements: 2
proxy:
  name: Jane Roe
  age: 30
  min_name_len: 3
`

func TestLoadScript(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleScript), 0o600))

	s, err := demo.LoadScript(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Laika", "Hachiko"}, s.Prototype.Names)
	assert.Equal(t, "roll over", s.Prototype.NewTrick)
	assert.Equal(t, 5, s.Singleton.Increments)
	assert.Equal(t, 2, s.Singleton.Decrements)
	assert.Equal(t, "Jane Roe", s.Proxy.Name)
	assert.Equal(t, 30, s.Proxy.Age)
	assert.Equal(t, 3, s.Proxy.MinNameLen)
}

func TestLoadScript_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := demo.LoadScript(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.ErrorContains(t, err, "read script")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("prototype: [not: a: mapping"), 0o600))

		_, err := demo.LoadScript(path)
		require.Error(t, err)
		assert.ErrorContains(t, err, "parse script")
	})

	t.Run("fails validation", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "invalid.yaml")
		require.NoError(t, os.WriteFile(path, []byte("prototype:\n  names: []\n"), 0o600))

		_, err := demo.LoadScript(path)
		require.Error(t, err)

		var invalid demo.InvalidScriptError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "prototype.names", invalid.Field)
	})
}

func TestScriptValidate_Table(t *testing.T) {
	t.Parallel()

	mutate := func(fn func(*demo.Script)) *demo.Script {
		s := demo.DefaultScript()
		fn(s)
		return s
	}

	cases := []struct {
		name      string
		script    *demo.Script
		wantField string
	}{
		{
			name:   "default script is valid",
			script: demo.DefaultScript(),
		},
		{
			name:      "no instance names",
			script:    mutate(func(s *demo.Script) { s.Prototype.Names = nil }),
			wantField: "prototype.names",
		},
		{
			name:      "blank instance name",
			script:    mutate(func(s *demo.Script) { s.Prototype.Names = []string{"Rex", ""} }),
			wantField: "prototype.names",
		},
		{
			name:      "empty trick",
			script:    mutate(func(s *demo.Script) { s.Prototype.NewTrick = "" }),
			wantField: "prototype.new_trick",
		},
		{
			name:      "negative increments",
			script:    mutate(func(s *demo.Script) { s.Singleton.Increments = -1 }),
			wantField: "singleton.increments",
		},
		{
			name:      "negative decrements",
			script:    mutate(func(s *demo.Script) { s.Singleton.Decrements = -2 }),
			wantField: "singleton.decrements",
		},
		{
			name:      "empty proxy name",
			script:    mutate(func(s *demo.Script) { s.Proxy.Name = "" }),
			wantField: "proxy.name",
		},
		{
			name:      "negative age",
			script:    mutate(func(s *demo.Script) { s.Proxy.Age = -1 }),
			wantField: "proxy.age",
		},
		{
			name:      "zero min name length",
			script:    mutate(func(s *demo.Script) { s.Proxy.MinNameLen = 0 }),
			wantField: "proxy.min_name_len",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.script.Validate()
			if tc.wantField == "" {
				require.NoError(t, err)
				return
			}

			var invalid demo.InvalidScriptError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tc.wantField, invalid.Field)
			assert.Contains(t, err.Error(), `demo: invalid script field "`+tc.wantField+`"`)
		})
	}
}
