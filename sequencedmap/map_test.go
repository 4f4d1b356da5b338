package sequencedmap_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theepicsaxguy/Mastowatch-sub001/sequencedmap"
)

func TestMap_Set_PreservesOrder_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		ops          [][2]any
		expectedKeys []string
		expectedVals []int
	}{
		{
			name:         "insertion order",
			ops:          [][2]any{{"c", 3}, {"a", 1}, {"b", 2}},
			expectedKeys: []string{"c", "a", "b"},
			expectedVals: []int{3, 1, 2},
		},
		{
			name:         "overwrite keeps original position",
			ops:          [][2]any{{"a", 1}, {"b", 2}, {"a", 10}},
			expectedKeys: []string{"a", "b"},
			expectedVals: []int{10, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := sequencedmap.New[string, int]()
			for _, op := range tt.ops {
				m.Set(op[0].(string), op[1].(int))
			}

			assert.Equal(t, tt.expectedKeys, slices.Collect(m.Keys()), "keys should be in insertion order")
			assert.Equal(t, tt.expectedVals, slices.Collect(m.Values()), "values should follow keys")
			assert.Equal(t, len(tt.expectedKeys), m.Len(), "overwrites should not add elements")
		})
	}
}

func TestMap_ZeroValue_Success(t *testing.T) {
	t.Parallel()

	var m sequencedmap.Map[string, string]
	m.Set("k", "v")

	v, ok := m.Get("k")
	require.True(t, ok, "zero value map should be usable after Set")
	assert.Equal(t, "v", v)
}

func TestMap_NilSafe_Success(t *testing.T) {
	t.Parallel()

	var m *sequencedmap.Map[string, int]

	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Has("a"))
	assert.Equal(t, 0, m.GetOrZero("a"))
	assert.Empty(t, slices.Collect(m.Keys()))
	assert.Empty(t, slices.Collect(m.Values()))
	m.Delete("a")

	data, err := m.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestMap_Delete_Success(t *testing.T) {
	t.Parallel()

	m := sequencedmap.New[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)
	m.Delete("b")
	m.Delete("missing")

	assert.Equal(t, []string{"a", "c"}, slices.Collect(m.Keys()))
	assert.False(t, m.Has("b"))

	m.Set("b", 4)
	assert.Equal(t, []string{"a", "c", "b"}, slices.Collect(m.Keys()), "re-added key should be appended")
}

func TestMap_All_StopsEarly_Success(t *testing.T) {
	t.Parallel()

	m := sequencedmap.New[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	var seen []string
	for k := range m.All() {
		seen = append(seen, k)
		if k == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestMap_MarshalJSON_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		build    func() *sequencedmap.Map[string, any]
		expected string
	}{
		{
			name:     "empty map",
			build:    func() *sequencedmap.Map[string, any] { return sequencedmap.New[string, any]() },
			expected: `{}`,
		},
		{
			name: "keeps order and nests",
			build: func() *sequencedmap.Map[string, any] {
				inner := sequencedmap.New[string, any]()
				inner.Set("z", 1)
				inner.Set("a", nil)

				m := sequencedmap.New[string, any]()
				m.Set("second", "x")
				m.Set("first", inner)
				m.Set("list", []any{true, "y"})
				return m
			},
			expected: `{"second":"x","first":{"z":1,"a":null},"list":[true,"y"]}`,
		},
		{
			name: "does not escape html",
			build: func() *sequencedmap.Map[string, any] {
				m := sequencedmap.New[string, any]()
				m.Set("content", "<p>a & b</p>")
				return m
			},
			expected: `{"content":"<p>a & b</p>"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			data, err := tt.build().MarshalJSON()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(data))
		})
	}
}

func TestMap_MarshalJSON_Error(t *testing.T) {
	t.Parallel()

	m := sequencedmap.New[string, any]()
	m.Set("ok", 1)
	m.Set("bad", make(chan int))

	_, err := m.MarshalJSON()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encoding member bad")
}
