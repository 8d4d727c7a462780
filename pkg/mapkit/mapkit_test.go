package mapkit_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"go.llib.dev/pearls/pkg/mapkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

func randomMap(t *testcase.T) map[string]int {
	var m = make(map[string]int)
	for _, k := range random.Slice(t.Random.IntBetween(0, 42), t.Random.String, random.UniqueValues) {
		m[k] = t.Random.Int()
	}
	return m
}

func ExampleMapVals() {
	var x = map[string]string{"a": "x", "b": "y", "c": "z"}

	x = mapkit.MapVals(x, strings.ToUpper)

	fmt.Printf("%#v\n", x) // map[string]string{"a": "X", "b": "Y", "c": "Z"}
}

func TestMapVals(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("smoke", func(t *testcase.T) {
		var x = map[string]int{"a": 1, "b": 2, "c": 3}
		got := mapkit.MapVals(x, strconv.Itoa)
		assert.Equal(t, map[string]string{"a": "1", "b": "2", "c": "3"}, got)
	})

	s.Test("key set is kept and every value is transformed", func(t *testcase.T) {
		m := randomMap(t)
		double := func(n int) int { return n * 2 }
		got := mapkit.MapVals(m, double)
		assert.Equal(t, len(m), len(got))
		for k, v := range m {
			gv, ok := got[k]
			assert.True(t, ok)
			assert.Equal(t, double(v), gv)
		}
	})

	s.Test("input is not mutated", func(t *testcase.T) {
		var x = map[string]int{"a": 1}
		_ = mapkit.MapVals(x, func(n int) int { return n + 1 })
		assert.Equal(t, map[string]int{"a": 1}, x)
	})

	s.Test("nil", func(t *testcase.T) {
		got := mapkit.MapVals(map[string]int(nil), strconv.Itoa)
		assert.True(t, got == nil)
	})
}

func TestMapValsErr(t *testing.T) {
	t.Run("happy", func(t *testing.T) {
		var x = map[string]string{"a": "1", "b": "2", "c": "3"}
		got, err := mapkit.MapValsErr(x, strconv.Atoi)
		assert.NoError(t, err)
		assert.Equal(t, map[string]int{"a": 1, "b": 2, "c": 3}, got)
	})
	t.Run("rainy", func(t *testing.T) {
		var x = map[string]string{"a": "1", "b": "two", "c": "3"}
		_, err := mapkit.MapValsErr(x, strconv.Atoi)
		assert.Error(t, err)
	})
}

func ExampleMapKeys() {
	var x = map[string]int{"a": 1, "b": 2}

	x = mapkit.MapKeys(x, strings.ToUpper)

	fmt.Printf("%#v\n", x) // map[string]int{"A": 1, "B": 2}
}

func TestMapKeys(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("smoke", func(t *testcase.T) {
		var x = map[int]string{1: "a", 2: "b"}
		got := mapkit.MapKeys(x, strconv.Itoa)
		assert.Equal(t, map[string]string{"1": "a", "2": "b"}, got)
	})

	s.Test("colliding keys keep one of the values", func(t *testcase.T) {
		var x = map[string]int{"a": 1, "A": 2, "b": 3}
		got := mapkit.MapKeys(x, strings.ToLower)
		assert.Equal(t, 2, len(got))
		assert.True(t, got["a"] == 1 || got["a"] == 2)
		assert.Equal(t, 3, got["b"])
	})

	s.Test("input is not mutated", func(t *testcase.T) {
		var x = map[string]int{"a": 1}
		_ = mapkit.MapKeys(x, strings.ToUpper)
		assert.Equal(t, map[string]int{"a": 1}, x)
	})
}

func TestMapKeysErr(t *testing.T) {
	upper := func(k string) (string, error) { return strings.ToUpper(k), nil }

	t.Run("happy", func(t *testing.T) {
		got, err := mapkit.MapKeysErr(map[string]int{"a": 1, "b": 2}, upper)
		assert.NoError(t, err)
		assert.Equal(t, map[string]int{"A": 1, "B": 2}, got)
	})
	t.Run("collision", func(t *testing.T) {
		_, err := mapkit.MapKeysErr(map[string]int{"a": 1, "A": 2}, upper)
		assert.ErrorIs(t, mapkit.ErrKeyCollision, err)
	})
	t.Run("transform error", func(t *testing.T) {
		_, err := mapkit.MapKeysErr(map[string]int{"x": 1}, func(k string) (int, error) {
			return strconv.Atoi(k)
		})
		assert.Error(t, err)
	})
}

func ExampleMapDict() {
	var x = map[string]int{"a": 1, "b": 2}

	got := mapkit.MapDict(x, strings.ToUpper, strconv.Itoa)

	fmt.Printf("%#v\n", got) // map[string]string{"A": "1", "B": "2"}
}

func TestMapDict(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("smoke", func(t *testcase.T) {
		var x = map[string]int{"a": 1, "b": 2}
		got := mapkit.MapDict(x, strings.ToUpper, strconv.Itoa)
		assert.Equal(t, map[string]string{"A": "1", "B": "2"}, got)
	})

	s.Test("equals MapKeys followed by MapVals", func(t *testcase.T) {
		m := randomMap(t)
		prefix := func(k string) string { return "key:" + k }
		double := func(n int) int { return n * 2 }

		exp := mapkit.MapVals(mapkit.MapKeys(m, prefix), double)
		got := mapkit.MapDict(m, prefix, double)
		assert.Equal(t, exp, got)
	})

	s.Test("nil", func(t *testcase.T) {
		got := mapkit.MapDict(map[string]int(nil), strings.ToUpper, strconv.Itoa)
		assert.True(t, got == nil)
	})
}

func TestMapDictErr(t *testing.T) {
	lower := func(k string) (string, error) { return strings.ToLower(k), nil }

	t.Run("happy", func(t *testing.T) {
		got, err := mapkit.MapDictErr(map[string]string{"A": "1", "B": "2"}, lower, strconv.Atoi)
		assert.NoError(t, err)
		assert.Equal(t, map[string]int{"a": 1, "b": 2}, got)
	})
	t.Run("value error", func(t *testing.T) {
		_, err := mapkit.MapDictErr(map[string]string{"A": "one"}, lower, strconv.Atoi)
		assert.Error(t, err)
	})
	t.Run("collision", func(t *testing.T) {
		_, err := mapkit.MapDictErr(map[string]string{"A": "1", "a": "2"}, lower, strconv.Atoi)
		assert.ErrorIs(t, mapkit.ErrKeyCollision, err)
	})
}
