// Package mapkit provides utilities working with maps.
//
// The mapkit package is considered as a `lite` package,
// and therefore its dependencies are strictly restricted.
//
// None of the functions mutate the input map, they always return a new map.
// A nil input map results in a nil output map.
package mapkit

import (
	"go.llib.dev/pearls/pkg/errorkit"
	"go.llib.dev/pearls/pkg/must"
)

// ErrKeyCollision is returned by the Err variants,
// when two distinct keys are transformed into the same new key.
const ErrKeyCollision errorkit.Error = "ErrKeyCollision"

// MapVals will map the values of a map, while keeping the keys.
func MapVals[K comparable, OV, IV any](m map[K]IV, transform func(IV) OV) map[K]OV {
	return must.Must(MapValsErr(m, func(v IV) (OV, error) {
		return transform(v), nil
	}))
}

// MapValsErr is like MapVals, but the first error returned by the transform function aborts the mapping.
func MapValsErr[K comparable, OV, IV any](m map[K]IV, transform func(IV) (OV, error)) (map[K]OV, error) {
	return mapDict(m, identity[K], transform, false)
}

// MapKeys will map the keys of a map, while keeping the values.
//
// When the transform maps two distinct keys into the same key, the later write wins.
// Since map iteration order is unspecified, which value survives is unspecified as well.
// Use an injective transform, or MapKeysErr to detect collisions.
func MapKeys[OK, IK comparable, V any](m map[IK]V, transform func(IK) OK) map[OK]V {
	return must.Must(mapDict(m, func(k IK) (OK, error) {
		return transform(k), nil
	}, identity[V], false))
}

// MapKeysErr is like MapKeys, but it fails with ErrKeyCollision
// when two distinct keys are transformed into the same key.
func MapKeysErr[OK, IK comparable, V any](m map[IK]V, transform func(IK) (OK, error)) (map[OK]V, error) {
	return mapDict(m, transform, identity[V], true)
}

// MapDict maps both the keys and the values of a map in a single pass.
// It is equivalent to MapVals(MapKeys(m, keyTransform), valueTransform),
// and it shares the key collision behaviour of MapKeys.
func MapDict[OK comparable, OV any, IK comparable, IV any](
	m map[IK]IV,
	keyTransform func(IK) OK,
	valueTransform func(IV) OV,
) map[OK]OV {
	return must.Must(mapDict(m,
		func(k IK) (OK, error) { return keyTransform(k), nil },
		func(v IV) (OV, error) { return valueTransform(v), nil },
		false))
}

// MapDictErr is the failable version of MapDict.
// Key collisions are reported with ErrKeyCollision.
func MapDictErr[OK comparable, OV any, IK comparable, IV any](
	m map[IK]IV,
	keyTransform func(IK) (OK, error),
	valueTransform func(IV) (OV, error),
) (map[OK]OV, error) {
	return mapDict(m, keyTransform, valueTransform, true)
}

func mapDict[OK comparable, OV any, IK comparable, IV any](
	m map[IK]IV,
	keyTransform func(IK) (OK, error),
	valueTransform func(IV) (OV, error),
	strict bool,
) (map[OK]OV, error) {
	if m == nil {
		return nil, nil
	}
	var out = make(map[OK]OV, len(m))
	for ik, iv := range m {
		nk, err := keyTransform(ik)
		if err != nil {
			return nil, err
		}
		if _, exists := out[nk]; strict && exists {
			return nil, ErrKeyCollision.F("%v is mapped to an already used key: %v", ik, nk)
		}
		ov, err := valueTransform(iv)
		if err != nil {
			return nil, err
		}
		out[nk] = ov
	}
	return out, nil
}

func identity[T any](v T) (T, error) { return v, nil }
