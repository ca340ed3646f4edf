package pointcloud

import (
	"fmt"
	"math"
	"sort"

	"github.com/golang/geo/r3"
	"github.com/samber/lo"

	"go.viam.com/beaconmap/utils"
)

// Key is a point rounded to the closest integer on every axis. Points measured through different
// chains of transforms differ by tiny float errors; rounding lets them compare equal when they
// describe the same physical location.
type Key struct {
	X, Y, Z int
}

// NewKey rounds each component of p to the nearest integer, halves away from zero.
func NewKey(p r3.Vector) Key {
	return Key{X: int(math.Round(p.X)), Y: int(math.Round(p.Y)), Z: int(math.Round(p.Z))}
}

// Vector returns the key as a float vector.
func (k Key) Vector() r3.Vector {
	return r3.Vector{X: float64(k.X), Y: float64(k.Y), Z: float64(k.Z)}
}

func (k Key) String() string {
	return fmt.Sprintf("(%d,%d,%d)", k.X, k.Y, k.Z)
}

func (k Key) less(other Key) bool {
	if k.X != other.X {
		return k.X < other.X
	}
	if k.Y != other.Y {
		return k.Y < other.Y
	}
	return k.Z < other.Z
}

// ManhattanDistance returns the sum of the absolute axis differences between a and b.
func ManhattanDistance(a, b Key) int {
	return utils.AbsInt(a.X-b.X) + utils.AbsInt(a.Y-b.Y) + utils.AbsInt(a.Z-b.Z)
}

// KeySet is a set of rounded points. The zero value is not usable; use NewKeySet.
type KeySet struct {
	keys map[Key]struct{}
}

// NewKeySet returns a set holding the rounded form of each of the given points.
func NewKeySet(points ...r3.Vector) KeySet {
	ks := KeySet{keys: make(map[Key]struct{}, len(points))}
	for _, p := range points {
		ks.Add(p)
	}
	return ks
}

// Add rounds p and inserts it. It returns false if an equal key was already present.
func (ks KeySet) Add(p r3.Vector) bool {
	return ks.AddKey(NewKey(p))
}

// AddKey inserts k. It returns false if k was already present.
func (ks KeySet) AddKey(k Key) bool {
	if _, ok := ks.keys[k]; ok {
		return false
	}
	ks.keys[k] = struct{}{}
	return true
}

// Has returns whether the rounded form of p is in the set.
func (ks KeySet) Has(p r3.Vector) bool {
	_, ok := ks.keys[NewKey(p)]
	return ok
}

// HasKey returns whether k is in the set.
func (ks KeySet) HasKey(k Key) bool {
	_, ok := ks.keys[k]
	return ok
}

// Len returns the number of distinct keys.
func (ks KeySet) Len() int {
	return len(ks.keys)
}

// Sorted returns the keys ordered by X, then Y, then Z.
func (ks KeySet) Sorted() []Key {
	keys := lo.Keys(ks.keys)
	sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })
	return keys
}

// Equal returns whether both sets hold exactly the same keys.
func (ks KeySet) Equal(other KeySet) bool {
	if ks.Len() != other.Len() {
		return false
	}
	for k := range ks.keys {
		if !other.HasKey(k) {
			return false
		}
	}
	return true
}
