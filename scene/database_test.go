package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edwinsyarief/position"
)

var origin = mgl32.Vec4{0, 0, 0, 1}

func at(x, y, z float32) mgl32.Vec4 { return mgl32.Vec4{x, y, z, 1} }

func TestNewObjectAndFind(t *testing.T) {
	db := New()
	world := db.NewObject(RootKey, "world")
	car := db.NewObject(world, "car")
	wheel := db.NewObject(car, "wheel")
	other := db.NewObject(RootKey, "other")

	tests := []struct {
		path string
		want Key
		ok   bool
	}{
		{"world", world, true},
		{"world/car", car, true},
		{"world/car/wheel", wheel, true},
		{"other", other, true},
		{"world/wheel", 0, false},
		{"missing", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := db.Find(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, []Key{world, other}, db.Children(RootKey))
	assert.Equal(t, "car", db.Name(car))
	assert.Equal(t, "base", db.Name(RootKey))
	assert.Equal(t, 4, db.Len())
	obj, ok := db.Object(wheel)
	require.True(t, ok)
	assert.Equal(t, Object{Parent: car, Name: "wheel"}, obj)
	assert.Panics(t, func() { db.NewObject(Key(99), "orphan") })
}

func TestLazyPositionAllocation(t *testing.T) {
	db := New()
	world := db.NewObject(RootKey, "world")
	car := db.NewObject(world, "car")
	wheel := db.NewObject(car, "wheel")

	_, ok := db.PositionID(wheel)
	assert.False(t, ok)
	assert.Equal(t, 1, db.Hierarchy().Len())

	db.UpdateLocation(wheel, position.Translation(0, 1, 0))

	// the wheel and each of its ancestors got exactly one node
	assert.Equal(t, 4, db.Hierarchy().Len())
	wid, ok := db.PositionID(wheel)
	require.True(t, ok)
	cid, ok := db.PositionID(car)
	require.True(t, ok)
	assert.Equal(t, uint32(3), wid.Generation)
	assert.Equal(t, cid, db.Hierarchy().Parent(wid))

	db.UpdateLocation(car, position.Translation(5, 0, 0))
	db.UpdateLocation(wheel, position.Translation(0, 2, 0))
	assert.Equal(t, 4, db.Hierarchy().Len())

	loc, ok := db.Location(wheel)
	require.True(t, ok)
	assert.Equal(t, position.Translation(0, 2, 0), loc)
	assert.Equal(t, at(5, 2, 0), db.WorldMatrix(wheel).Mul4x1(origin))
	assert.Equal(t, at(5, 2, 0), db.Flatten().WorldMatrix(wid).Mul4x1(origin))
	assert.Panics(t, func() { db.UpdateLocation(Key(42), position.Identity()) })
}

func TestWorldMatrixFallsBackToAncestor(t *testing.T) {
	db := New()
	arm := db.NewObject(RootKey, "arm")
	hand := db.NewObject(arm, "hand")
	finger := db.NewObject(hand, "finger")

	assert.Equal(t, mgl32.Ident4(), db.WorldMatrix(finger))
	db.UpdateLocation(arm, position.Translation(1, 2, 3))
	assert.Equal(t, at(1, 2, 3), db.WorldMatrix(finger).Mul4x1(origin))
	assert.Equal(t, mgl32.Ident4(), db.WorldMatrix(Key(1000)))
	_, ok := db.Location(finger)
	assert.False(t, ok)
}

func TestCloneIsolation(t *testing.T) {
	db := New()
	box := db.NewObject(RootKey, "box")
	db.UpdateLocation(box, position.Translation(1, 0, 0))

	snap := db.Clone()
	frozen := snap.Flatten()
	id, _ := snap.PositionID(box)

	db.UpdateLocation(box, position.Translation(9, 0, 0))
	ball := db.NewObject(box, "ball")
	db.UpdateLocation(ball, position.Translation(0, 1, 0))

	assert.Equal(t, at(1, 0, 0), snap.WorldMatrix(box).Mul4x1(origin))
	assert.Equal(t, at(1, 0, 0), frozen.WorldMatrix(id).Mul4x1(origin))
	assert.Equal(t, 2, snap.Hierarchy().Len())
	_, ok := snap.Find("box/ball")
	assert.False(t, ok)
	assert.Equal(t, at(9, 1, 0), db.WorldMatrix(ball).Mul4x1(origin))
}
