// Package scene is the object database that sits on top of a position
// hierarchy: named objects arranged in a tree, each of which lazily gets a
// node in the hierarchy the first time it is given a location.
package scene

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/edwinsyarief/position"
)

// Key identifies an object. The zero Key is the implicit root object.
type Key uint32

// RootKey is the key of the implicit root object, named "base".
const RootKey Key = 0

// Object is one named entry of the database.
type Object struct {
	Parent Key
	Name   string
}

// Database maps named objects to position hierarchy nodes.
//
// Objects are allocated a node only when they are first located, under the
// node of their closest located ancestor (or the hierarchy root). Clone makes
// a cheap snapshot for another frame: the hierarchy is shared copy-on-write.
type Database struct {
	lastKey   Key
	objects   map[Key]Object
	children  map[Key][]Key       // sorted
	location  map[Key]position.ID // objects that own a hierarchy node
	positions *position.Shared
}

// New creates an empty database holding only the root object.
func New(opts ...position.Option) *Database {
	return &Database{
		objects:   make(map[Key]Object),
		children:  make(map[Key][]Key),
		location:  make(map[Key]position.ID),
		positions: position.Share(position.New(opts...)),
	}
}

// Clone returns a snapshot of the database. Mutating either copy does not
// affect the other. The hierarchy is only copied when one of them mutates it.
func (db *Database) Clone() *Database {
	children := make(map[Key][]Key, len(db.children))
	for k, v := range db.children {
		children[k] = slices.Clone(v)
	}
	return &Database{
		lastKey:   db.lastKey,
		objects:   maps.Clone(db.objects),
		children:  children,
		location:  maps.Clone(db.location),
		positions: db.positions.Clone(),
	}
}

// Release drops the database's reference to the shared hierarchy. The
// database must not be used afterwards.
func (db *Database) Release() {
	db.positions.Release()
}

// NewObject creates an object named name under parent and returns its key.
// It panics if parent does not exist.
func (db *Database) NewObject(parent Key, name string) Key {
	if !db.exists(parent) {
		panic(fmt.Sprintf("scene: unknown parent object %d", parent))
	}
	db.lastKey++
	key := db.lastKey
	db.objects[key] = Object{Parent: parent, Name: name}
	kids := db.children[parent]
	i, _ := slices.BinarySearch(kids, key)
	db.children[parent] = slices.Insert(kids, i, key)
	return key
}

// Object returns the object stored under key.
func (db *Database) Object(key Key) (Object, bool) {
	obj, ok := db.objects[key]
	return obj, ok
}

// Len returns the number of objects, not counting the root.
func (db *Database) Len() int { return len(db.objects) }

// Children returns the keys of key's direct children in ascending order.
func (db *Database) Children(key Key) []Key {
	return slices.Clone(db.children[key])
}

// Name returns the name of key, "base" for the root and for unknown keys.
func (db *Database) Name(key Key) string {
	if obj, ok := db.objects[key]; ok {
		return obj.Name
	}
	return "base"
}

// Find resolves a slash separated path of names, starting below the root.
func (db *Database) Find(path string) (Key, bool) {
	node := RootKey
	for name := range strings.SplitSeq(path, "/") {
		next, ok := db.child(node, name)
		if !ok {
			return 0, false
		}
		node = next
	}
	return node, true
}

func (db *Database) child(parent Key, name string) (Key, bool) {
	for _, k := range db.children[parent] {
		if db.objects[k].Name == name {
			return k, true
		}
	}
	return 0, false
}

// UpdateLocation sets the local transform of key relative to its parent,
// allocating a hierarchy node for it (and for any ancestor) on first use.
// It panics if key does not exist.
func (db *Database) UpdateLocation(key Key, t position.Transform) {
	if !db.exists(key) {
		panic(fmt.Sprintf("scene: unknown object %d", key))
	}
	id := db.positionID(key)
	db.positions.Mut().Update(id, t)
}

// Location returns the local transform of key, if it has been located.
func (db *Database) Location(key Key) (position.Transform, bool) {
	id, ok := db.PositionID(key)
	if !ok {
		return position.Transform{}, false
	}
	return db.positions.Get().Transform(id), true
}

// PositionID returns the hierarchy node of key, if it has been located.
// The root object always maps to the hierarchy root.
func (db *Database) PositionID(key Key) (position.ID, bool) {
	if key == RootKey {
		return position.Root(), true
	}
	id, ok := db.location[key]
	return id, ok
}

// WorldMatrix returns the world matrix of key. Objects that were never
// located take the matrix of their closest located ancestor, and the
// identity if there is none. Unknown keys also return the identity.
func (db *Database) WorldMatrix(key Key) mgl32.Mat4 {
	for key != RootKey {
		if id, ok := db.location[key]; ok {
			return db.positions.Get().WorldMatrix(id)
		}
		obj, ok := db.objects[key]
		if !ok {
			return mgl32.Ident4()
		}
		key = obj.Parent
	}
	return db.positions.Get().WorldMatrix(position.Root())
}

// Hierarchy returns a read-only view of the position hierarchy.
func (db *Database) Hierarchy() *position.Hierarchy {
	return db.positions.Get()
}

// Flatten resolves the world matrices of every located object.
func (db *Database) Flatten() position.Positions {
	return db.positions.Get().Flatten()
}

func (db *Database) exists(key Key) bool {
	if key == RootKey {
		return true
	}
	_, ok := db.objects[key]
	return ok
}

// positionID returns key's hierarchy node, inserting it with an identity
// transform under its parent's node when it has none yet.
func (db *Database) positionID(key Key) position.ID {
	if key == RootKey {
		return position.Root()
	}
	if id, ok := db.location[key]; ok {
		return id
	}
	pid := db.positionID(db.objects[key].Parent)
	id := db.positions.Mut().Insert(pid, position.Identity())
	db.location[key] = id
	position.Logger().Debug("scene: allocated position",
		slog.Uint64("key", uint64(key)),
		slog.String("id", id.String()))
	return id
}
