package app

import (
	"github.com/irfansharif/kurs/internal/geom"
	"github.com/irfansharif/kurs/internal/raster"
	"github.com/irfansharif/kurs/internal/shape"
)

// ObjectID uniquely identifies an object within a scene.
type ObjectID int

// Object is a shape placed in the scene.
type Object struct {
	ID    ObjectID
	Shape shape.Shape
}

// Scene holds the editor's objects in insertion (paint) order: later
// objects are drawn over earlier ones.
type Scene struct {
	objects []*Object
	nextID  ObjectID
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// Add appends s on top of the scene.
func (sc *Scene) Add(s shape.Shape) *Object {
	obj := &Object{ID: sc.nextID, Shape: s}
	sc.objects = append(sc.objects, obj)
	sc.nextID++
	return obj
}

// Remove removes an object by ID.
func (sc *Scene) Remove(id ObjectID) bool {
	for i, obj := range sc.objects {
		if obj.ID == id {
			sc.objects = append(sc.objects[:i], sc.objects[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the object with the given ID, or nil.
func (sc *Scene) Get(id ObjectID) *Object {
	for _, obj := range sc.objects {
		if obj.ID == id {
			return obj
		}
	}
	return nil
}

// Clear removes every object. IDs are not reused.
func (sc *Scene) Clear() {
	sc.objects = nil
}

func (sc *Scene) Len() int { return len(sc.objects) }

// Objects returns the objects bottom to top.
func (sc *Scene) Objects() []*Object {
	out := make([]*Object, len(sc.objects))
	copy(out, sc.objects)
	return out
}

// HitTest returns the topmost object under p, or nil. Objects are tried in
// reverse insertion order so recently drawn objects win overlaps.
func (sc *Scene) HitTest(p geom.Point, tol float64) *Object {
	for i := len(sc.objects) - 1; i >= 0; i-- {
		if shape.Hit(sc.objects[i].Shape, p, tol) {
			return sc.objects[i]
		}
	}
	return nil
}

// Render paints every object into buf, bottom to top.
func (sc *Scene) Render(buf *raster.Buffer) {
	for _, obj := range sc.objects {
		obj.Shape.Draw(buf)
	}
}
