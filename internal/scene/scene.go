// Package scene is the renderer/scene host: an ordered set of positioned
// objects, a perspective camera and an optional background image. Renderers
// for the terminal and the desktop window consume it through Renderer.
package scene

import "github.com/vovakirdan/ringrun/internal/backdrop"

// Renderer draws a scene as seen by a camera.
type Renderer interface {
	Render(s *Scene, cam *Camera)
}

// Scene holds the objects to draw, in insertion order.
type Scene struct {
	objects    []*Object
	background *backdrop.Image
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{objects: make([]*Object, 0, 8)}
}

// Add appends an object. Nil objects and objects already present are ignored.
func (s *Scene) Add(obj *Object) {
	if obj == nil || s.indexOf(obj) >= 0 {
		return
	}
	s.objects = append(s.objects, obj)
}

// Remove deletes an object. Removing an absent object is a no-op.
func (s *Scene) Remove(obj *Object) {
	i := s.indexOf(obj)
	if i < 0 {
		return
	}
	s.objects = append(s.objects[:i], s.objects[i+1:]...)
}

func (s *Scene) indexOf(obj *Object) int {
	for i, o := range s.objects {
		if o == obj {
			return i
		}
	}
	return -1
}

// Has reports whether obj is currently part of the scene.
func (s *Scene) Has(obj *Object) bool {
	return s.indexOf(obj) >= 0
}

// Objects returns the live objects. The slice must not be modified.
func (s *Scene) Objects() []*Object {
	return s.objects
}

// Len returns the number of objects in the scene.
func (s *Scene) Len() int {
	return len(s.objects)
}

// Count returns how many objects of the given shape are in the scene.
func (s *Scene) Count(shape Shape) int {
	n := 0
	for _, o := range s.objects {
		if o.Shape == shape {
			n++
		}
	}
	return n
}

// Background returns the background image, or nil.
func (s *Scene) Background() *backdrop.Image {
	return s.background
}

// SetBackground replaces the background image. Nil clears it.
func (s *Scene) SetBackground(img *backdrop.Image) {
	s.background = img
}
