// Package scene keeps the objects of a 2D optics scene and traces the rays of every
// source through them.
//
// A Scene is not safe for concurrent use.
package scene

import (
	"github.com/google/uuid"
	"github.com/meghashyamc/optics2d/component"
	"github.com/meghashyamc/optics2d/geometry"
	"github.com/meghashyamc/optics2d/logger"
)

const defaultMaxExtensions = 1000

type Scene struct {
	logger        logger.Logger
	maxExtensions int
	// objects are kept in insertion order, which is also the drawing order.
	objects []component.Object
	stats   Stats
}

type Option func(*Scene)

func WithLogger(l logger.Logger) Option {
	return func(s *Scene) {
		s.logger = l
	}
}

// WithMaxExtensions bounds how many times a single ray may be bent. Values below 1 are ignored.
func WithMaxExtensions(n int) Option {
	return func(s *Scene) {
		if n > 0 {
			s.maxExtensions = n
		}
	}
}

func New(opts ...Option) *Scene {
	s := &Scene{
		maxExtensions: defaultMaxExtensions,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.New()
	}
	return s
}

func (s *Scene) MaxExtensions() int {
	return s.maxExtensions
}

// Add stores obj under a fresh identifier and returns it.
func (s *Scene) Add(obj component.Object) uuid.UUID {
	id := uuid.New()
	obj.SetID(id)
	s.objects = append(s.objects, obj)
	s.logger.Debug("object added", "id", id.String(), "kind", obj.Kind().String())
	return id
}

func (s *Scene) Remove(id uuid.UUID) bool {
	for i, obj := range s.objects {
		if obj.ID() == id {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			s.logger.Debug("object removed", "id", id.String(), "kind", obj.Kind().String())
			return true
		}
	}
	return false
}

func (s *Scene) Get(id uuid.UUID) (component.Object, bool) {
	for _, obj := range s.objects {
		if obj.ID() == id {
			return obj, true
		}
	}
	return nil, false
}

func (s *Scene) Objects() []component.Object {
	return append([]component.Object(nil), s.objects...)
}

func (s *Scene) Sources() []*component.Source {
	var sources []*component.Source
	for _, obj := range s.objects {
		if src, ok := obj.(*component.Source); ok {
			sources = append(sources, src)
		}
	}
	return sources
}

// At returns the last added object containing p.
func (s *Scene) At(p geometry.Point) (component.Object, bool) {
	for i := len(s.objects) - 1; i >= 0; i-- {
		if s.objects[i].Contains(p) {
			return s.objects[i], true
		}
	}
	return nil, false
}

func (s *Scene) Len() int {
	return len(s.objects)
}
