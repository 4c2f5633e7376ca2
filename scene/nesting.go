package scene

import (
	"github.com/meghashyamc/optics2d/component"
)

// UpdateOuterIndices gives every refractive body the index of the smallest zone that
// encloses it, or 1 when no zone does.
func (s *Scene) UpdateOuterIndices() {
	var zones []*component.RefractiveZone
	for _, obj := range s.objects {
		if z, ok := obj.(*component.RefractiveZone); ok {
			zones = append(zones, z)
		}
	}

	for _, obj := range s.objects {
		body, ok := obj.(component.Refractive)
		if !ok {
			continue
		}

		outer := 1.0
		var enclosing *component.RefractiveZone
		for _, z := range zones {
			if z.ID() == obj.ID() || !z.Box().ContainsBox(body.Box()) {
				continue
			}
			if enclosing == nil || z.Box().Area() < enclosing.Box().Area() {
				enclosing = z
			}
		}
		if enclosing != nil {
			outer = enclosing.RefractionIndex()
		}
		body.SetOuterIndex(outer)
	}
}
