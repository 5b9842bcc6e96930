package engine

import "github.com/chazu/carve/pkg/kernel"

// NamedSolid pairs a scene entry's user-assigned name with the solid the
// script built for it.
type NamedSolid struct {
	Name  string
	Solid kernel.Solid
}

// Scene is the output of one evaluation: the solids the script registered
// with (defsolid ...), in registration order. Redefining a name replaces
// the solid but keeps the entry's original position.
type Scene struct {
	Solids []NamedSolid
}

// Add registers a solid under name, replacing any existing entry with the
// same name.
func (sc *Scene) Add(name string, s kernel.Solid) {
	for i := range sc.Solids {
		if sc.Solids[i].Name == name {
			sc.Solids[i].Solid = s
			return
		}
	}
	sc.Solids = append(sc.Solids, NamedSolid{Name: name, Solid: s})
}

// Lookup returns the solid registered under name, or nil.
func (sc *Scene) Lookup(name string) kernel.Solid {
	for i := range sc.Solids {
		if sc.Solids[i].Name == name {
			return sc.Solids[i].Solid
		}
	}
	return nil
}

// Len returns the number of registered solids.
func (sc *Scene) Len() int {
	return len(sc.Solids)
}
