package engine

// GameObjectRef is a reference to another GameObject, by UID once bound and
// by name while it is still unresolved (e.g. straight out of a scene file).
//
// Example:
//
//	type Mirror struct {
//	    engine.BaseComponent
//	    Normal engine.GameObjectRef
//	}
//
//	func (m *Mirror) Update(dt float32) {
//	    if n := m.Normal.Get(m.GetGameObject().Scene); n != nil {
//	        // use n.Forward()
//	    }
//	}
type GameObjectRef struct {
	UID  uint64 // 0 = unbound
	Name string // used to bind on first successful lookup
}

// Get resolves the reference. Returns nil for an empty reference, a nil
// scene, or a target that no longer exists.
func (r *GameObjectRef) Get(scene *Scene) *GameObject {
	if scene == nil {
		return nil
	}
	if r.UID != 0 {
		return scene.FindByUID(r.UID)
	}
	if r.Name == "" {
		return nil
	}
	g := scene.FindByName(r.Name)
	if g != nil {
		r.UID = g.UID
	}
	return g
}

// IsValid reports whether the reference points at something.
// It does not check that the target still exists.
func (r GameObjectRef) IsValid() bool {
	return r.UID != 0 || r.Name != ""
}

// Set points the reference at g. Pass nil to clear it.
func (r *GameObjectRef) Set(g *GameObject) {
	if g == nil {
		r.Clear()
		return
	}
	r.UID = g.UID
	r.Name = g.Name
}

func (r *GameObjectRef) Clear() {
	r.UID = 0
	r.Name = ""
}
