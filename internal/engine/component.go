package engine

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// Enabler is implemented by components that react to their GameObject being
// enabled or disabled. OnEnable also fires once when the object starts.
type Enabler interface {
	OnEnable()
	OnDisable()
}

// Destroyer is implemented by components that release resources when their
// GameObject is destroyed.
type Destroyer interface {
	OnDestroy()
}

// LookProvider is implemented by components that control camera look direction.
type LookProvider interface {
	GetLookDirection() (x, y, z float32)
	GetEyeHeight() float32
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}
