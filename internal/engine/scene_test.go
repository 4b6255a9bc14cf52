package engine

import "testing"

func TestSceneAddGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Player")

	scene.AddGameObject(obj)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject, got %d", len(scene.GameObjects))
	}
	if obj.Scene != scene {
		t.Error("GameObject.Scene not set")
	}
	if scene.FindByUID(obj.UID) != obj {
		t.Error("FindByUID failed")
	}
	if scene.FindByUID(99999999) != nil {
		t.Error("FindByUID should return nil for non-existent UID")
	}
}

func TestSceneFindByNameAndTag(t *testing.T) {
	scene := NewScene("Test")
	mirror := NewGameObject("Mirror")
	mirror.Tags = []string{"reflective"}
	scene.AddGameObject(mirror)
	scene.AddGameObject(NewGameObject("Cube"))

	if scene.FindByName("Mirror") != mirror {
		t.Error("FindByName failed")
	}
	if scene.FindByName("DoesNotExist") != nil {
		t.Error("FindByName should return nil for non-existent name")
	}
	if got := scene.FindByTag("reflective"); len(got) != 1 {
		t.Errorf("Expected 1 tagged object, got %d", len(got))
	}
}

func TestSceneRemoveWithChildren(t *testing.T) {
	scene := NewScene("Test")
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")
	comp := &lifecycleComponent{}
	child.AddComponent(comp)

	scene.AddGameObject(parent)
	scene.AddGameObject(child)
	parent.AddChild(child)
	scene.Start()

	scene.RemoveGameObject(parent)

	if len(scene.GameObjects) != 0 {
		t.Errorf("Expected 0 GameObjects, got %d", len(scene.GameObjects))
	}
	if scene.FindByUID(child.UID) != nil {
		t.Error("Child still in UID map after removal")
	}
	if comp.destroys != 1 {
		t.Errorf("Expected child component destroyed once, got %d", comp.destroys)
	}
}

func TestSceneUIDMapInitialization(t *testing.T) {
	scene := &Scene{Name: "Bare"}
	obj := NewGameObject("Test")
	scene.AddGameObject(obj) // Should not panic

	if scene.FindByUID(obj.UID) != obj {
		t.Error("uidMap should be initialized on first AddGameObject")
	}
}

func TestSceneUnload(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Test")
	comp := &lifecycleComponent{}
	obj.AddComponent(comp)
	scene.AddGameObject(obj)
	scene.Start()

	scene.Unload()

	if len(scene.GameObjects) != 0 || comp.destroys != 1 {
		t.Errorf("Unload should destroy all objects, got %d left and %d destroys", len(scene.GameObjects), comp.destroys)
	}
}
