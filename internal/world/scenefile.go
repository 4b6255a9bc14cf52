package world

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"planarmirror/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// --- JSON types ---

type SceneFile struct {
	Name    string      `json:"name,omitempty"`
	Objects []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	Name       string           `json:"name"`
	Parent     string           `json:"parent,omitempty"`
	Tags       []string         `json:"tags,omitempty"`
	Active     *bool            `json:"active,omitempty"`
	Position   [3]float32       `json:"position"`
	Rotation   [3]float32       `json:"rotation"`
	Scale      [3]float32       `json:"scale"`
	Components []map[string]any `json:"components"`
}

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Pink":      rl.Pink,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"Magenta":   rl.Magenta,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
}

var nameByColor map[rl.Color]string

func init() {
	nameByColor = make(map[rl.Color]string, len(colorByName))
	for name, c := range colorByName {
		nameByColor[c] = name
	}
}

// colorKeys are component fields that may hold a color name instead of an
// RGBA array.
var colorKeys = []string{"color", "tint", "ambient"}

// expandColors rewrites color names into the RGBA arrays components decode.
func expandColors(data map[string]any) {
	for _, key := range colorKeys {
		name, ok := data[key].(string)
		if !ok {
			continue
		}
		c, ok := colorByName[name]
		if !ok {
			c = rl.White
		}
		data[key] = []any{float64(c.R), float64(c.G), float64(c.B), float64(c.A)}
	}
}

// nameColors is the reverse of expandColors for saving.
func nameColors(data map[string]any) {
	for _, key := range colorKeys {
		rgba, ok := data[key].([4]uint8)
		if !ok {
			continue
		}
		if name, ok := nameByColor[rl.Color{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}]; ok {
			data[key] = name
		}
	}
}

// --- Loading ---

// ReadSceneFile reads and parses a scene file without building it.
func ReadSceneFile(path string) (*SceneFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}

	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return &sf, nil
}

// BuildScene creates the objects and components of sf. Unknown component
// types are logged and skipped. References between objects (parents,
// reflection normals) are resolved by name.
func BuildScene(sf *SceneFile) (*engine.Scene, error) {
	name := sf.Name
	if name == "" {
		name = "Main"
	}
	scene := engine.NewScene(name)

	byName := make(map[string]*engine.GameObject, len(sf.Objects))
	for i, objDef := range sf.Objects {
		if objDef.Name == "" {
			return nil, fmt.Errorf("build scene: object %d has no name", i)
		}
		g := engine.NewGameObject(objDef.Name)
		g.Tags = objDef.Tags
		if objDef.Active != nil {
			g.Active = *objDef.Active
		}
		g.Transform.Position = rl.Vector3{X: objDef.Position[0], Y: objDef.Position[1], Z: objDef.Position[2]}
		g.Transform.Rotation = rl.Vector3{X: objDef.Rotation[0], Y: objDef.Rotation[1], Z: objDef.Rotation[2]}

		// Default scale to 1 if zero
		if objDef.Scale == [3]float32{} {
			g.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
		} else {
			g.Transform.Scale = rl.Vector3{X: objDef.Scale[0], Y: objDef.Scale[1], Z: objDef.Scale[2]}
		}

		for _, data := range objDef.Components {
			typeName, _ := data["type"].(string)
			expandColors(data)
			comp := engine.CreateComponent(typeName, data)
			if comp == nil {
				log.Printf("Scene %s: unknown component %q on %s", name, typeName, objDef.Name)
				continue
			}
			g.AddComponent(comp)
		}

		if _, dup := byName[objDef.Name]; !dup {
			byName[objDef.Name] = g
		}
		scene.AddGameObject(g)
	}

	for _, objDef := range sf.Objects {
		if objDef.Parent == "" {
			continue
		}
		parent, ok := byName[objDef.Parent]
		if !ok {
			return nil, fmt.Errorf("build scene: %s: unknown parent %q", objDef.Name, objDef.Parent)
		}
		parent.AddChild(byName[objDef.Name])
	}

	return scene, nil
}

// --- Saving ---

// EncodeScene turns the visible objects of scene back into a SceneFile.
// Engine-owned hidden objects are skipped.
func EncodeScene(scene *engine.Scene) *SceneFile {
	sf := &SceneFile{Name: scene.Name}

	for _, g := range scene.GameObjects {
		if g.Hidden {
			continue
		}

		objDef := ObjectDef{
			Name:     g.Name,
			Tags:     g.Tags,
			Position: [3]float32{g.Transform.Position.X, g.Transform.Position.Y, g.Transform.Position.Z},
			Rotation: [3]float32{g.Transform.Rotation.X, g.Transform.Rotation.Y, g.Transform.Rotation.Z},
			Scale:    [3]float32{g.Transform.Scale.X, g.Transform.Scale.Y, g.Transform.Scale.Z},
		}
		if g.Parent != nil {
			objDef.Parent = g.Parent.Name
		}
		if !g.Active {
			inactive := false
			objDef.Active = &inactive
		}

		for _, c := range g.Components() {
			s, ok := c.(engine.Serializable)
			if !ok {
				continue
			}
			data := s.Serialize()
			data["type"] = s.TypeName()
			nameColors(data)
			objDef.Components = append(objDef.Components, data)
		}

		sf.Objects = append(sf.Objects, objDef)
	}
	return sf
}

// SaveScene writes scene as indented JSON.
func SaveScene(scene *engine.Scene, path string) error {
	data, err := json.MarshalIndent(EncodeScene(scene), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}

	return nil
}
