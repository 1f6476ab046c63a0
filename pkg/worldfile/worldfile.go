// Package worldfile loads declarative world definitions from YAML files.
// A world file describes the static side of a game — objects, verb
// registrations, initial globals — and is applied to a Game during the setup
// phase. Action handlers are code and stay in Go; a definition can only name
// things.
package worldfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/crystal-mush/gozif/pkg/game"
	"github.com/crystal-mush/gozif/pkg/world"
)

// ObjectDef is one object entry. Entries carry their own id so the file's
// order is preserved: sibling order in the world follows definition order.
type ObjectDef struct {
	ID         string         `yaml:"id"`
	Parent     string         `yaml:"parent"`
	Desc       string         `yaml:"desc"`
	LDesc      string         `yaml:"ldesc"`
	FDesc      string         `yaml:"fdesc"`
	Synonyms   []string       `yaml:"synonyms"`
	Adjectives []string       `yaml:"adjectives"`
	Flags      []string       `yaml:"flags"`
	Size       int            `yaml:"size"`
	Properties map[string]any `yaml:"properties"`
}

// Definition is a parsed world file.
type Definition struct {
	Name    string            `yaml:"name"`
	Start   string            `yaml:"start"`
	Globals map[string]any    `yaml:"globals"`
	Verbs   map[string]string `yaml:"verbs"`
	Objects []ObjectDef       `yaml:"objects"`
}

// Load reads and parses a world file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("worldfile: read %s: %w", path, err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("worldfile: parse %s: %w", path, err)
	}
	return def, nil
}

// Parse parses and validates a world definition.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, err
	}
	if err := def.validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

func (d *Definition) validate() error {
	ids := make(map[string]bool, len(d.Objects))
	for i, obj := range d.Objects {
		if obj.ID == "" {
			return fmt.Errorf("object %d has no id", i)
		}
		if ids[obj.ID] {
			return fmt.Errorf("object %q defined twice", obj.ID)
		}
		ids[obj.ID] = true
	}
	for _, obj := range d.Objects {
		if obj.Parent != "" && !ids[obj.Parent] && obj.Parent != string(game.PlayerID) {
			return fmt.Errorf("object %q has unknown parent %q", obj.ID, obj.Parent)
		}
	}
	if d.Start != "" && !ids[d.Start] {
		return fmt.Errorf("start room %q is not defined", d.Start)
	}
	return nil
}

// Apply populates a game from the definition: objects in file order, then
// verb registrations, then global overrides. It does not move the player;
// starting the game at d.Start is the front-end's call.
func (d *Definition) Apply(g *game.Game) {
	for _, obj := range d.Objects {
		flags := make([]world.Flag, len(obj.Flags))
		for i, f := range obj.Flags {
			flags[i] = world.Flag(f)
		}
		g.World.Define(world.ObjID(obj.ID), world.Options{
			Parent:     world.ObjID(obj.Parent),
			Desc:       obj.Desc,
			LDesc:      obj.LDesc,
			FDesc:      obj.FDesc,
			Synonyms:   obj.Synonyms,
			Adjectives: obj.Adjectives,
			Flags:      flags,
			Size:       obj.Size,
			Props:      obj.Properties,
		})
	}
	for name, tag := range d.Verbs {
		g.RegisterVerb(name, tag)
	}
	for name, value := range d.Globals {
		g.SetG(name, value)
	}
}
