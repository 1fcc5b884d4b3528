// Package catalog holds the canonical registry of exercises the gym
// supports, grouped by muscle group. The catalog is the source of truth for
// exercise validity: any exercise name not present here is rejected during
// plan validation.
package catalog

// Entry is a single cataloged exercise.
type Entry struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Group is a muscle group and its exercises.
type Group struct {
	MuscleGroup string  `json:"muscleGroup"`
	Exercises   []Entry `json:"exercises"`
}

// Catalog is an immutable set of exercise groups with constant-time name
// membership lookup. Names match case-sensitively.
type Catalog struct {
	groups  []Group
	byName  map[string]Entry
	byGroup map[string]string // exercise name -> muscle group
}

// New builds a Catalog from the given groups.
func New(groups []Group) *Catalog {
	c := &Catalog{
		groups:  groups,
		byName:  make(map[string]Entry),
		byGroup: make(map[string]string),
	}
	for _, g := range groups {
		for _, e := range g.Exercises {
			c.byName[e.Name] = e
			c.byGroup[e.Name] = g.MuscleGroup
		}
	}
	return c
}

// Default returns the built-in gym catalog.
func Default() *Catalog {
	return New(defaultGroups)
}

// Groups returns the catalog grouped by muscle group.
func (c *Catalog) Groups() []Group {
	return c.groups
}

// Contains reports whether name is a cataloged exercise (exact match).
func (c *Catalog) Contains(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Find returns the entry and its muscle group for a cataloged name.
func (c *Catalog) Find(name string) (Entry, string, bool) {
	e, ok := c.byName[name]
	if !ok {
		return Entry{}, "", false
	}
	return e, c.byGroup[name], true
}

// Names returns all cataloged exercise names in group order. Used to build
// the allowed-exercise list handed to the generation oracle.
func (c *Catalog) Names() []string {
	var names []string
	for _, g := range c.groups {
		for _, e := range g.Exercises {
			names = append(names, e.Name)
		}
	}
	return names
}

// Len returns the number of cataloged exercises.
func (c *Catalog) Len() int {
	return len(c.byName)
}
