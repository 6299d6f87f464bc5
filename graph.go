package territories

import (
	"fmt"
	"sort"
)

// ContainmentGraph answers parent/children/contains queries over the static
// territory hierarchy. A code may have several parents (a country belongs
// to both a continental region and a political union), so the structure is
// a general DAG rather than a tree. Immutable after construction.
type ContainmentGraph struct {
	children map[Code][]Code
	parents  map[Code][]Code
}

// newContainmentGraph builds the forward table and the reverse child->parents
// index from the declared entries. Every code referenced by an edge must be
// present in universe; dangling references fail construction.
func newContainmentGraph(entries []ContainmentEntry, universe map[Code]struct{}) (*ContainmentGraph, error) {
	graph := &ContainmentGraph{
		children: make(map[Code][]Code, len(entries)),
		parents:  make(map[Code][]Code),
	}

	for _, entry := range entries {
		parent := Normalize(string(entry.Parent))
		if parent == "" {
			return nil, fmt.Errorf("territories: containment entry with empty parent code")
		}
		if _, exists := graph.children[parent]; exists {
			return nil, fmt.Errorf("territories: duplicate containment entry for %q", parent)
		}
		if len(universe) > 0 {
			if _, ok := universe[parent]; !ok {
				return nil, fmt.Errorf("territories: containment parent %q is not a known territory", parent)
			}
		}

		children := make([]Code, 0, len(entry.Children))
		for _, rawChild := range entry.Children {
			child := Normalize(string(rawChild))
			if child == "" {
				return nil, fmt.Errorf("territories: %q declares an empty child code", parent)
			}
			if len(universe) > 0 {
				if _, ok := universe[child]; !ok {
					return nil, fmt.Errorf("territories: %q declares unknown child %q", parent, child)
				}
			}
			children = append(children, child)
			graph.parents[child] = append(graph.parents[child], parent)
		}

		graph.children[parent] = children
	}

	for child, parents := range graph.parents {
		sort.Slice(parents, func(i, j int) bool { return parents[i] < parents[j] })
		deduped := parents[:0]
		var last Code
		for i, parent := range parents {
			if i > 0 && parent == last {
				continue
			}
			deduped = append(deduped, parent)
			last = parent
		}
		graph.parents[child] = deduped
	}

	return graph, nil
}

// Children returns the declared child list of code, in source order.
func (g *ContainmentGraph) Children(code Code) ([]Code, error) {
	if g == nil {
		return nil, notFoundf("no children declared for %q", code)
	}

	children, ok := g.children[code]
	if !ok {
		return nil, notFoundf("no children declared for %q", code)
	}

	out := make([]Code, len(children))
	copy(out, children)
	return out, nil
}

// Parents returns every territory that declares code as a child, sorted.
func (g *ContainmentGraph) Parents(code Code) ([]Code, error) {
	if g == nil {
		return nil, notFoundf("%q is not contained by any territory", code)
	}

	parents, ok := g.parents[code]
	if !ok {
		return nil, notFoundf("%q is not contained by any territory", code)
	}

	out := make([]Code, len(parents))
	copy(out, parents)
	return out, nil
}

// Contains reports whether parent directly declares child. It does not
// recurse; callers needing transitive containment walk Children themselves.
// Unknown parents yield false, never an error.
func (g *ContainmentGraph) Contains(parent, child Code) bool {
	if g == nil {
		return false
	}

	for _, candidate := range g.children[parent] {
		if candidate == child {
			return true
		}
	}
	return false
}

// ParentCodes returns every code that declares at least one child, sorted.
func (g *ContainmentGraph) ParentCodes() []Code {
	if g == nil || len(g.children) == 0 {
		return nil
	}

	out := make([]Code, 0, len(g.children))
	for code := range g.children {
		out = append(out, code)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
