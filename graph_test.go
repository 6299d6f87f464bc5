package territories

import (
	"errors"
	"reflect"
	"testing"
)

func buildTestGraph(t *testing.T) *ContainmentGraph {
	t.Helper()

	dataset := testDataset()
	attrs, err := newAttributeStore(dataset.Attributes)
	if err != nil {
		t.Fatalf("newAttributeStore: %v", err)
	}
	graph, err := newContainmentGraph(dataset.Containment, attrs.universe())
	if err != nil {
		t.Fatalf("newContainmentGraph: %v", err)
	}
	return graph
}

func TestGraphChildrenPreservesDeclaredOrder(t *testing.T) {
	graph := buildTestGraph(t)

	children, err := graph.Children("EU")
	if err != nil {
		t.Fatalf("Children(EU): %v", err)
	}

	want := []Code{"IE", "XA", "XB"}
	if !reflect.DeepEqual(children, want) {
		t.Fatalf("Children(EU) = %v, want %v", children, want)
	}
}

func TestGraphChildrenUnknownParent(t *testing.T) {
	graph := buildTestGraph(t)

	if _, err := graph.Children("GB"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Children(GB) err = %v, want ErrNotFound", err)
	}
}

func TestGraphParentsSortedAcrossMultipleParents(t *testing.T) {
	graph := buildTestGraph(t)

	parents, err := graph.Parents("IE")
	if err != nil {
		t.Fatalf("Parents(IE): %v", err)
	}

	want := []Code{"154", "EU"}
	if !reflect.DeepEqual(parents, want) {
		t.Fatalf("Parents(IE) = %v, want %v", parents, want)
	}
}

func TestGraphParentsUnknownChild(t *testing.T) {
	graph := buildTestGraph(t)

	if _, err := graph.Parents("150"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Parents(150) err = %v, want ErrNotFound", err)
	}
}

func TestGraphContains(t *testing.T) {
	graph := buildTestGraph(t)

	tests := []struct {
		name   string
		parent Code
		child  Code
		want   bool
	}{
		{name: "declared_edge", parent: "154", child: "GB", want: true},
		{name: "every_declared_child", parent: "EU", child: "XB", want: true},
		{name: "transitive_not_direct", parent: "150", child: "GB", want: false},
		{name: "unknown_parent", parent: "ZZ", child: "GB", want: false},
		{name: "unknown_child", parent: "154", child: "ZZ", want: false},
	}

	for _, tc := range tests {
		if got := graph.Contains(tc.parent, tc.child); got != tc.want {
			t.Fatalf("%s: Contains(%q, %q) = %v, want %v", tc.name, tc.parent, tc.child, got, tc.want)
		}
	}
}

func TestGraphRejectsDanglingChild(t *testing.T) {
	dataset := testDataset()
	dataset.Containment = append(dataset.Containment, ContainmentEntry{
		Parent:   "GB",
		Children: []Code{"ZZ"},
	})

	attrs, err := newAttributeStore(dataset.Attributes)
	if err != nil {
		t.Fatalf("newAttributeStore: %v", err)
	}
	if _, err := newContainmentGraph(dataset.Containment, attrs.universe()); err == nil {
		t.Fatal("expected dangling child to fail construction")
	}
}

func TestGraphRejectsUnknownParent(t *testing.T) {
	attrs, err := newAttributeStore(map[Code]AttributeRecord{"GB": {}})
	if err != nil {
		t.Fatalf("newAttributeStore: %v", err)
	}

	entries := []ContainmentEntry{{Parent: "QQ", Children: []Code{"GB"}}}
	if _, err := newContainmentGraph(entries, attrs.universe()); err == nil {
		t.Fatal("expected unknown parent to fail construction")
	}
}

func TestGraphNormalizesEntryCodes(t *testing.T) {
	attrs, err := newAttributeStore(map[Code]AttributeRecord{"EU": {}, "GB": {}})
	if err != nil {
		t.Fatalf("newAttributeStore: %v", err)
	}

	graph, err := newContainmentGraph([]ContainmentEntry{
		{Parent: "eu", Children: []Code{" gb "}},
	}, attrs.universe())
	if err != nil {
		t.Fatalf("newContainmentGraph: %v", err)
	}

	if !graph.Contains("EU", "GB") {
		t.Fatal("expected normalized edge EU contains GB")
	}
}

func TestGraphParentCodes(t *testing.T) {
	graph := buildTestGraph(t)

	want := []Code{"150", "154", "EU"}
	if got := graph.ParentCodes(); !reflect.DeepEqual(got, want) {
		t.Fatalf("ParentCodes() = %v, want %v", got, want)
	}
}
