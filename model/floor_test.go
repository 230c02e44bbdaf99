package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jay1247sjh/SmartMall-sub005/geometry"
)

func testFloor(t *testing.T) *Floor {
	t.Helper()
	f, err := NewFloor("Ground", 1, rect(0, 0, 100, 100))
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func mustArea(t *testing.T, name string, typ AreaType, shape geometry.Polygon) *Area {
	t.Helper()
	a, err := NewArea(name, typ, shape)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestAddArea(t *testing.T) {
	f := testFloor(t)

	warnings, err := f.AddArea(mustArea(t, "Unit 1", Retail, rect(10, 10, 30, 30)))
	if err != nil {
		t.Fatalf("AddArea: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	// Overlapping sibling warns but is placed.
	warnings, err = f.AddArea(mustArea(t, "Unit 2", Food, rect(20, 20, 40, 40)))
	if err != nil {
		t.Fatalf("AddArea: %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("got warnings %v, want exactly 1", warnings)
	}
	if len(f.Areas) != 2 {
		t.Errorf("floor has %d areas, want 2", len(f.Areas))
	}

	// Outside the outline is blocking.
	if _, err := f.AddArea(mustArea(t, "Unit 3", Retail, rect(90, 90, 120, 120))); err == nil {
		t.Error("AddArea accepted a shape outside the outline")
	}
	if len(f.Areas) != 2 {
		t.Errorf("rejected area was placed anyway")
	}
}

func TestRemoveAreaAndLookup(t *testing.T) {
	f := testFloor(t)
	a := mustArea(t, "Unit 1", Retail, rect(10, 10, 30, 30))
	if _, err := f.AddArea(a); err != nil {
		t.Fatal(err)
	}

	if got := f.AreaByID(a.ID); got != a {
		t.Error("AreaByID missed a placed area")
	}
	if f.AreaByID("nope") != nil {
		t.Error("AreaByID invented an area")
	}

	if !f.RemoveArea(a.ID) {
		t.Error("RemoveArea missed a placed area")
	}
	if f.RemoveArea(a.ID) {
		t.Error("RemoveArea removed twice")
	}
}

func TestSiblingShapes(t *testing.T) {
	f := testFloor(t)
	a := mustArea(t, "Unit 1", Retail, rect(10, 10, 30, 30))
	b := mustArea(t, "Unit 2", Food, rect(40, 40, 60, 60))
	f.AddArea(a)
	f.AddArea(b)

	sibs := f.SiblingShapes(a.ID)
	if len(sibs) != 1 {
		t.Fatalf("got %d siblings, want 1", len(sibs))
	}
	if sibs[0].Vertices[0] != (geometry.Point{X: 40, Y: 40}) {
		t.Errorf("wrong sibling returned: %+v", sibs[0].Vertices[0])
	}
}

func TestPlanRoundTrip(t *testing.T) {
	plan := NewPlan("Westfield Demo")
	f := testFloor(t)
	f.AddArea(mustArea(t, "Unit 1", Retail, rect(10, 10, 30, 30)))
	plan.Floors = append(plan.Floors, f)

	path := filepath.Join(t.TempDir(), "plan.json")
	if err := SavePlan(path, plan); err != nil {
		t.Fatalf("SavePlan: %v", err)
	}

	loaded, err := LoadPlan(path)
	if err != nil {
		t.Fatalf("LoadPlan: %v", err)
	}
	if loaded.Name != plan.Name || loaded.ID != plan.ID {
		t.Errorf("plan header changed: %+v", loaded)
	}
	if len(loaded.Floors) != 1 || len(loaded.Floors[0].Areas) != 1 {
		t.Fatalf("plan contents lost: %+v", loaded)
	}
	got := loaded.Floors[0].Areas[0]
	if got.Type != Retail || got.Area != 400 {
		t.Errorf("area round-trip = type %s area %v, want retail 400", got.Type, got.Area)
	}
	if fl := loaded.FloorByLevel(1); fl == nil || fl.Name != "Ground" {
		t.Error("FloorByLevel missed the ground floor")
	}

	if _, err := LoadPlan(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("LoadPlan succeeded on a missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(bad, []byte("{nope"), 0644)
	if _, err := LoadPlan(bad); err == nil {
		t.Error("LoadPlan succeeded on malformed JSON")
	}
}

func TestParseAreaType(t *testing.T) {
	if typ, err := ParseAreaType("escalator"); err != nil || typ != Escalator {
		t.Errorf("ParseAreaType(escalator) = %v, %v", typ, err)
	}
	if _, err := ParseAreaType("atrium"); err == nil {
		t.Error("ParseAreaType accepted an unknown value")
	}
	if !Retail.IsShopType() || Corridor.IsShopType() {
		t.Error("IsShopType misclassified")
	}
	if Escalator.Color() == "" || Escalator.DisplayName() == "" {
		t.Error("missing display metadata")
	}
}
