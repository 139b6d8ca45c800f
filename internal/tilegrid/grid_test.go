package tilegrid

import "testing"

func TestOutOfBoundsIsVoid(t *testing.T) {
	g := New(10, 10)
	if got := g.Get(-1, 0).Kind; got != Void {
		t.Fatalf("expected Void, got %v", got)
	}
	if got := g.Get(100, 100).Kind; got != Void {
		t.Fatalf("expected Void, got %v", got)
	}
}

func TestWalkability(t *testing.T) {
	g := New(5, 5)
	g.Set(2, 2, Tile{Kind: Floor})
	if !g.IsWalkable(2, 2) {
		t.Fatal("floor should be walkable")
	}
	if g.IsWalkable(0, 0) {
		t.Fatal("void should not be walkable")
	}
}

func TestChestAndTrapStateIsPerCell(t *testing.T) {
	g := New(5, 5)
	g.Set(1, 1, Tile{Kind: Chest})
	g.Set(2, 2, Tile{Kind: Trap})

	g.OpenChest(1, 1)
	if !g.Get(1, 1).Opened {
		t.Fatal("chest should be opened")
	}
	if g.Get(2, 2).Opened {
		t.Fatal("trap should not be marked opened")
	}

	g.TriggerTrap(2, 2)
	if !g.Get(2, 2).Triggered {
		t.Fatal("trap should be triggered")
	}
}

func TestReachableFromFloodFill(t *testing.T) {
	g := New(5, 1)
	for x := 0; x < 5; x++ {
		g.Set(x, 0, Tile{Kind: Floor})
	}
	reach := g.ReachableFrom(0, 0)
	if len(reach) != 5 {
		t.Fatalf("expected 5 reachable tiles, got %d", len(reach))
	}
}

func TestReachableFromBlockedByWall(t *testing.T) {
	g := New(5, 1)
	g.Set(0, 0, Tile{Kind: Floor})
	g.Set(1, 0, Tile{Kind: Wall})
	g.Set(2, 0, Tile{Kind: Floor})
	reach := g.ReachableFrom(0, 0)
	if len(reach) != 1 {
		t.Fatalf("expected wall to block reachability, got %d reachable", len(reach))
	}
}
