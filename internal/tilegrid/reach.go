package tilegrid

// ReachableFrom returns the set of walkable tile coordinates reachable
// from (startX, startY) via 4-directional movement. Used to verify the
// generator's reachability invariant (spec §8).
func (g *Grid) ReachableFrom(startX, startY int) map[[2]int]bool {
	visited := make(map[[2]int]bool)
	if !g.IsWalkable(startX, startY) {
		return visited
	}
	queue := [][2]int{{startX, startY}}
	visited[[2]int{startX, startY}] = true
	dirs := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range dirs {
			nx, ny := cur[0]+d[0], cur[1]+d[1]
			key := [2]int{nx, ny}
			if visited[key] {
				continue
			}
			if !g.IsWalkable(nx, ny) {
				continue
			}
			visited[key] = true
			queue = append(queue, key)
		}
	}
	return visited
}
