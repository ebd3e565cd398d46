package sim

import (
	"github.com/rescue-robots/rescuebench/internal/mapfile"
)

// robot is one rescuer. It only ever acts on its known map; the ground-truth
// grid is consulted solely when revealing adjacent cells or touching victims.
type robot struct {
	pos   point
	path  []point
	known *mapfile.Grid
}

func newRobot(pos point, known *mapfile.Grid, w *world) *robot {
	r := &robot{pos: pos, known: known}
	r.reveal(w)
	return r
}

// reveal marks the current cell traversed and copies the true value of any
// still-unknown orthogonal neighbor into the known map.
func (r *robot) reveal(w *world) {
	r.known.Set(r.pos.r, r.pos.c, mapfile.Traversed)
	for _, d := range neighbors4 {
		nr, nc := r.pos.r+d.r, r.pos.c+d.c
		if r.known.InBounds(nr, nc) && r.known.At(nr, nc) == mapfile.Unknown {
			r.known.Set(nr, nc, w.grid.At(nr, nc))
		}
	}
}

// move advances the robot one tick:
//
//  1. keep following a planned path
//  2. rescue an adjacent victim
//  3. step onto an adjacent known-free cell
//  4. plan a path to the nearest unexplored cell
//  5. retreat onto an adjacent traversed cell
//
// Adjacency checks shuffle direction order so robots do not all drift the
// same way.
func (r *robot) move(w *world) {
	if len(r.path) > 0 {
		r.followPath(w)
		return
	}

	options := r.shuffledNeighbors(w)

	// Rescue first. Single-map robots spot victims in the world directly;
	// coop robots only act on victims someone has already revealed.
	for _, p := range options {
		if r.victimAt(w, p) {
			w.rescue(p)
			r.pos = p
			r.reveal(w)
			return
		}
	}

	for _, p := range options {
		if r.freeAt(w, p) {
			r.pos = p
			r.reveal(w)
			return
		}
	}

	if path := r.bfsToUnexplored(w); len(path) > 1 {
		r.path = path[2:]
		r.pos = path[1]
		r.reveal(w)
		return
	}

	for _, p := range options {
		if r.known.At(p.r, p.c) == mapfile.Traversed {
			r.pos = p
			r.reveal(w)
			return
		}
	}
}

// followPath takes the next planned step, re-planning if exploration has
// since shown the step to be blocked.
func (r *robot) followPath(w *world) {
	next := r.path[0]
	r.path = r.path[1:]

	if blocked := r.known.At(next.r, next.c); blocked == mapfile.Obstacle || (w.coop && blocked == mapfile.Victim) {
		r.path = nil
		if path := r.bfsToUnexplored(w); len(path) > 1 {
			r.path = path[2:]
			next = path[1]
		} else {
			return
		}
	}

	r.pos = next
	r.reveal(w)
}

// shuffledNeighbors returns the in-bounds orthogonal neighbors in random order.
func (r *robot) shuffledNeighbors(w *world) []point {
	options := make([]point, 0, 4)
	for _, d := range neighbors4 {
		p := point{r.pos.r + d.r, r.pos.c + d.c}
		if w.grid.InBounds(p.r, p.c) {
			options = append(options, p)
		}
	}
	w.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

func (r *robot) victimAt(w *world, p point) bool {
	if w.coop {
		return r.known.At(p.r, p.c) == mapfile.Victim
	}
	return w.grid.At(p.r, p.c) == mapfile.Victim
}

func (r *robot) freeAt(w *world, p point) bool {
	if w.coop {
		return r.known.At(p.r, p.c) == mapfile.Free
	}
	return w.grid.At(p.r, p.c) == mapfile.Free && r.known.At(p.r, p.c) == mapfile.Free
}

// bfsToUnexplored searches the known map for the nearest unknown cell,
// walking only through cells not known to be obstacles (coop robots also
// refuse to path through known victims; those are rescued by adjacency, not
// walked over). The returned path starts at the robot's position and ends at
// the unknown cell; nil means nothing reachable is left to explore.
func (r *robot) bfsToUnexplored(w *world) []point {
	visited := make(map[point]bool, r.known.Rows*r.known.Cols)
	prev := make(map[point]point)
	queue := []point{r.pos}
	visited[r.pos] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if r.known.At(cur.r, cur.c) == mapfile.Unknown {
			path := []point{cur}
			for p, ok := prev[cur]; ok; p, ok = prev[p] {
				path = append(path, p)
			}
			// Reverse into start-to-goal order.
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		for _, d := range neighbors4 {
			next := point{cur.r + d.r, cur.c + d.c}
			if !r.known.InBounds(next.r, next.c) || visited[next] {
				continue
			}
			known := r.known.At(next.r, next.c)
			if known == mapfile.Obstacle || (w.coop && known == mapfile.Victim) {
				continue
			}
			visited[next] = true
			prev[next] = cur
			queue = append(queue, next)
		}
	}
	return nil
}

// rescue clears a victim from the world.
func (w *world) rescue(p point) {
	delete(w.victims, p)
	w.grid.Set(p.r, p.c, mapfile.Free)
}
