package interior

import (
	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipe"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// scale is the side length of the pixel block drawn for one cell.
const scale = 3

// FloodCount counts enclosed cells by drawing the loop at 3× resolution and
// flooding the outside from the border with 4-connectivity. Gaps between
// adjacent, unconnected pipes become one-pixel corridors the flood can
// squeeze through. It is an independent cross-check for Count.
// Returns ErrInconsistentPath under the same conditions as Count.
// Time:   O(9·W·H).
// Memory: O(9·W·H) for wall and seen flags.
func FloodCount(g *pipegrid.Grid, p loop.Path, shape loop.StartShape) (int, error) {
	m, err := resolve(g, p, shape)
	if err != nil {
		return 0, err
	}
	w, h := g.Width*scale, g.Height*scale
	wall := make([]bool, w*h)
	for i, on := range m.onPath {
		if !on {
			continue
		}
		c := g.Coordinate(i)
		cx, cy := c.X*scale+1, c.Y*scale+1
		wall[cy*w+cx] = true
		for _, d := range m.dirs[i].Directions() {
			dx, dy := d.Offset()
			wall[(cy+dy)*w+cx+dx] = true
		}
	}

	// BFS from every open border pixel
	seen := make([]bool, w*h)
	queue := make([]int, 0, 2*(w+h))
	push := func(x, y int) {
		i := y*w + x
		if !wall[i] && !seen[i] {
			seen[i] = true
			queue = append(queue, i)
		}
	}
	for x := 0; x < w; x++ {
		push(x, 0)
		push(x, h-1)
	}
	for y := 0; y < h; y++ {
		push(0, y)
		push(w-1, y)
	}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		ux, uy := u%w, u/w
		for _, d := range pipe.Directions {
			dx, dy := d.Offset()
			vx, vy := ux+dx, uy+dy
			if vx < 0 || vx >= w || vy < 0 || vy >= h {
				continue
			}
			push(vx, vy)
		}
	}

	count := 0
	for i, on := range m.onPath {
		if on {
			continue
		}
		c := g.Coordinate(i)
		if !seen[(c.Y*scale+1)*w+c.X*scale+1] {
			count++
		}
	}
	return count, nil
}
