package segment

import "image"

// Components returns the number of 8-connected blobs of cells carrying l.
func (g *Grid) Components(l Label) int {
	visited := make([]bool, len(g.cells))
	count := 0

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			i := y*g.width + x
			if g.cells[i] == l && !visited[i] {
				g.floodFill(visited, x, y, l)
				count++
			}
		}
	}
	return count
}

// floodFill marks every cell 8-connected to (startX, startY) that carries l.
// Uses an explicit stack so large blobs cannot overflow the goroutine stack.
func (g *Grid) floodFill(visited []bool, startX, startY int, l Label) {
	stack := []image.Point{{X: startX, Y: startY}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= g.width || p.Y < 0 || p.Y >= g.height {
			continue
		}
		i := p.Y*g.width + p.X
		if visited[i] || g.cells[i] != l {
			continue
		}
		visited[i] = true

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, image.Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}
}
