package registration

import "math"

// hungarianInf marks a forbidden assignment in a cost matrix.
const hungarianInf = 1e18

// hungarianAssign solves the rectangular assignment problem for an n×m cost matrix with the
// Kuhn-Munkres algorithm (Jonker-Volgenant potentials), O(n³). It returns assignments[i] = column
// assigned to row i, or -1 if row i is unassigned. Costs >= hungarianInf are forbidden. The result
// assigns as many rows as possible and, among those assignments, has the lowest total cost.
func hungarianAssign(cost [][]float64) []int {
	n := len(cost)
	if n == 0 {
		return nil
	}
	m := len(cost[0])
	result := make([]int, n)
	if m == 0 {
		for i := range result {
			result[i] = -1
		}
		return result
	}

	// Square the matrix by padding with forbidden entries.
	dim := n
	if m > dim {
		dim = m
	}
	forbidden := forbiddenCost(cost, dim)
	c := make([][]float64, dim)
	for i := range c {
		c[i] = make([]float64, dim)
		for j := range c[i] {
			if i < n && j < m && cost[i][j] < hungarianInf {
				c[i][j] = cost[i][j]
			} else {
				c[i][j] = forbidden
			}
		}
	}

	// 1-indexed; column 0 and row 0 are virtual.
	const inf = math.MaxFloat64 / 2
	u := make([]float64, dim+1)
	v := make([]float64, dim+1)
	p := make([]int, dim+1)
	way := make([]int, dim+1)
	minv := make([]float64, dim+1)
	used := make([]bool, dim+1)

	for i := 1; i <= dim; i++ {
		p[0] = i
		j0 := 0
		for j := 1; j <= dim; j++ {
			minv[j] = inf
			used[j] = false
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := inf
			j1 := -1
			for j := 1; j <= dim; j++ {
				if used[j] {
					continue
				}
				cur := c[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			if j1 < 0 {
				break
			}
			for j := 0; j <= dim; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		for j0 != 0 {
			p[j0] = p[way[j0]]
			j0 = way[j0]
		}
	}

	rowAssign := make([]int, dim)
	for i := range rowAssign {
		rowAssign[i] = -1
	}
	for j := 1; j <= dim; j++ {
		if p[j] > 0 {
			rowAssign[p[j]-1] = j - 1
		}
	}

	for i := 0; i < n; i++ {
		col := rowAssign[i]
		if col < 0 || col >= m || cost[i][col] >= hungarianInf {
			result[i] = -1
		} else {
			result[i] = col
		}
	}
	return result
}

// forbiddenCost returns the cost given to forbidden and padding cells. It exceeds the spread of any
// total over dim finite cells, so one fewer forbidden cell always wins, while staying small enough
// that the potentials keep integer precision.
func forbiddenCost(cost [][]float64, dim int) float64 {
	var maxAbs float64
	for _, row := range cost {
		for _, x := range row {
			if x < hungarianInf {
				maxAbs = math.Max(maxAbs, math.Abs(x))
			}
		}
	}
	return 2*(maxAbs+1)*float64(dim) + 1
}
