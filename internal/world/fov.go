package world

// octants maps octant-local (col, depth) to map offsets as
// {colToX, depthToX, colToY, depthToY}.
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
}

// Visibility returns the fog-of-war state of a cell, Hidden off the map.
func (m *Map) Visibility(x, y int) Visibility {
	if !m.InBounds(x, y) {
		return VisibilityHidden
	}
	return m.visibility[m.index(x, y)]
}

func (m *Map) setVisible(x, y int) {
	if m.InBounds(x, y) {
		m.visibility[m.index(x, y)] = VisibilityVisible
	}
}

// AgeVisibility demotes every Visible cell to Seen. Call it before
// recomputing the field of view from a new origin.
func (m *Map) AgeVisibility() {
	for i, v := range m.visibility {
		if v == VisibilityVisible {
			m.visibility[i] = VisibilitySeen
		}
	}
}

// ResetVisibility forgets everything, returning all cells to Hidden.
func (m *Map) ResetVisibility() {
	clear(m.visibility)
}

// ComputeFOV marks every cell visible from (px, py) within radius using
// recursive shadowcasting. Opaque cells in range are marked too; only the
// cells behind them stay dark.
func (m *Map) ComputeFOV(px, py, radius int) {
	m.setVisible(px, py)
	for i := range octants {
		m.castLight(px, py, radius, 1, 1.0, 0.0, &octants[i])
	}
}

// castLight scans one octant from depth outward. Columns run from the
// diagonal (col == d) toward the axis (col == 0) while the slope window
// [endSlope, startSlope] narrows behind opaque cells.
func (m *Map) castLight(px, py, radius, depth int, startSlope, endSlope float64, oct *[4]int) {
	if startSlope < endSlope || depth > radius {
		return
	}

	radiusSq := radius * radius
	for d := depth; d <= radius; d++ {
		blocked := false
		newStart := startSlope

		for col := d; col >= 0; col-- {
			mapX := px + col*oct[0] + d*oct[1]
			mapY := py + col*oct[2] + d*oct[3]

			lSlope := (float64(col) + 0.5) / (float64(d) - 0.5)
			rSlope := (float64(col) - 0.5) / (float64(d) + 0.5)

			if startSlope < rSlope {
				continue
			}
			if endSlope > lSlope {
				break
			}

			if col*col+d*d <= radiusSq {
				m.setVisible(mapX, mapY)
			}

			// Get reports TileWall off the map, which is opaque.
			opaque := m.Get(mapX, mapY).IsOpaque()

			if blocked {
				if opaque {
					newStart = rSlope
				} else {
					blocked = false
					startSlope = newStart
				}
			} else if opaque {
				blocked = true
				m.castLight(px, py, radius, d+1, startSlope, lSlope, oct)
				newStart = rSlope
			}
		}

		if blocked {
			break
		}
	}
}
