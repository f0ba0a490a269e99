package world

// bspNode represents a node in the BSP tree.
type bspNode struct {
	rect        Rect
	left, right *bspNode
}

// isLeaf returns true if this node has no children.
func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// leaves appends the leaf rectangles in left-to-right order.
func (n *bspNode) leaves(out []Rect) []Rect {
	if n.isLeaf() {
		return append(out, n.rect)
	}
	out = n.left.leaves(out)
	return n.right.leaves(out)
}

// chooseSplit picks the cut direction. It returns true for a vertical cut
// (left and right halves). When both axes can be cut the longer one is,
// and a square rectangle asks the generator.
func chooseSplit(r Rect, canX, canY bool, rng *RNG) bool {
	switch {
	case canX && !canY:
		return true
	case canY && !canX:
		return false
	case r.Width > r.Height:
		return true
	case r.Height > r.Width:
		return false
	default:
		return rng.Intn(2) == 0
	}
}

// divide cuts the node at offset along the chosen axis.
func (n *bspNode) divide(vertical bool, offset int) {
	r := n.rect
	if vertical {
		n.left = &bspNode{rect: Rect{X: r.X, Y: r.Y, Width: offset, Height: r.Height}}
		n.right = &bspNode{rect: Rect{X: r.X + offset, Y: r.Y, Width: r.Width - offset, Height: r.Height}}
		return
	}
	n.left = &bspNode{rect: Rect{X: r.X, Y: r.Y, Width: r.Width, Height: offset}}
	n.right = &bspNode{rect: Rect{X: r.X, Y: r.Y + offset, Width: r.Width, Height: r.Height - offset}}
}

// splitRoomNode recursively splits a node until both sides are below
// 2*minRoom+1, leaving at least minRoom cells on each side of every cut.
func splitRoomNode(node *bspNode, minRoom int, rng *RNG) {
	minSplit := minRoom*2 + 1
	r := node.rect
	canX, canY := r.Width >= minSplit, r.Height >= minSplit
	if !canX && !canY {
		return
	}

	vertical := chooseSplit(r, canX, canY, rng)
	length := r.Height
	if vertical {
		length = r.Width
	}
	offset := minRoom + 1 + rng.Intn(max(length-minSplit+1, 1))
	offset = min(offset, length-minRoom-1)

	node.divide(vertical, offset)
	splitRoomNode(node.left, minRoom, rng)
	splitRoomNode(node.right, minRoom, rng)
}

// SplitRooms partitions r with BSP and returns one room per leaf, in the
// order the corridors must connect them. Each room is its leaf shrunk by a
// random padding of zero or one cell per side, never below minRoom.
func SplitRooms(r Rect, minRoom int, rng *RNG) []Rect {
	root := &bspNode{rect: r}
	splitRoomNode(root, minRoom, rng)

	leaves := root.leaves(nil)
	rooms := make([]Rect, 0, len(leaves))
	for _, leaf := range leaves {
		padX, padY := 0, 0
		if leaf.Width > minRoom+2 {
			padX = rng.Intn(2)
		}
		if leaf.Height > minRoom+2 {
			padY = rng.Intn(2)
		}
		rooms = append(rooms, Rect{
			X:      leaf.X + padX,
			Y:      leaf.Y + padY,
			Width:  max(leaf.Width-padX*2, minRoom),
			Height: max(leaf.Height-padY*2, minRoom),
		})
	}
	return rooms
}

// splitZoneNode recursively splits a node until both sides are below
// 2*minZone. Every cut leaves at least minZone on each side.
func splitZoneNode(node *bspNode, minZone int, rng *RNG) {
	r := node.rect
	canX, canY := r.Width >= minZone*2, r.Height >= minZone*2
	if !canX && !canY {
		return
	}

	vertical := chooseSplit(r, canX, canY, rng)
	length := r.Height
	if vertical {
		length = r.Width
	}
	offset := minZone + rng.Intn(length-minZone*2+1)

	node.divide(vertical, offset)
	splitZoneNode(node.left, minZone, rng)
	splitZoneNode(node.right, minZone, rng)
}

// SubdivideZones partitions r into zones for overworld structures.
func SubdivideZones(r Rect, minZone int, rng *RNG) []Rect {
	root := &bspNode{rect: r}
	splitZoneNode(root, minZone, rng)
	return root.leaves(nil)
}
