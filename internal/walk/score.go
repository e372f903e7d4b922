package walk

// Score reduces a final state to 1000*row + 4*column + facing.
//
// Precondition: s.Position has positive coordinates.
func Score(s State) uint64 {
	return uint64(s.Position.Y)*1000 + uint64(s.Position.X)*4 + uint64(s.Direction.Facing())
}
