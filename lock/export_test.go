package lock

// ForceLock sets from→to without consulting the cycle check, so tests can
// build corrupted graphs.
func ForceLock(g *Graph, from, to int) {
	g.lock(from, to)
}
