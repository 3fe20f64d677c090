// Package leveldata parses arena TMX files into plain data.
// It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

// Arena holds everything the simulation needs to build a fight.
type Arena struct {
	Width       int
	Height      int
	Solids      []Rect
	PlayerSpawn *Point
	EnemySpawns []Point
}

// Rect is a solid collision rectangle in pixels.
type Rect struct {
	X, Y, W, H float64
}

// Point is a spawn location. Name is the Tiled object name, if any.
type Point struct {
	X, Y float64
	Name string
}
