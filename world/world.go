// Package world owns the transient entity pools of the flight scene: a fixed
// terrain ring, and probabilistically spawned clouds and collectible stars.
package world

import (
	"math"
	"math/rand/v2"
	"slices"

	"github.com/lixenwraith/skyfolio/camera"
	"github.com/lixenwraith/skyfolio/parameter"
	"github.com/lixenwraith/skyfolio/vmath"
)

// Kind discriminates pool categories
type Kind uint8

const (
	KindTerrain Kind = iota
	KindCloud
	KindStar
)

func (k Kind) String() string {
	switch k {
	case KindTerrain:
		return "terrain"
	case KindCloud:
		return "cloud"
	case KindStar:
		return "star"
	default:
		return "unknown"
	}
}

// Entity is a world object; Z is signed depth along the forward axis
type Entity struct {
	Kind Kind
	Pos  vmath.Vec3
	Size float64

	// Collected is terminal, stars only
	Collected bool
}

// World holds one unordered pool per category
// Owned by the tick goroutine, no locking
type World struct {
	Terrain []Entity
	Clouds  []Entity
	Stars   []Entity

	rng *rand.Rand
}

// New creates an empty world drawing randomness from rng
func New(rng *rand.Rand) *World {
	return &World{
		Terrain: make([]Entity, 0, parameter.TerrainPoints),
		Clouds:  make([]Entity, 0, parameter.CloudCap),
		Stars:   make([]Entity, 0, parameter.StarCap),
		rng:     rng,
	}
}

// Reset clears every pool and regenerates the terrain ring
func (w *World) Reset() {
	w.Clouds = w.Clouds[:0]
	w.Stars = w.Stars[:0]
	w.GenerateTerrain()
}

// GenerateTerrain lays out TerrainPoints evenly along depth with random lateral offset and height
func (w *World) GenerateTerrain() {
	w.Terrain = w.Terrain[:0]
	for i := 0; i < parameter.TerrainPoints; i++ {
		w.Terrain = append(w.Terrain, Entity{
			Kind: KindTerrain,
			Pos: vmath.Vec3{
				X: w.between(-parameter.TerrainHalfWidth, parameter.TerrainHalfWidth),
				Y: w.terrainHeight(),
				Z: float64(i) * parameter.TerrainSpacing,
			},
		})
	}
}

// Step runs one pool tick: cull, spawn, advance, collect, sort
// Returns the number of stars collected this tick
func (w *World) Step(cam camera.Camera, speed float64) int {
	w.Cull(cam)
	w.Spawn()
	w.Advance(speed)
	collected := w.Collect(cam)
	w.SortClouds()
	return collected
}

// Advance moves every entity toward the camera by speed
func (w *World) Advance(speed float64) {
	for i := range w.Terrain {
		w.Terrain[i].Pos.Z -= speed
	}
	for i := range w.Clouds {
		w.Clouds[i].Pos.Z -= speed
	}
	for i := range w.Stars {
		w.Stars[i].Pos.Z -= speed
	}
}

// Cull removes clouds behind the near plane and stars that passed the cockpit or were collected
// Terrain points past the near plane wrap one ring length along the view axis with a fresh height
func (w *World) Cull(cam camera.Camera) {
	w.Clouds = slices.DeleteFunc(w.Clouds, func(e Entity) bool {
		return cam.Behind(cam.Rotate(e.Pos).Z)
	})

	w.Stars = slices.DeleteFunc(w.Stars, func(e Entity) bool {
		return e.Collected || cam.Rotate(e.Pos).Z <= 0
	})

	// Offset (ring*sin h, ring*cos h) raises rotated depth by exactly ring
	ring := float64(parameter.TerrainPoints) * parameter.TerrainSpacing
	sin, cos := math.Sincos(cam.Heading)
	for i := range w.Terrain {
		p := &w.Terrain[i].Pos
		wrapped := false
		for cam.Behind(cam.Rotate(*p).Z) {
			p.X += ring * sin
			p.Z += ring * cos
			wrapped = true
		}
		if wrapped {
			p.Y = w.terrainHeight()
		}
	}
}

// Spawn adds at most one cloud and one star, each with fixed probability while under its cap
func (w *World) Spawn() {
	if len(w.Clouds) < parameter.CloudCap && w.rng.Float64() < parameter.CloudSpawnChance {
		w.Clouds = append(w.Clouds, Entity{
			Kind: KindCloud,
			Pos: vmath.Vec3{
				X: w.between(-parameter.CloudHalfWidth, parameter.CloudHalfWidth),
				Y: w.between(parameter.CloudMinY, parameter.CloudMaxY),
				Z: w.between(parameter.CloudMinZ, parameter.CloudMaxZ),
			},
			Size: w.between(parameter.CloudMinSize, parameter.CloudMaxSize),
		})
	}

	if len(w.Stars) < parameter.StarCap && w.rng.Float64() < parameter.StarSpawnChance {
		w.Stars = append(w.Stars, Entity{
			Kind: KindStar,
			Pos: vmath.Vec3{
				X: w.between(-parameter.StarHalfWidth, parameter.StarHalfWidth),
				Y: w.between(parameter.StarMinY, parameter.StarMaxY),
				Z: w.between(parameter.StarMinZ, parameter.StarMaxZ),
			},
			Size: parameter.StarSize,
		})
	}
}

// Collect marks stars the plane is passing through: close in depth and near screen centre
func (w *World) Collect(cam camera.Camera) int {
	center := cam.Center()
	n := 0
	for i := range w.Stars {
		s := &w.Stars[i]
		if s.Collected {
			continue
		}
		rz := cam.Rotate(s.Pos).Z
		if rz <= 0 || rz >= parameter.StarCollectDepth {
			continue
		}
		p, ok := cam.Project(s.Pos)
		if !ok {
			continue
		}
		if vmath.Dist(vmath.Vec2{X: p.X, Y: p.Y}, center) <= parameter.StarCollectRadius {
			s.Collected = true
			n++
		}
	}
	return n
}

// SortClouds orders clouds back-to-front for painter's algorithm drawing
// Terrain and stars are drawn unsorted; their overlap is not visually significant
func (w *World) SortClouds() {
	slices.SortStableFunc(w.Clouds, func(a, b Entity) int {
		switch {
		case a.Pos.Z > b.Pos.Z:
			return -1
		case a.Pos.Z < b.Pos.Z:
			return 1
		default:
			return 0
		}
	})
}

// Population returns pool sizes for HUD and logs
func (w *World) Population() (terrain, clouds, stars int) {
	return len(w.Terrain), len(w.Clouds), len(w.Stars)
}

func (w *World) between(lo, hi float64) float64 {
	return vmath.RandRange(w.rng.Float64(), lo, hi)
}

func (w *World) terrainHeight() float64 {
	return w.between(parameter.TerrainMinHeight, parameter.TerrainMaxHeight)
}
