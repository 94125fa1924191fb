package models

import "sort"

// FaceCount is one line of a dice pool listing
type FaceCount struct {
	Face  int
	Count int
}

// DicePool is a player's private dice, summarized as face -> count
type DicePool struct {
	// Counts maps a face value to the number of dice showing it
	Counts map[int]int
}

// NewDicePool creates an empty pool
func NewDicePool() *DicePool {
	return &DicePool{
		Counts: make(map[int]int),
	}
}

// Count returns the number of dice showing face
func (p *DicePool) Count(face int) int {
	if p == nil {
		return 0
	}
	return p.Counts[face]
}

// Size returns the number of dice in the pool
func (p *DicePool) Size() int {
	if p == nil {
		return 0
	}
	size := 0
	for _, count := range p.Counts {
		size += count
	}
	return size
}

// Faces lists the faces present in the pool in ascending order, zero counts omitted
func (p *DicePool) Faces() []FaceCount {
	if p == nil {
		return []FaceCount{}
	}

	faces := make([]FaceCount, 0, len(p.Counts))
	for face, count := range p.Counts {
		if count == 0 {
			continue
		}
		faces = append(faces, FaceCount{Face: face, Count: count})
	}

	sort.Slice(faces, func(i, j int) bool {
		return faces[i].Face < faces[j].Face
	})

	return faces
}

// Clone returns a copy of the pool
func (p *DicePool) Clone() *DicePool {
	if p == nil {
		return nil
	}
	clone := NewDicePool()
	for face, count := range p.Counts {
		clone.Counts[face] = count
	}
	return clone
}
