package game

import "github.com/gammazero/deque"

// Point represents a grid cell coordinate (column, row).
type Point struct {
	X, Y int
}

// Add returns the point shifted by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Snake is the ordered sequence of occupied grid cells, head at the front.
// Every move is a head push plus (unless growing) a tail pop, so the body is
// kept in a double-ended queue for O(1) updates at both ends.
type Snake struct {
	body deque.Deque[Point]
}

// Init replaces the body with a fresh horizontal snake facing right:
// head at the given position, segments extending to the left.
func (s *Snake) Init(head Point, length int) {
	s.body.Clear()
	for i := 0; i < length; i++ {
		s.body.PushBack(Point{X: head.X - i, Y: head.Y})
	}
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return s.body.Len()
}

// Head returns the head segment position.
func (s *Snake) Head() Point {
	return s.body.Front()
}

// Tail returns the tail segment position.
func (s *Snake) Tail() Point {
	return s.body.Back()
}

// PushHead inserts a new head segment at the front.
func (s *Snake) PushHead(p Point) {
	s.body.PushFront(p)
}

// PopTail removes and returns the tail segment.
func (s *Snake) PopTail() Point {
	return s.body.PopBack()
}

// Contains reports whether any segment occupies p.
func (s *Snake) Contains(p Point) bool {
	for i := 0; i < s.body.Len(); i++ {
		if s.body.At(i) == p {
			return true
		}
	}
	return false
}

// HitsBody reports whether p collides with the body for the purpose of the
// self-collision check. The tail segment is excluded: it vacates its cell on
// the same tick. A growth tick never targets the tail cell, because growth
// means the new head lands on food and food never overlaps the snake.
func (s *Snake) HitsBody(p Point) bool {
	for i := 0; i < s.body.Len()-1; i++ {
		if s.body.At(i) == p {
			return true
		}
	}
	return false
}

// Positions returns a head-first copy of the segment positions.
func (s *Snake) Positions() []Point {
	out := make([]Point, s.body.Len())
	for i := 0; i < s.body.Len(); i++ {
		out[i] = s.body.At(i)
	}
	return out
}
