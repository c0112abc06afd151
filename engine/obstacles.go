package engine

import "github.com/lixenwraith/orbit/vmath"

// ObstacleID is a handle returned by Register, never reused within a registry
type ObstacleID uint32

// Obstacle is a registered rectangular collision volume in grid cells
type Obstacle struct {
	ID ObstacleID
	vmath.Rect
}

// ObstacleRegistry owns the live set of collision volumes
// Registration order is preserved and is the scan order of AnyCollision
// Not safe for concurrent use; only the tick loop touches it
type ObstacleRegistry struct {
	bounds vmath.Rect
	nextID ObstacleID

	live      []Obstacle
	index     map[ObstacleID]int        // id -> position in live
	requested map[ObstacleID]vmath.Rect // unclipped rectangle, re-clipped on every move
}

// NewObstacleRegistry creates a registry for a rows x columns grid
func NewObstacleRegistry(rows, columns int) *ObstacleRegistry {
	return &ObstacleRegistry{
		bounds:    vmath.Rect{Rows: rows, Columns: columns},
		index:     make(map[ObstacleID]int),
		requested: make(map[ObstacleID]vmath.Rect),
	}
}

// Bounds returns the grid obstacles are clipped against
func (r *ObstacleRegistry) Bounds() vmath.Rect { return r.bounds }

// Register clips the rectangle to the grid and adds it to the live set
func (r *ObstacleRegistry) Register(row, column, rows, columns int) ObstacleID {
	r.nextID++
	id := r.nextID

	req := vmath.Rect{Row: row, Column: column, Rows: rows, Columns: columns}
	r.requested[id] = req
	r.index[id] = len(r.live)
	r.live = append(r.live, Obstacle{ID: id, Rect: req.ClipTo(r.bounds)})
	return id
}

// UpdatePosition moves a live obstacle to a new row, clipped like Register
// Unknown or removed handles are ignored: removal by a projectile may precede the
// owner's next update within the same tick
func (r *ObstacleRegistry) UpdatePosition(id ObstacleID, row int) {
	i, ok := r.index[id]
	if !ok {
		return
	}
	req := r.requested[id]
	req.Row = row
	r.requested[id] = req
	r.live[i].Rect = req.ClipTo(r.bounds)
}

// Remove deletes an obstacle, returns false if it was not live
func (r *ObstacleRegistry) Remove(id ObstacleID) bool {
	i, ok := r.index[id]
	if !ok {
		return false
	}
	delete(r.index, id)
	delete(r.requested, id)

	copy(r.live[i:], r.live[i+1:])
	r.live[len(r.live)-1] = Obstacle{}
	r.live = r.live[:len(r.live)-1]
	for j := i; j < len(r.live); j++ {
		r.index[r.live[j].ID] = j
	}
	return true
}

// Contains reports whether the handle is still live
func (r *ObstacleRegistry) Contains(id ObstacleID) bool {
	_, ok := r.index[id]
	return ok
}

// Get returns a copy of a live obstacle
func (r *ObstacleRegistry) Get(id ObstacleID) (Obstacle, bool) {
	i, ok := r.index[id]
	if !ok {
		return Obstacle{}, false
	}
	return r.live[i], true
}

// Len returns the number of live obstacles
func (r *ObstacleRegistry) Len() int { return len(r.live) }

// HasCollision tests one obstacle against a query rectangle
// A point query is a 1x1 rectangle; removed handles never collide
func (r *ObstacleRegistry) HasCollision(id ObstacleID, row, column, rows, columns int) bool {
	o, ok := r.Get(id)
	if !ok {
		return false
	}
	return o.Overlaps(vmath.Rect{Row: row, Column: column, Rows: rows, Columns: columns})
}

// AnyCollision returns the first live obstacle, in registration order, overlapping the query
func (r *ObstacleRegistry) AnyCollision(row, column, rows, columns int) (Obstacle, bool) {
	query := vmath.Rect{Row: row, Column: column, Rows: rows, Columns: columns}
	for _, o := range r.Snapshot() {
		if o.Overlaps(query) {
			return o, true
		}
	}
	return Obstacle{}, false
}

// Snapshot returns a copy of the live set in registration order
// Callers may register or remove obstacles while iterating the copy
func (r *ObstacleRegistry) Snapshot() []Obstacle {
	out := make([]Obstacle, len(r.live))
	copy(out, r.live)
	return out
}
