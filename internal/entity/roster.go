package entity

// Roster is the ordered list of controllable units. Order defines cycling.
type Roster struct {
	Units []*Unit
}

// NewRoster creates a roster from the given units.
func NewRoster(units ...*Unit) *Roster {
	return &Roster{Units: units}
}

// Len returns the number of units, dead ones included.
func (r *Roster) Len() int {
	return len(r.Units)
}

// At returns the unit at index i, or nil.
func (r *Roster) At(i int) *Unit {
	if i < 0 || i >= len(r.Units) {
		return nil
	}
	return r.Units[i]
}

// AliveCount returns the number of living units.
func (r *Roster) AliveCount() int {
	count := 0
	for _, u := range r.Units {
		if u.IsAlive() {
			count++
		}
	}
	return count
}

// IsDefeated returns true if no unit is alive.
func (r *Roster) IsDefeated() bool {
	return r.AliveCount() == 0
}

// FirstAlive returns the index of the first living unit, or -1.
func (r *Roster) FirstAlive() int {
	for i, u := range r.Units {
		if u.IsAlive() {
			return i
		}
	}
	return -1
}

// NextAlive returns the index of the next living unit after from, wrapping
// around. The scan covers every slot once, so from itself is the last
// candidate. Returns -1 if all units are dead.
func (r *Roster) NextAlive(from int) int {
	n := len(r.Units)
	if n == 0 {
		return -1
	}
	for step := 1; step <= n; step++ {
		i := ((from+step)%n + n) % n
		if r.Units[i].IsAlive() {
			return i
		}
	}
	return -1
}
