// Package entity provides the units that take part in a battle.
package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/hexband/internal/world"
)

// Status is a unit's life state.
type Status int

const (
	StatusAlive Status = iota
	StatusDead
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusAlive:
		return "alive"
	case StatusDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Team identifies which side a unit fights for.
type Team int

const (
	TeamPlayer Team = iota
	TeamEnemy
)

// String returns the team name.
func (t Team) String() string {
	switch t {
	case TeamPlayer:
		return "player"
	case TeamEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Unit is a single piece on the board.
type Unit struct {
	ID     string
	Name   string
	Glyph  rune
	Color  tcell.Color
	Team   Team
	Status Status

	AP    int // Action points left this turn
	MaxAP int // AP restored at the start of each turn

	// Position is the committed cell; an uncommitted move lives in the
	// controller's pending path until applied.
	Position world.Coord

	// Controlled is true for exactly one roster unit: the active one.
	Controlled bool
}

// NewUnit creates a living unit with a full AP budget.
func NewUnit(id, name string, maxAP int, pos world.Coord) *Unit {
	if maxAP < 0 {
		maxAP = 0
	}
	glyph := '?'
	for _, r := range name {
		glyph = r
		break
	}
	return &Unit{
		ID:       id,
		Name:     name,
		Glyph:    glyph,
		Color:    tcell.ColorYellow,
		Team:     TeamPlayer,
		Status:   StatusAlive,
		AP:       maxAP,
		MaxAP:    maxAP,
		Position: pos,
	}
}

// IsAlive returns true if the unit has not been killed.
func (u *Unit) IsAlive() bool { return u.Status == StatusAlive }

// Kill marks the unit dead. Dead units stay in the roster.
func (u *Unit) Kill() {
	u.Status = StatusDead
	u.AP = 0
}

// SpendAP reduces AP and returns false if insufficient.
func (u *Unit) SpendAP(amount int) bool {
	if amount < 0 || u.AP < amount {
		return false
	}
	u.AP -= amount
	return true
}

// RefundAP returns previously spent AP, capped at MaxAP, and returns the
// amount actually restored.
func (u *Unit) RefundAP(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if u.AP+actual > u.MaxAP {
		actual = u.MaxAP - u.AP
	}
	u.AP += actual
	return actual
}

// RestoreAP refills AP for a new turn. Dead units stay at zero.
func (u *Unit) RestoreAP() {
	if !u.IsAlive() {
		return
	}
	u.AP = u.MaxAP
}
