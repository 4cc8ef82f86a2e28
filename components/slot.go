package components

import (
	"github.com/automoto/doomerang-interp/interp"
	"github.com/automoto/doomerang-interp/slots"
	"github.com/yohamta/donburi"
)

// SlotData is the interpolation slot an entity occupies.
type SlotData struct {
	Kind  interp.Kind
	Index int
}

var Slot = donburi.NewComponentType[SlotData]()

// ParentLinkData attaches a decoration to another entity, so it is drawn
// offset by its parent's interpolation delta instead of blended on its own.
type ParentLinkData struct {
	Parent           donburi.Entity
	OffsetX, OffsetY float64
}

var ParentLink = donburi.NewComponentType[ParentLinkData]()

// SlotTablesData is a singleton holding one slot table per kind.
type SlotTablesData struct {
	Tables []*slots.Table
}

// Table returns the slot table of kind k.
func (s *SlotTablesData) Table(k interp.Kind) *slots.Table {
	return s.Tables[k]
}

var SlotTables = donburi.NewComponentType[SlotTablesData]()
