package index

import (
	"github.com/mpapenbr/f1stats-go/pkg/model"
	"github.com/mpapenbr/f1stats-go/pkg/store"
)

// Unknown is used in place of names for ids without a record
const Unknown = "Unknown"

// Index provides O(1) lookups into the tables of a store.
// The pointers reference the store's rows and must be treated as read only.
type Index struct {
	drivers      map[int]*model.Driver
	constructors map[int]*model.Constructor
	races        map[int]*model.Race
	circuits     map[int]*model.Circuit
}

// Build creates the lookup maps. It must only be called after all tables
// of s are loaded and normalized. For duplicate ids the last row wins.
func Build(s *store.Store) *Index {
	idx := &Index{
		drivers:      make(map[int]*model.Driver, len(s.Drivers)),
		constructors: make(map[int]*model.Constructor, len(s.Constructors)),
		races:        make(map[int]*model.Race, len(s.Races)),
		circuits:     make(map[int]*model.Circuit, len(s.Circuits)),
	}
	for i := range s.Drivers {
		idx.drivers[s.Drivers[i].ID] = &s.Drivers[i]
	}
	for i := range s.Constructors {
		idx.constructors[s.Constructors[i].ID] = &s.Constructors[i]
	}
	for i := range s.Races {
		idx.races[s.Races[i].ID] = &s.Races[i]
	}
	for i := range s.Circuits {
		idx.circuits[s.Circuits[i].ID] = &s.Circuits[i]
	}
	return idx
}

func (idx *Index) Constructor(id int) (*model.Constructor, bool) {
	c, ok := idx.constructors[id]
	return c, ok
}

func (idx *Index) Race(id int) (*model.Race, bool) {
	r, ok := idx.races[id]
	return r, ok
}

// DriverName returns the full name of the driver or Unknown
func (idx *Index) DriverName(id int) string {
	if d, ok := idx.drivers[id]; ok {
		return d.FullName
	}
	return Unknown
}

func (idx *Index) DriverNationality(id int) string {
	if d, ok := idx.drivers[id]; ok {
		return d.Nationality
	}
	return Unknown
}

func (idx *Index) ConstructorName(id int) string {
	if c, ok := idx.constructors[id]; ok {
		return c.Name
	}
	return Unknown
}

func (idx *Index) CircuitName(id int) string {
	if c, ok := idx.circuits[id]; ok {
		return c.Name
	}
	return Unknown
}

func (idx *Index) NumDrivers() int      { return len(idx.drivers) }
func (idx *Index) NumConstructors() int { return len(idx.constructors) }
func (idx *Index) NumRaces() int        { return len(idx.races) }
func (idx *Index) NumCircuits() int     { return len(idx.circuits) }
