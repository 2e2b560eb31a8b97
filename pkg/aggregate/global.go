package aggregate

type GlobalStats struct {
	TotalRaces        int `json:"totalRaces"`
	TotalDrivers      int `json:"totalDrivers"`
	TotalConstructors int `json:"totalConstructors"`
	TotalCircuits     int `json:"totalCircuits"`
}

// GlobalStats counts races and the distinct drivers and constructors seen in
// results as well as the distinct circuits seen in races.
func (e *Engine) GlobalStats() GlobalStats {
	drivers := map[int]struct{}{}
	constructors := map[int]struct{}{}
	circuits := map[int]struct{}{}
	for i := range e.s.Results {
		drivers[e.s.Results[i].DriverID] = struct{}{}
		constructors[e.s.Results[i].ConstructorID] = struct{}{}
	}
	for i := range e.s.Races {
		circuits[e.s.Races[i].CircuitID] = struct{}{}
	}
	return GlobalStats{
		TotalRaces:        len(e.s.Races),
		TotalDrivers:      len(drivers),
		TotalConstructors: len(constructors),
		TotalCircuits:     len(circuits),
	}
}
