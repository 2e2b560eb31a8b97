package aggregate

import "github.com/mpapenbr/f1stats-go/pkg/model"

type TopWinner struct {
	DriverID int    `json:"driverId"`
	Name     string `json:"name"`
	Wins     int    `json:"wins"`
}

type CircuitStats struct {
	model.Circuit
	TotalRaces    int        `json:"totalRaces"`
	UniqueWinners int        `json:"uniqueWinners"`
	MostWins      *TopWinner `json:"mostWins"`
}

// CircuitStats returns the statistics of every circuit which hosted at least
// one race, in circuit table order. MostWins is nil when no race at the
// circuit has a winner. Equal win counts go to the lowest driver id.
func (e *Engine) CircuitStats() []CircuitStats {
	racesAt := map[int]int{}
	circuitOfRace := map[int]int{}
	for i := range e.s.Races {
		racesAt[e.s.Races[i].CircuitID]++
		circuitOfRace[e.s.Races[i].ID] = e.s.Races[i].CircuitID
	}
	winsAt := map[int]map[int]int{} // circuit -> driver -> wins
	for i := range e.s.Results {
		r := &e.s.Results[i]
		if !r.IsWin() {
			continue
		}
		circuitID, ok := circuitOfRace[r.RaceID]
		if !ok {
			continue
		}
		if winsAt[circuitID] == nil {
			winsAt[circuitID] = map[int]int{}
		}
		winsAt[circuitID][r.DriverID]++
	}

	ret := []CircuitStats{}
	for i := range e.s.Circuits {
		c := e.s.Circuits[i]
		total := racesAt[c.ID]
		if total == 0 {
			continue
		}
		wins := winsAt[c.ID]
		ret = append(ret, CircuitStats{
			Circuit:       c,
			TotalRaces:    total,
			UniqueWinners: len(wins),
			MostWins:      e.topWinner(wins),
		})
	}
	return ret
}

func (e *Engine) topWinner(wins map[int]int) *TopWinner {
	if len(wins) == 0 {
		return nil
	}
	bestID, best := 0, -1
	for id, n := range wins {
		if n > best || (n == best && id < bestID) {
			bestID, best = id, n
		}
	}
	return &TopWinner{DriverID: bestID, Name: e.idx.DriverName(bestID), Wins: best}
}
