package model

// DriverStanding is the championship snapshot of a driver after a race
type DriverStanding struct {
	ID       int     `json:"driverStandingsId"`
	RaceID   int     `json:"raceId"`
	DriverID int     `json:"driverId"`
	Points   float64 `json:"points"`
	Position int     `json:"position"`
	Wins     int     `json:"wins"`
}

// ConstructorStanding is the championship snapshot of a constructor after a race
type ConstructorStanding struct {
	ID            int     `json:"constructorStandingsId"`
	RaceID        int     `json:"raceId"`
	ConstructorID int     `json:"constructorId"`
	Points        float64 `json:"points"`
	Position      int     `json:"position"`
	Wins          int     `json:"wins"`
}
