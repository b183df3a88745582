package sim

import "ensibot/core"

// Player is one participant in a simulated match.
type Player struct {
	ID      uint8
	Capital core.Coord
	Alive   bool
}

// PlayerStats are the per-turn aggregates the host answers queries from.
type PlayerStats struct {
	Population int `json:"population"`
	Army       int `json:"army"`
	Territory  int `json:"territory"`
	Cities     int `json:"cities"`
	Food       int `json:"food"`
}

// Scoring weights, per point of each aggregate.
const (
	scorePerPopulation = 1.0
	scorePerCity       = 10.0
	scorePerTerritory  = 0.5
)

// State is the complete authoritative game state.
type State struct {
	Map      *Map
	Players  []*Player
	Turn     int
	MaxTurns int
}

// NewState builds the initial state from a generated map and capitals.
func NewState(m *Map, capitals []core.Coord, maxTurns int) *State {
	players := make([]*Player, len(capitals))
	for i, capital := range capitals {
		players[i] = &Player{ID: uint8(i + 1), Capital: capital, Alive: true}
	}
	return &State{Map: m, Players: players, MaxTurns: maxTurns}
}

// PlayerByID returns the player with the given ID, or nil.
func (st *State) PlayerByID(id uint8) *Player {
	for _, p := range st.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// StatsFor aggregates the current totals for a player. Food balance is
// production minus consumption: population produces 2 and consumes 1,
// army consumes 1, so the balance reduces to population minus army.
func (st *State) StatsFor(id uint8) PlayerStats {
	var stats PlayerStats
	size := st.Map.Size()
	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			tile := st.Map.At(core.Coord{X: x, Y: y})
			if tile.Owner != id {
				continue
			}
			if tile.Terrain == core.TerrainCity {
				stats.Population += tile.Population
				stats.Cities++
			}
			stats.Army += tile.Army
			if tile.Terrain != core.TerrainMountain {
				stats.Territory++
			}
		}
	}
	stats.Food = stats.Population - stats.Army
	return stats
}

// ScoreFor computes the player's score from the scoring weights.
func (st *State) ScoreFor(id uint8) float64 {
	stats := st.StatsFor(id)
	return float64(stats.Population)*scorePerPopulation +
		float64(stats.Cities)*scorePerCity +
		float64(stats.Territory)*scorePerTerritory
}

// VisibleTo reports whether a coordinate is inside the player's fog mask:
// owned tiles and their 8-neighbours.
func (st *State) VisibleTo(id uint8, c core.Coord) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			n := core.Coord{X: c.X + dx, Y: c.Y + dy}
			if !st.Map.InBounds(n) {
				continue
			}
			if st.Map.At(n).Owner == id {
				return true
			}
		}
	}
	return false
}

// ApplyEconomy runs the end-of-turn economy for every living player:
// positive food balance grows population by half the surplus, spread
// round-robin over the player's cities; a deficit starves population off
// until the deficit is covered or nothing is left.
func (st *State) ApplyEconomy() {
	for _, p := range st.Players {
		if !p.Alive {
			continue
		}
		stats := st.StatsFor(p.ID)
		cities := st.citiesOf(p.ID)
		if len(cities) == 0 {
			continue
		}

		if stats.Food >= 0 {
			growth := stats.Food / 2
			for i := 0; growth > 0; i++ {
				st.Map.At(cities[i%len(cities)]).Population++
				growth--
			}
		} else {
			deficit := -stats.Food
			for deficit > 0 {
				starved := false
				for _, c := range cities {
					if deficit == 0 {
						break
					}
					tile := st.Map.At(c)
					if tile.Population > 0 {
						tile.Population--
						deficit--
						starved = true
					}
				}
				if !starved {
					break
				}
			}
		}
	}
}

func (st *State) citiesOf(id uint8) []core.Coord {
	var cities []core.Coord
	size := st.Map.Size()
	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			c := core.Coord{X: x, Y: y}
			tile := st.Map.At(c)
			if tile.Owner == id && tile.Terrain == core.TerrainCity {
				cities = append(cities, c)
			}
		}
	}
	return cities
}

// EliminateDead marks players with no remaining cities as dead.
func (st *State) EliminateDead() {
	for _, p := range st.Players {
		if p.Alive && st.StatsFor(p.ID).Cities == 0 {
			p.Alive = false
		}
	}
}

// GameOver reports whether the match has ended: turn limit reached or at
// most one player left standing.
func (st *State) GameOver() bool {
	if st.Turn >= st.MaxTurns {
		return true
	}
	alive := 0
	for _, p := range st.Players {
		if p.Alive {
			alive++
		}
	}
	return alive <= 1 && len(st.Players) > 1
}
