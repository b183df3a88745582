package game

import "ensibot/core"

// ConversionBudget computes how much population can safely become army
// this turn. Food preservation is absolute below the critical level: no
// conversion at all. Above it, the budget is the phase-scaled rate capped
// by the safe surplus. Converting one population swings the food balance
// by two (a producer becomes a consumer), so the surplus over the reserve
// is halved: after converting n, food - 2n stays at or above the reserve.
func ConversionBudget(food, population int, phase Phase, t core.TuningConfig) int {
	if food < t.CriticalFoodLevel {
		return 0
	}

	safe := 0
	if food > t.MinFoodReserve {
		safe = (food - t.MinFoodReserve) / 2
	}

	var rate int
	switch phase {
	case PhaseEarly:
		rate = population / 4
	case PhaseMid:
		rate = population / 3
	case PhaseLate:
		rate = population / 2
	default:
		rate = population / 4
	}

	if rate > safe {
		rate = safe
	}
	return rate
}

// ConvertAtCities distributes a conversion budget across the owned cities
// in fixed-size chunks until the budget or the city list runs out. A host
// rejection at one city does not abort the pass: the remaining budget
// moves on to the next city. Returns the amount actually converted.
func ConvertAtCities(h core.Host, cities []CityEntry, budget, chunk int) int {
	converted := 0
	remaining := budget
	for _, city := range cities {
		if remaining <= 0 {
			break
		}
		if city.Class != CityOwned {
			continue
		}
		amount := remaining
		if amount > chunk {
			amount = chunk
		}
		if err := h.Convert(city.Pos, amount); err != nil {
			continue
		}
		remaining -= amount
		converted += amount
	}
	return converted
}
