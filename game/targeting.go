package game

import "ensibot/core"

// NearestTarget finds the closest contested city to from, in two passes.
// Pass 1 considers only the preferred class (neutral when preferNeutral,
// enemy otherwise). Pass 2 runs only when pass 1 found nothing and accepts
// either contested class, so a late-game player starved of enemy targets
// still seizes leftover neutral territory rather than idling. Distances
// are Manhattan; ties keep the first entry in scan order. Returns false
// when the city list holds no contested city at all.
func (s *WorldSnapshot) NearestTarget(from core.Coord, preferNeutral bool) (core.Coord, bool) {
	preferred := CityEnemy
	if preferNeutral {
		preferred = CityNeutral
	}

	if target, ok := s.nearestOfClass(from, func(c CityClass) bool { return c == preferred }); ok {
		return target, true
	}
	return s.nearestOfClass(from, func(c CityClass) bool { return c == CityNeutral || c == CityEnemy })
}

func (s *WorldSnapshot) nearestOfClass(from core.Coord, match func(CityClass) bool) (core.Coord, bool) {
	var best core.Coord
	bestDist := -1
	for _, city := range s.Cities {
		if !match(city.Class) {
			continue
		}
		d := from.Dist(city.Pos)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = city.Pos
		}
	}
	return best, bestDist >= 0
}
