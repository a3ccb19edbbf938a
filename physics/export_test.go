package physics

// FootClearances returns the signed gap under each foot sensor that finds
// a surface in the actor's current mode.
func FootClearances(a *Actor, m *ObstacleMap) []float64 {
	s := a.sensors()
	var gaps []float64
	for _, foot := range []*Sensor{s.a, s.b} {
		o := foot.probe(a.position, a.movmode, a.movmode, m, false)
		if o == nil {
			continue
		}
		if gap, ok := a.clearance(foot, o, a.movmode, s.foot); ok {
			gaps = append(gaps, gap)
		}
	}
	return gaps
}
