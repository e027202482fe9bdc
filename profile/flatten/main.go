// Profiling:
// go build ./profile/flatten
// go tool pprof -http=":8000" -nodefraction=0.001 ./flatten cpu.pprof

package main

import (
	"github.com/pkg/profile"

	"github.com/edwinsyarief/position"
)

func main() {
	rounds := 20
	frames := 1000
	nodes := 100000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, frames, nodes)
	p.Stop()
}

func run(rounds, frames, numNodes int) {
	for range rounds {
		b := position.NewBuilder(position.WithCapacity(numNodes))
		ids := make([]position.ID, 1, numNodes)
		for len(ids) < numNodes {
			ids = append(ids, b.Insert(ids[len(ids)/8], position.Translation(1, 0, 0)))
		}
		h := b.Build()
		s := position.Share(h)

		var out position.Positions
		for frame := range frames {
			// the renderer keeps the previous frame while this one mutates
			last := s.Clone()
			m := s.Mut()
			for i := 1; i < len(ids); i += 64 {
				m.Update(ids[i], position.Translation(float32(frame), 0, 0))
			}
			out = s.Get().FlattenInto(out.Matrices())
			last.Release()
		}
	}
}
