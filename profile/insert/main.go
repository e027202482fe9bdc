// Profiling:
// go build ./profile/insert
// go tool pprof -http=":8000" -nodefraction=0.001 ./insert mem.pprof

package main

import (
	"github.com/pkg/profile"

	"github.com/edwinsyarief/position"
	"github.com/edwinsyarief/position/scene"
)

func main() {
	rounds := 50
	objects := 20000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, objects)
	p.Stop()
}

func run(rounds, numObjects int) {
	for range rounds {
		db := scene.New(position.WithCapacity(numObjects + 1))
		keys := make([]scene.Key, 0, numObjects)
		keys = append(keys, scene.RootKey)
		for len(keys) <= numObjects {
			keys = append(keys, db.NewObject(keys[len(keys)/3], "object"))
		}
		// locating leaf-first forces ancestors to be allocated out of
		// generation order, exercising the shift on insert
		for i := len(keys) - 1; i > 0; i-- {
			db.UpdateLocation(keys[i], position.Translation(0, 1, 0))
		}
		_ = db.Flatten()
	}
}
