// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gen generates demo data stores, and populates
// a catalog with them.
package gen

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"cogentcore.org/databrowse/catalog"
	"cogentcore.org/databrowse/store"
	"github.com/chewxy/math32"
)

const (
	// WaveSize is the number of points of [Wave1D].
	WaveSize = 1000

	// Random3DPath is the catalog path of the [Random3D] store
	// added by [Populate].
	Random3DPath = "/RandomData/3D/random3d"
)

// NewRand returns a new random generator with given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Random2D returns a 3 x 100 store of uniform random values in [0, 1).
func Random2D(rng *rand.Rand) *store.Dense[float64] {
	ds, _ := store.NewDense[float64]("random2d", 3, 100)
	ds.SetDoc("Random data array [3x100]")
	Randomize(ds, rng)
	return ds
}

// Random3D returns a 10 x 3 x 100 store of uniform random values in [0, 1).
func Random3D(rng *rand.Rand) *store.Dense[float64] {
	ds, _ := store.NewDense[float64]("random3d", 10, 3, 100)
	ds.SetDoc("Random data array [10x3x100]")
	Randomize(ds, rng)
	return ds
}

// Randomize sets all values of the store to uniform random values in [0, 1).
func Randomize(ds *store.Dense[float64], rng *rand.Rand) {
	for i := range ds.Values {
		ds.Values[i] = rng.Float64()
	}
}

// Wave1D returns a store of [WaveSize] points of a sine wave
// of 3.5 periods, plus uniform noise in [-0.1, 0.1).
func Wave1D(rng *rand.Rand) *store.Dense[float32] {
	ds, _ := store.NewDense[float32]("wave1d", WaveSize)
	ds.SetDoc("Sine wave plus noise")
	for i := range ds.Values {
		x := float32(i) / WaveSize * 7 * math32.Pi
		ds.Values[i] = math32.Sin(x) + 0.2*(rng.Float32()-0.5)
	}
	return ds
}

// Populate adds the demo groups and stores to the catalog,
// returning the [Random3D] store, which [Animate] can update.
func Populate(cat *catalog.Catalog, rng *rand.Rand) (*store.Dense[float64], error) {
	if _, err := cat.AddGroup("RandomData", "/", "Various random data arrays"); err != nil {
		return nil, err
	}
	if _, err := cat.AddGroup("2D", "/RandomData", ""); err != nil {
		return nil, err
	}
	if _, err := cat.AddData(Random2D(rng), "/RandomData/2D"); err != nil {
		return nil, err
	}
	if _, err := cat.AddGroup("3D", "/RandomData", ""); err != nil {
		return nil, err
	}
	r3 := Random3D(rng)
	if _, err := cat.AddData(r3, "/RandomData/3D"); err != nil {
		return nil, err
	}
	if _, err := cat.AddData(Wave1D(rng), "/RandomData"); err != nil {
		return nil, err
	}
	return r3, nil
}

// Animate randomizes the store every interval and reports it as updated
// at [Random3DPath] in the catalog, until ctx is done. It runs on the
// calling goroutine, and calls tick (if non-nil) after each update.
func Animate(ctx context.Context, cat *catalog.Catalog, ds *store.Dense[float64], rng *rand.Rand, interval time.Duration, tick func()) error {
	tk := time.NewTicker(interval)
	defer tk.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tk.C:
			Randomize(ds, rng)
			if err := cat.Updated(Random3DPath); err != nil {
				slog.Warn("gen: animate", "err", err)
				return err
			}
			if tick != nil {
				tick()
			}
		}
	}
}
