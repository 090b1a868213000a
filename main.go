// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/goterra/boundary"
	"github.com/cpmech/goterra/check"
	"github.com/cpmech/goterra/config"
	"github.com/cpmech/goterra/delaunay"
	"github.com/cpmech/goterra/ghost"
	"github.com/cpmech/goterra/mesh"
	"github.com/cpmech/goterra/noise"
	"github.com/cpmech/goterra/render"
	"github.com/cpmech/goterra/terrain"
)

func main() {

	verbose := true

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// message
	io.PfWhite("\nGoterra -- dual-mesh terrain generator\n\n")
	io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
	io.Pf("Use of this source code is governed by a BSD-style\n")
	io.Pf("license that can be found in the LICENSE file.\n\n")

	// config filenamepath
	flag.Parse()
	var cfgPath string
	if len(flag.Args()) > 0 {
		cfgPath = flag.Arg(0)
	}

	var outDir string
	if len(flag.Args()) > 1 {
		outDir = flag.Arg(1)
	} else {
		outDir = "/tmp/goterra"
	}
	if len(flag.Args()) > 2 {
		verbose = io.Atob(flag.Arg(2))
	}

	// profiling?
	defer utl.DoProf(false)()

	// params: either the built-in deterministic scenario or a JSON file
	p := config.Default()
	if cfgPath != "" {
		var err error
		p, err = config.ReadFile(cfgPath)
		if err != nil {
			chk.Panic("cannot load config: %v\n", err)
		}
	}
	p.Validate()

	if !run(p, outDir, verbose) {
		chk.Panic("Run failed\n")
	}
}

// run executes the full data flow: boundary and interior point generation,
// Delaunay triangulation, ghost-structure closure, dual-mesh construction,
// structural-invariant verification, the terrain pipeline, and a rendered
// map written to outDir.
func run(p config.Params, outDir string, verbose bool) bool {
	if verbose {
		io.Pfcyan("generating boundary and interior points\n")
	}
	points, numBoundary := boundary.GeneratePoints(p)

	if verbose {
		io.Pfcyan("triangulating %d points\n", len(points))
	}
	tri, err := delaunay.Triangulate(points)
	if err != nil {
		io.PfRed("triangulation failed: %v\n", err)
		return false
	}

	if verbose {
		report, rerr := check.PreClosure(points, tri.Triangles, tri.Halfedges)
		if rerr != nil {
			io.PfRed("pre-closure check failed: %v\n", rerr)
			return false
		}
		io.Pf("pre-closure: %d triangles, %d skinny (<30deg)\n", report.NumTriangles, report.SkinnyTriangles)
	}

	if verbose {
		io.Pfcyan("closing ghost structure\n")
	}
	closed, err := ghost.Close(points, tri.Triangles, tri.Halfedges)
	if err != nil {
		io.PfRed("ghost closure failed: %v\n", err)
		return false
	}

	m := mesh.New(closed, numBoundary)

	if err := check.Verify(m); err != nil {
		io.PfRed("structural invariant check failed: %v\n", err)
		return false
	}

	if verbose {
		io.Pfcyan("running terrain pipeline\n")
	}
	src := noise.NewSource(p.Seed)
	tm := terrain.New(m, p, src)
	tm.Run(verbose)

	stats := tm.Stats()
	io.Pf("elevation: min=%.3f max=%.3f mean=%.3f, total flow=%.3f\n",
		stats.MinElevation, stats.MaxElevation, stats.MeanElevation, stats.TotalFlow)

	surface := render.PltSurface{}
	render.DrawMesh(m, surface, "#333333", "#88aa88", "#224488")
	surface.Save(outDir, "goterra_map.png")

	return true
}
