// SPDX-License-Identifier: MIT

// Command archimesh grows and inspects tilings of regular polygons.
//
//	archimesh -seed 6 -complete P -out tiling.json -geojson tiling.geojson
//	archimesh -in tiling.json -dual -out -
//	archimesh -classify 3^2.4.3.4
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/archimesh/archnode"
	"github.com/katalvlaran/archimesh/hds"
	"github.com/katalvlaran/archimesh/tiling"
)

type config struct {
	seed     int
	in       string
	out      string
	geojson  string
	complete string
	classify string
	dual     bool
}

func main() {
	var cfg config
	flag.IntVar(&cfg.seed, "seed", 4, "sides of the seed polygon (3, 4, 6, 8 or 12)")
	flag.StringVar(&cfg.in, "in", "", "snapshot JSON to load instead of seeding")
	flag.StringVar(&cfg.out, "out", "", "write the snapshot JSON here (- for stdout)")
	flag.StringVar(&cfg.geojson, "geojson", "", "write a GeoJSON export here (- for stdout)")
	flag.StringVar(&cfg.complete, "complete", "", "complete the first border vertex that can become this node letter")
	flag.StringVar(&cfg.classify, "classify", "", "print the node letters of a vertex configuration and exit")
	flag.BoolVar(&cfg.dual, "dual", false, "replace the tiling by its dual")

	klog.InitFlags(flag.CommandLine)
	flag.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})
	flag.Parse()

	if err := run(cfg, os.Stdout); err != nil {
		klog.Errorf("archimesh: %v", err)
		klog.Flush()
		os.Exit(1)
	}
	klog.Flush()
}

func run(cfg config, stdout io.Writer) error {
	if cfg.classify != "" {
		idx, err := archnode.LookupNotation(cfg.classify)
		if err != nil {
			return err
		}
		letters := make([]string, len(idx))
		for i, k := range idx {
			letters[i] = archnode.Letter(k)
		}
		_, err = fmt.Fprintf(stdout, "%s: %s\n", cfg.classify, strings.Join(letters, " "))
		return err
	}

	tl, err := load(cfg)
	if err != nil {
		return err
	}
	if cfg.complete != "" {
		v, err := tl.CompleteNode(cfg.complete)
		if err != nil {
			return err
		}
		klog.Infof("completed vertex %d as node %s", v, cfg.complete)
	}
	if cfg.dual {
		if tl, err = tl.Dual(); err != nil {
			return err
		}
	}
	m := tl.Mesh()
	if err := m.Validate(); err != nil {
		return err
	}

	if cfg.out != "" {
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return err
		}
		if err := write(cfg.out, data, stdout); err != nil {
			return err
		}
	}
	if cfg.geojson != "" {
		fc, err := tl.FeatureCollection()
		if err != nil {
			return err
		}
		data, err := fc.MarshalJSON()
		if err != nil {
			return err
		}
		if err := write(cfg.geojson, data, stdout); err != nil {
			return err
		}
	}
	klog.Infof("%d faces, %d border faces, %d vertices, %d halfedges",
		m.NumFaces(), m.NumBorderFaces(), m.NumVertices(), m.NumHalfedges())
	return nil
}

func load(cfg config) (*tiling.Tiling, error) {
	if cfg.in == "" {
		return tiling.Seed(cfg.seed, orb.Point{}, tiling.DefaultOptions())
	}
	data, err := os.ReadFile(cfg.in)
	if err != nil {
		return nil, errors.Wrap(err, "reading snapshot")
	}
	var m hds.Mesh
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, "loading %s", cfg.in)
	}
	return tiling.New(&m, tiling.DefaultOptions()), nil
}

func write(path string, data []byte, stdout io.Writer) error {
	if path == "-" {
		_, err := stdout.Write(append(data, '\n'))
		return err
	}
	return errors.Wrapf(os.WriteFile(path, data, 0o644), "writing %s", path)
}
