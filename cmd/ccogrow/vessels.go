package main

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/katalvlaran/cco/bfs"
	"github.com/katalvlaran/cco/tree"
)

var vesselHeader = []string{
	"id", "parent", "son", "daughter", "generation",
	"inlet_x", "inlet_y", "inlet_z", "outlet_x", "outlet_y", "outlet_z",
	"radius", "length", "flow", "pressure_in", "pressure_out",
}

// writeVessels writes one row per vessel in generation order, down to
// generation maxGen when it is positive.
func writeVessels(ctx context.Context, w io.Writer, n *tree.Network, maxGen int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(vesselHeader); err != nil {
		return err
	}
	_, err := bfs.Walk(n, n.Root(),
		bfs.WithContext(ctx),
		bfs.WithMaxDepth(maxGen),
		bfs.WithOnVisit(func(id tree.ID, depth int) error {
			v := n.At(id)
			return cw.Write([]string{
				strconv.Itoa(int(id)),
				strconv.Itoa(int(v.Parent)),
				strconv.Itoa(int(v.Son)),
				strconv.Itoa(int(v.Daughter)),
				strconv.Itoa(depth),
				num(v.Inlet.X), num(v.Inlet.Y), num(v.Inlet.Z),
				num(v.Outlet.X), num(v.Outlet.Y), num(v.Outlet.Z),
				num(v.Radius), num(v.Length()), num(v.Flow),
				num(v.PressureIn), num(v.PressureOut),
			})
		}),
	)
	if err != nil {
		return err
	}
	cw.Flush()

	return cw.Error()
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
