package meshgen

import (
	"fmt"
	"image/color"

	"github.com/notargets/avs/chart2d"
	graphics2D "github.com/notargets/avs/geometry"
	utils2 "github.com/notargets/avs/utils"

	"github.com/mriveralee/gofea/gcellset"
	"github.com/mriveralee/gofea/topology"
)

// PlotMesh previews a planar cell set. Quads are split along a diagonal for
// the triangle renderer
func PlotMesh(gcs *gcellset.GCellSet, ns *NodeSet, plotPoints bool) (chart *chart2d.Chart2D) {
	var (
		points  []graphics2D.Point
		trimesh graphics2D.TriMesh
		tris    = triangulate(gcs)
		K       = len(tris)
	)
	points = make([]graphics2D.Point, ns.Count())
	for i := range points {
		xy := ns.CoordinatesAt(i)
		points[i].X[0] = float32(xy[0])
		points[i].X[1] = float32(xy[1])
	}
	trimesh.Triangles = make([]graphics2D.Triangle, K)
	colorMap := utils2.NewColorMap(0, 1, 1)
	trimesh.Attributes = make([][]float32, K)
	for k, tri := range tris {
		trimesh.Attributes[k] = make([]float32, 3)
		for i := 0; i < 3; i++ {
			trimesh.Triangles[k].Nodes[i] = int32(tri[i])
		}
	}
	trimesh.Geometry = points
	box := graphics2D.NewBoundingBox(trimesh.GetGeometry())
	box = box.Scale(1.5)
	chart = chart2d.NewChart2D(1920, 1920, box.XMin[0], box.XMax[0], box.XMin[1], box.XMax[1])
	chart.AddColorMap(colorMap)
	go chart.Plot()
	white := color.RGBA{R: 255, G: 255, B: 255, A: 0}
	black := color.RGBA{R: 0, G: 0, B: 0, A: 0}
	if err := chart.AddTriMesh("Mesh", trimesh,
		chart2d.CrossGlyph, chart2d.Solid, white); err != nil {
		panic("unable to add graph series")
	}
	if plotPoints {
		var xs, ys []float64
		for i := 0; i < ns.Count(); i++ {
			xy := ns.CoordinatesAt(i)
			xs = append(xs, xy[0])
			ys = append(ys, xy[1])
		}
		if err := chart.AddSeries("Nodes", xs, ys,
			chart2d.CircleGlyph, chart2d.NoLine, black); err != nil {
			panic(err)
		}
	}
	return
}

func triangulate(gcs *gcellset.GCellSet) (tris [][3]int) {
	for _, cell := range gcs.Conn() {
		switch gcs.Type() {
		case topology.Tri3:
			tris = append(tris, [3]int{cell[0], cell[1], cell[2]})
		case topology.Quad4:
			tris = append(tris,
				[3]int{cell[0], cell[1], cell[2]},
				[3]int{cell[0], cell[2], cell[3]})
		default:
			panic(fmt.Errorf("plotting requires a planar mesh, have %v cells", gcs.Type()))
		}
	}
	return
}
