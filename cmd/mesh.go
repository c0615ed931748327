/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/mriveralee/gofea/InputParameters"
	"github.com/mriveralee/gofea/gcellset"
	"github.com/mriveralee/gofea/meshgen"
)

type MeshModel struct {
	MeshFile string
	Graph    bool
	Profile  bool
	Delay    time.Duration
}

// MeshCmd represents the mesh command
var MeshCmd = &cobra.Command{
	Use:   "mesh",
	Short: "Generate a structured block mesh and report its topology",
	Long: `Generate a structured block mesh from a YAML description, derive
its boundary and report cell and node counts per manifold dimension`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		mm := &MeshModel{}
		if mm.MeshFile, err = cmd.Flags().GetString("meshFile"); err != nil {
			panic(err)
		}
		mm.Graph, _ = cmd.Flags().GetBool("graph")
		mm.Profile, _ = cmd.Flags().GetBool("profile")
		dr, _ := cmd.Flags().GetInt("delay")
		mm.Delay = time.Duration(dr) * time.Millisecond
		mp := processMeshInput(mm)
		RunMesh(mm, mp)
	},
}

func processMeshInput(mm *MeshModel) (mp *InputParameters.MeshParameters) {
	var (
		err error
	)
	if len(mm.MeshFile) == 0 {
		err := fmt.Errorf("must supply a mesh description file (-F, --meshFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Plate quarter model"
Element: quad
Divisions: [4, 8]
Extents: [1.0, 2.5]
Axisymmetric: false
Thickness: 0.0
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = ioutil.ReadFile(mm.MeshFile); err != nil {
		panic(err)
	}
	mp = &InputParameters.MeshParameters{}
	if err = mp.Parse(data); err != nil {
		panic(err)
	}
	return
}

func init() {
	rootCmd.AddCommand(MeshCmd)
	MeshCmd.Flags().StringP("meshFile", "F", "", "YAML mesh description with element type, divisions and extents")
	MeshCmd.Flags().BoolP("graph", "g", false, "display the generated mesh")
	MeshCmd.Flags().BoolP("profile", "p", false, "write a CPU profile of mesh generation")
	MeshCmd.Flags().IntP("delay", "d", 0, "milliseconds to keep the mesh display open")
}

func RunMesh(mm *MeshModel, mp *InputParameters.MeshParameters) {
	if mm.Profile {
		defer profile.Start().Stop()
	}
	mp.Print()
	var (
		gcs *gcellset.GCellSet
		ns  *meshgen.NodeSet
	)
	opts := gcellset.Options{
		Axisymmetric:   mp.Axisymmetric,
		OtherDimension: mp.Thickness,
	}
	switch strings.ToLower(mp.Element) {
	case "line":
		gcs, ns = meshgen.BlockLine(mp.Divisions[0], 0, mp.Extents[0])
	case "quad":
		gcs, ns = meshgen.BlockQuad(mp.Divisions[0], mp.Divisions[1],
			mp.Extents[0], mp.Extents[1])
	default:
		gcs, ns = meshgen.BlockHex(mp.Divisions[0], mp.Divisions[1], mp.Divisions[2],
			mp.Extents[0], mp.Extents[1], mp.Extents[2])
	}
	gcs = gcellset.NewFromTopology(gcs.Shape(), gcs.Topo(), opts)
	var (
		bdry = gcs.Boundary()
		topo = gcs.Topo()
	)
	fmt.Printf("%d\t\t\t= Nodes\n", ns.Count())
	for d := topo.Dim(); d >= 0; d-- {
		fmt.Printf("%d\t\t\t= Cells of dimension %d\n", topo.CellCountAt(d), d)
	}
	fmt.Printf("%d\t\t\t= Boundary cells\n", bdry.Count())
	if mm.Graph && gcs.Dim() == 2 {
		meshgen.PlotMesh(gcs, ns, mp.PlotPoints)
		time.Sleep(mm.Delay)
	}
}
