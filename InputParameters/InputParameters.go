package InputParameters

import (
	"fmt"
	"strings"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML mesh description file
type MeshParameters struct {
	Title        string    `yaml:"Title"`
	Element      string    `yaml:"Element"` // line, quad or hex
	Divisions    []int     `yaml:"Divisions"`
	Extents      []float64 `yaml:"Extents"`
	Axisymmetric bool      `yaml:"Axisymmetric"`
	Thickness    float64   `yaml:"Thickness"`
	PlotPoints   bool      `yaml:"PlotPoints"`
}

func (mp *MeshParameters) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, mp); err != nil {
		return err
	}
	return mp.validate()
}

func (mp *MeshParameters) validate() error {
	var nAxes int
	switch strings.ToLower(mp.Element) {
	case "line":
		nAxes = 1
	case "quad":
		nAxes = 2
	case "hex":
		nAxes = 3
	default:
		return fmt.Errorf("unknown element type [%s], expected line, quad or hex", mp.Element)
	}
	if len(mp.Divisions) != nAxes || len(mp.Extents) != nAxes {
		return fmt.Errorf("element type [%s] needs %d divisions and extents, have %d and %d",
			mp.Element, nAxes, len(mp.Divisions), len(mp.Extents))
	}
	for _, n := range mp.Divisions {
		if n < 1 {
			return fmt.Errorf("divisions must be positive, have %v", mp.Divisions)
		}
	}
	for _, w := range mp.Extents {
		if w <= 0 {
			return fmt.Errorf("extents must be positive, have %v", mp.Extents)
		}
	}
	if mp.Axisymmetric && nAxes == 3 {
		return fmt.Errorf("axisymmetric applies to line and quad meshes only")
	}
	return nil
}

func (mp *MeshParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", mp.Title)
	fmt.Printf("[%s]\t\t\t= Element\n", mp.Element)
	fmt.Printf("%v\t\t= Divisions\n", mp.Divisions)
	fmt.Printf("%v\t\t= Extents\n", mp.Extents)
	fmt.Printf("[%v]\t\t\t= Axisymmetric\n", mp.Axisymmetric)
	if mp.Thickness != 0 {
		fmt.Printf("%8.5f\t\t= Thickness\n", mp.Thickness)
	}
}
