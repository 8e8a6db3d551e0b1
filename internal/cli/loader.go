package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"

	"github.com/orionlab/fluxconv/internal/photom"
	"github.com/orionlab/fluxconv/internal/unit"
)

// systemDef is the CUE shape of a magnitude-system definition:
//
//	systems: [{
//	    name: "Vega-I"
//	    zero_point: {value: 2250.0, unit: "Jy"}
//	    reference_wavelength: {value: 0.9, unit: "micron"}
//	}]
type systemDef struct {
	Name                string       `json:"name"`
	ZeroPoint           quantityDef  `json:"zero_point"`
	ReferenceWavelength *quantityDef `json:"reference_wavelength"`
}

// quantityDef is a number-with-unit in a CUE definition file.
type quantityDef struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// LoadSystems loads CUE magnitude-system definitions from a directory and
// registers them. Registration errors (duplicate names, bad zero points)
// propagate from the registry.
func LoadSystems(dir string, reg *photom.Registry) error {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return fmt.Errorf("systems directory not found: %s", dir)
	}
	if err != nil {
		return fmt.Errorf("error accessing systems directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}

	cueFiles, err := findCUEFiles(dir)
	if err != nil {
		return fmt.Errorf("error scanning directory: %w", err)
	}
	if len(cueFiles) == 0 {
		return fmt.Errorf("no CUE files found in %s", dir)
	}

	ctx := cuecontext.New()
	cfg := &load.Config{Dir: dir}
	instances := load.Instances([]string{"."}, cfg)
	if len(instances) == 0 {
		return fmt.Errorf("no CUE instances loaded from %s", dir)
	}

	inst := instances[0]
	if inst.Err != nil {
		return fmt.Errorf("loading CUE files: %w", inst.Err)
	}

	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return fmt.Errorf("building CUE value: %w", err)
	}

	systemsVal := value.LookupPath(cue.ParsePath("systems"))
	if !systemsVal.Exists() {
		return fmt.Errorf("no \"systems\" list found in %s", dir)
	}

	var defs []systemDef
	if err := systemsVal.Decode(&defs); err != nil {
		return fmt.Errorf("decoding systems: %w", err)
	}

	for _, def := range defs {
		if err := registerDef(reg, def); err != nil {
			return fmt.Errorf("system %q: %w", def.Name, err)
		}
	}
	return nil
}

// registerDef validates one definition and adds it to the registry.
func registerDef(reg *photom.Registry, def systemDef) error {
	if def.Name == "" {
		return fmt.Errorf("system name is required")
	}

	zpUnit, err := unit.ParseUnit(def.ZeroPoint.Unit)
	if err != nil {
		return err
	}
	zp := unit.New(def.ZeroPoint.Value, zpUnit)

	ref := unit.Value{}
	if def.ReferenceWavelength != nil {
		refUnit, err := unit.ParseUnit(def.ReferenceWavelength.Unit)
		if err != nil {
			return err
		}
		ref = unit.New(def.ReferenceWavelength.Value, refUnit)
	}

	return reg.Register(def.Name, zp, ref)
}

// findCUEFiles walks the directory and returns all .cue file paths.
func findCUEFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Ext(path) == ".cue" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
