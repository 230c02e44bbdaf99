// Command floorplan edits and validates mall floor-plan documents.
//
//	floorplan -i [plan.json]          interactive terminal editor
//	floorplan -validate plan.json     batch validation report
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jay1247sjh/SmartMall-sub005/config"
	"github.com/jay1247sjh/SmartMall-sub005/geometry"
	"github.com/jay1247sjh/SmartMall-sub005/model"
	"github.com/jay1247sjh/SmartMall-sub005/placement"
	"github.com/jay1247sjh/SmartMall-sub005/tui"
)

func main() {
	var (
		interactive = flag.Bool("i", false, "Interactive terminal editor")
		validate    = flag.Bool("validate", false, "Validate the plan and print a report")
		configPath  = flag.String("config", "", "Drawing configuration file (YAML)")
		planName    = flag.String("name", "Untitled Mall", "Name for a newly created plan")
		help        = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help || (!*interactive && !*validate) {
		printUsage()
		if *help {
			os.Exit(0)
		}
		os.Exit(2)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	filename := flag.Arg(0)
	plan, err := loadOrCreatePlan(filename, *planName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *validate {
		if ok := runValidation(plan); !ok {
			os.Exit(1)
		}
		return
	}

	app, err := tui.NewApp(plan, cfg, filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadOrCreatePlan(filename, name string) (*model.Plan, error) {
	if filename == "" {
		return model.NewPlan(name), nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return model.NewPlan(name), nil
	}
	return model.LoadPlan(filename)
}

// runValidation prints a report for every floor and area; false means
// at least one blocking error.
func runValidation(plan *model.Plan) bool {
	engine := placement.NewEngine()
	errors, warnings := 0, 0

	report := func(kind, format string, args ...interface{}) {
		fmt.Printf("  [%s] %s\n", kind, fmt.Sprintf(format, args...))
		if kind == "ERROR" {
			errors++
		} else {
			warnings++
		}
	}

	for _, floor := range plan.Floors {
		fmt.Printf("Floor %q (level %d, %d areas)\n", floor.Name, floor.Level, len(floor.Areas))

		if res := geometry.Validate(floor.Outline); !res.Valid {
			for _, e := range res.Errors {
				report("ERROR", "outline: %s", e)
			}
		}

		for _, area := range floor.Areas {
			res := area.Validate()
			if !res.Valid {
				for _, e := range res.Errors {
					report("ERROR", "%s: %s", area.Name, e)
				}
				continue
			}
			for _, w := range res.Warnings {
				report("WARN", "%s: %s", area.Name, w)
			}
			if len(floor.Outline.Vertices) >= 3 && !geometry.ContainedIn(area.Shape, floor.Outline) {
				report("ERROR", "%s extends outside the floor outline", area.Name)
			}
			if engine.RequiresFloorConnection(area.Type) && !hasCounterpart(plan, floor, area.Type) {
				report("WARN", "%s needs a matching %s on another floor", area.Name, area.Type.DisplayName())
			}
		}

		// Pairwise overlap and nesting checks.
		for i, a := range floor.Areas {
			for _, b := range floor.Areas[i+1:] {
				inner, outer := nesting(a, b)
				if inner != nil {
					if d := engine.ValidatePlacement(outer.Type, inner.Type); !d.Valid {
						report("ERROR", "%s inside %s: %s", inner.Name, outer.Name, d.Message)
					}
					continue
				}
				if geometry.Overlaps(a.Shape, b.Shape) {
					report("WARN", "%s overlaps %s", a.Name, b.Name)
				}
			}
		}
	}

	fmt.Printf("\n%d error(s), %d warning(s)\n", errors, warnings)
	return errors == 0
}

// nesting returns (inner, outer) when one area lies fully inside the
// other, else (nil, nil).
func nesting(a, b *model.Area) (*model.Area, *model.Area) {
	if geometry.ContainedIn(a.Shape, b.Shape) {
		return a, b
	}
	if geometry.ContainedIn(b.Shape, a.Shape) {
		return b, a
	}
	return nil, nil
}

// hasCounterpart reports whether any other floor carries an area of
// the same vertical-connection type.
func hasCounterpart(plan *model.Plan, current *model.Floor, typ model.AreaType) bool {
	for _, f := range plan.Floors {
		if f.ID == current.ID {
			continue
		}
		for _, a := range f.Areas {
			if a.Type == typ {
				return true
			}
		}
	}
	return false
}

func printUsage() {
	fmt.Println(`floorplan - mall floor-plan editor

Usage:
  floorplan -i [plan.json]          Edit interactively (creates the plan if missing)
  floorplan -validate plan.json     Validate and print a report

Options:
  -config file.yaml   Drawing configuration (grid_size, snap_enabled, min_area)
  -name string        Name for a newly created plan

Interactive keys:
  r / p / s           Rectangle, polygon, select tool
  t                   Cycle the area type for new shapes
  click               Place a point (second click finishes a rectangle;
                      clicking near the start closes a polygon)
  Enter               Finish the polygon in progress
  Ctrl+Z              Remove the last polygon vertex
  Escape              Cancel the drawing in progress
  w                   Save
  q / Ctrl+C          Quit`)
}
