// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/2dChan/r2voronoi/internal/render"
	"github.com/2dChan/r2voronoi/scene"
	"github.com/2dChan/r2voronoi/session"
	"github.com/golang/geo/r2"
)

const (
	// sizeStep is the default site count change of grow and shrink.
	sizeStep = 100
	// boxStep is the default bounding box change of grow-box and shrink-box.
	boxStep = 0.1
)

var (
	errUnknownCommand = errors.New("unknown command")
	errUsage          = errors.New("usage")
	errQuit           = errors.New("quit")
)

// command is one parsed line of a script.
type command struct {
	name string
	args []string
}

// parseLine splits a script line into a command. Blank lines and lines
// starting with # yield ok == false.
func parseLine(line string) (cmd command, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return command{}, false
	}
	fields := strings.Fields(line)
	return command{name: strings.ToLower(fields[0]), args: fields[1:]}, true
}

// runner applies commands to a session.
type runner struct {
	s       *session.Session
	logger  *slog.Logger
	out     io.Writer
	render  render.Options
	palette scene.Palette
}

type handler struct {
	usage string
	run   func(r *runner, args []string) error
}

var handlers map[string]handler

func init() {
	handlers = map[string]handler{
		"generate": {"generate N", func(r *runner, args []string) error {
			n, err := intArg(args, 0, -1)
			if err != nil {
				return err
			}
			return r.s.Generate(n)
		}},
		"grow": {"grow [N]", func(r *runner, args []string) error {
			n, err := intArg(args, 0, sizeStep)
			if err != nil {
				return err
			}
			return r.s.Grow(n)
		}},
		"shrink": {"shrink [N]", func(r *runner, args []string) error {
			n, err := intArg(args, 0, sizeStep)
			if err != nil {
				return err
			}
			return r.s.Shrink(n)
		}},
		"sitetype": {"sitetype", func(r *runner, _ []string) error {
			return r.s.CycleSiteType()
		}},
		"add": {"add X Y", func(r *runner, args []string) error {
			p, err := pointArg(args)
			if err != nil {
				return err
			}
			return r.s.AddSite(p)
		}},
		"remove": {"remove I", func(r *runner, args []string) error {
			i, err := intArg(args, 0, -1)
			if err != nil {
				return err
			}
			return r.s.RemoveSite(i)
		}},
		"remove-near": {"remove-near X Y", func(r *runner, args []string) error {
			p, err := pointArg(args)
			if err != nil {
				return err
			}
			_, err = r.s.RemoveNearestSite(p, session.RemoveRadius)
			return err
		}},
		"relax": {"relax [N]", func(r *runner, args []string) error {
			n, err := intArg(args, 0, 1)
			if err != nil {
				return err
			}
			return r.s.Relax(n)
		}},
		"undo": {"undo", func(r *runner, _ []string) error {
			r.s.Undo()
			return nil
		}},
		"redo": {"redo", func(r *runner, _ []string) error {
			r.s.Redo()
			return nil
		}},
		"reset": {"reset", func(r *runner, _ []string) error {
			r.s.Reset()
			return nil
		}},
		"refresh": {"refresh", func(r *runner, _ []string) error {
			return r.s.Refresh()
		}},
		"clip": {"clip", func(r *runner, _ []string) error {
			return r.s.ToggleClipBehavior()
		}},
		"grow-box": {"grow-box [D]", func(r *runner, args []string) error {
			d, err := floatArg(args, 0, boxStep)
			if err != nil {
				return err
			}
			return r.s.ResizeBoundingBox(d)
		}},
		"shrink-box": {"shrink-box [D]", func(r *runner, args []string) error {
			d, err := floatArg(args, 0, boxStep)
			if err != nil {
				return err
			}
			return r.s.ResizeBoundingBox(-d)
		}},
		"show-box": {"show-box", func(r *runner, _ []string) error {
			r.s.ToggleBoundingBoxVisible()
			return nil
		}},
		"voronoi": {"voronoi", func(r *runner, _ []string) error {
			r.s.CycleVoronoiTopology()
			return nil
		}},
		"delaunay": {"delaunay", func(r *runner, _ []string) error {
			r.s.CycleDelaunayTopology()
			return nil
		}},
		"path-start": {"path-start X Y", func(r *runner, args []string) error {
			p, err := pointArg(args)
			if err != nil {
				return err
			}
			r.s.PathStartNearest(p)
			return nil
		}},
		"path-end": {"path-end X Y", func(r *runner, args []string) error {
			p, err := pointArg(args)
			if err != nil {
				return err
			}
			r.s.PathEndNearest(p)
			return nil
		}},
		"path": {"path I J", func(r *runner, args []string) error {
			start, err := intArg(args, 0, -1)
			if err != nil {
				return err
			}
			end, err := intArg(args, 1, -1)
			if err != nil {
				return err
			}
			r.s.SetPathEndpoints(start, end)
			return nil
		}},
		"status": {"status", func(r *runner, _ []string) error {
			_, err := fmt.Fprintln(r.out, formatStatus(r.s.StatusLines()))
			return err
		}},
		"render": {"render FILE", func(r *runner, args []string) error {
			if len(args) != 1 {
				return errUsage
			}
			return r.writeImage(args[0])
		}},
		"quit": {"quit", func(*runner, []string) error {
			return errQuit
		}},
	}
	handlers["exit"] = handlers["quit"]
}

// exec runs cmd after making sure a diagram exists.
func (r *runner) exec(cmd command) error {
	h, ok := handlers[cmd.name]
	if !ok {
		return fmt.Errorf("%w %q", errUnknownCommand, cmd.name)
	}
	if cmd.name != "reset" {
		if err := r.s.EnsureDiagram(); err != nil {
			r.logger.Warn("initial diagram failed", "error", err)
		}
	}
	if err := h.run(r, cmd.args); err != nil {
		if errors.Is(err, errUsage) {
			return fmt.Errorf("%w (%s)", err, h.usage)
		}
		return err
	}
	return nil
}

// runScript executes every command read from in. Failing commands are
// logged and skipped unless strict is set.
func (r *runner) runScript(in io.Reader, strict bool) error {
	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		cmd, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		err := r.exec(cmd)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			if strict {
				return fmt.Errorf("line %d: %s: %w", line, cmd.name, err)
			}
			r.logger.Warn("command failed", "line", line, "command", cmd.name, "error", err)
		}
	}
	return scanner.Err()
}

func (r *runner) writeImage(path string) error {
	if err := r.s.EnsureDiagram(); err != nil {
		return err
	}
	sc := scene.Build(r.s, r.palette)
	if err := render.WriteFile(path, sc, r.render); err != nil {
		return err
	}
	r.logger.Info("image written", "path", path, "sites", r.s.NumSites())
	return nil
}

func intArg(args []string, i, def int) (int, error) {
	if i >= len(args) {
		if def < 0 {
			return 0, errUsage
		}
		return def, nil
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", errUsage, args[i])
	}
	return n, nil
}

func floatArg(args []string, i int, def float64) (float64, error) {
	if i >= len(args) {
		return def, nil
	}
	f, err := strconv.ParseFloat(args[i], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", errUsage, args[i])
	}
	return f, nil
}

func pointArg(args []string) (r2.Point, error) {
	if len(args) != 2 {
		return r2.Point{}, errUsage
	}
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return r2.Point{}, fmt.Errorf("%w: %q is not a number", errUsage, args[0])
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return r2.Point{}, fmt.Errorf("%w: %q is not a number", errUsage, args[1])
	}
	return r2.Point{X: x, Y: y}, nil
}
