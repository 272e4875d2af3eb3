// bladegen sweeps procedural blade meshes from YAML recipes.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Faultbox/bladeforge/internal/config"
	"github.com/Faultbox/bladeforge/internal/forge"
	"github.com/Faultbox/bladeforge/internal/logger"
	"github.com/Faultbox/bladeforge/pkg/formats"
)

// errUsage is returned after usage has been printed for bad arguments.
var errUsage = errors.New("usage")

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stdout)
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Args[2:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) && !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(command string, args []string, stdout, stderr io.Writer) error {
	switch command {
	case "build":
		return cmdBuild(args, stderr)
	case "info":
		return cmdInfo(args, stdout, stderr)
	case "recipe":
		return cmdRecipe(args, stdout, stderr)
	case "help", "-h", "--help":
		printUsage(stdout)
		return nil
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", command)
		printUsage(stderr)
		return errUsage
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `bladegen - procedural blade mesh generator

Usage:
  bladegen <command> [options]

Commands:
  build   [-config f] [-o out] [-tip style] [-debug] [-log f]   Sweep a blade and export it
  info    [-config f] [-tip style] [-debug] [-log f]            Sweep a blade and print mesh statistics
  recipe  [-o f] [-user]                                        Print or save the default recipe

Without -config, ./blade.yaml and the user config directory are searched.

Examples:
  bladegen recipe -o blade.yaml
  bladegen recipe -user
  bladegen build -config blade.yaml -o sword.stl
  bladegen build -tip clip -o cleaver.obj
  bladegen info -config blade.yaml`)
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

// loadRecipe parses the shared recipe flags and loads the config.
func loadRecipe(name string, args []string, stderr io.Writer) (*config.Config, error) {
	fs := newFlagSet(name, stderr)
	flags := config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return config.Load(flags)
}

func cmdBuild(args []string, stderr io.Writer) error {
	cfg, err := loadRecipe("build", args, stderr)
	if err != nil {
		return err
	}
	if _, err := formats.FormatFromPath(cfg.Output.Path); err != nil {
		return err
	}

	log, err := logger.FromConfig(cfg.Logging, stderr)
	if err != nil {
		return err
	}
	defer log.Close()

	g, err := forge.Build(cfg.Blade, log.Named("forge"))
	if err != nil {
		return err
	}
	if err := formats.Save(cfg.Output.Path, g); err != nil {
		return fmt.Errorf("saving %s: %w", cfg.Output.Path, err)
	}

	log.Sugar().Infof("wrote %s (%d triangles)", cfg.Output.Path, g.TriangleCount())
	return nil
}

func cmdInfo(args []string, stdout, stderr io.Writer) error {
	cfg, err := loadRecipe("info", args, stderr)
	if err != nil {
		return err
	}

	log, err := logger.FromConfig(cfg.Logging, stderr)
	if err != nil {
		return err
	}
	defer log.Close()

	g, err := forge.Build(cfg.Blade, log.Named("forge"))
	if err != nil {
		return err
	}

	fmt.Fprint(stdout, forge.Stats(g))
	return nil
}

func cmdRecipe(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("recipe", stderr)
	out := fs.String("o", "", "Write the recipe to this file instead of stdout")
	user := fs.Bool("user", false, "Save the recipe as blade.yaml in the user config directory")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	switch {
	case *out != "":
		return cfg.SaveTo(*out)
	case *user:
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Fprintf(stderr, "saved %s\n", filepath.Join(config.ConfigDir(), "blade.yaml"))
		return nil
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = stdout.Write(data)
	return err
}
