// Command mapdump prints a generated map to the terminal, for checking
// seeds and generator settings without starting the game.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/samdwyer/wildrealm/internal/config"
	"github.com/samdwyer/wildrealm/internal/gamedata"
	"github.com/samdwyer/wildrealm/internal/random"
	"github.com/samdwyer/wildrealm/internal/world"
)

type options struct {
	seed    uint64
	dungeon int // -1 for the overworld
	level   int
	config  string
	color   string // auto, always or never
	summary bool
	styles  bool // list the dungeon palettes instead of printing a map
}

func main() {
	_ = godotenv.Load()

	env, err := config.ParseEnv()
	if err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}

	opts, err := parseFlags(os.Args[1:], env)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	useColor := opts.color == "always" ||
		(opts.color == "auto" && term.IsTerminal(int(os.Stdout.Fd())))

	if err := run(context.Background(), opts, useColor, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func parseFlags(args []string, env config.Env) (options, error) {
	fs := flag.NewFlagSet("mapdump", flag.ContinueOnError)
	opts := options{}
	fs.Uint64Var(&opts.seed, "seed", env.Seed, "world seed (0 picks one)")
	fs.IntVar(&opts.dungeon, "dungeon", -1, "dungeon index to print, -1 for the overworld")
	fs.IntVar(&opts.level, "level", 0, "dungeon level to print")
	fs.StringVar(&opts.config, "config", env.MapGenFile, "map generation YAML file")
	fs.StringVar(&opts.color, "color", "auto", "colorize output: auto, always or never")
	fs.BoolVar(&opts.summary, "summary", true, "print a world summary after the map")
	fs.BoolVar(&opts.styles, "styles", false, "list the dungeon palettes and exit")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	switch opts.color {
	case "auto", "always", "never":
	default:
		return options{}, fmt.Errorf("invalid -color %q", opts.color)
	}
	if opts.dungeon < -1 || opts.level < 0 {
		return options{}, errors.New("-dungeon and -level must not be negative")
	}
	return opts, nil
}

func run(ctx context.Context, opts options, useColor bool, out io.Writer) error {
	if opts.styles {
		styles, err := gamedata.LoadStyleRegistry()
		if err != nil {
			return err
		}
		return writeStyles(out, styles, useColor)
	}

	cfg, err := config.LoadOrDefault(opts.config)
	if err != nil {
		return err
	}
	seed, err := random.SeedOrNew(opts.seed)
	if err != nil {
		return err
	}

	w, err := world.NewWorld(ctx, seed, cfg)
	if err != nil {
		return err
	}

	loc := world.Overworld
	if opts.dungeon >= 0 {
		loc = world.Location{InDungeon: true, Dungeon: opts.dungeon, Level: opts.level}
	}
	m := w.MapAt(loc)
	if m == nil {
		return fmt.Errorf("no map at %s: world has %d dungeons", loc, len(w.Dungeons))
	}

	var p *palette
	if useColor {
		styles, err := gamedata.LoadStyleRegistry()
		if err != nil {
			return err
		}
		p = newPalette(styles)
		if style, ok := w.StyleAt(loc); ok {
			p.useStyle(style.String())
		}
	}

	if err := writeMap(out, m, p); err != nil {
		return err
	}
	if opts.summary {
		return writeSummary(out, w)
	}
	return nil
}
