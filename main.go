package main

import (
	"bufio"
	"flag"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"darkmaze/pkg/engine/input"
	"darkmaze/pkg/engine/terminal"
	"darkmaze/pkg/game/config"
	"darkmaze/pkg/game/devtools"
	"darkmaze/pkg/game/gameplay"
	"darkmaze/pkg/game/generator"
	"darkmaze/pkg/game/messages"
	"darkmaze/pkg/game/renderer"
	ebitenrenderer "darkmaze/pkg/game/renderer/ebiten"
	"darkmaze/pkg/game/renderer/text"
	"darkmaze/pkg/game/renderer/tui"
)

// Lines kept free under the map when fitting the maze to the terminal
const fitReserved = 2

var (
	log = logrus.New()

	configPath string
	cfg        = config.Default()
)

func init() {
	const usage = "JSON config file path"
	flag.StringVar(&configPath, "config", "", usage)
	flag.StringVar(&configPath, "c", "", usage+" (shorthand)")

	flag.IntVar(&cfg.Width, "width", cfg.Width, "maze width in rooms")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "maze height in rooms")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 picks one from the clock")
	flag.StringVar(&cfg.Mode, "mode", cfg.Mode, "print, walk, gui or dump")
	flag.BoolVar(&cfg.Entrances, "entrances", cfg.Entrances, "open an entrance in the top and bottom edges")
	flag.BoolVar(&cfg.Fit, "fit", cfg.Fit, "size the maze to the terminal")

	flag.IntVar(&cfg.RoomWidth, "room-width", cfg.RoomWidth, "characters per room horizontally")
	flag.IntVar(&cfg.RoomHeight, "room-height", cfg.RoomHeight, "characters per room vertically")
	flag.StringVar(&cfg.Wall, "wall", cfg.Wall, "wall character")
	flag.StringVar(&cfg.Floor, "floor", cfg.Floor, "floor character")
	flag.BoolVar(&cfg.Color, "color", cfg.Color, "colour the text output")

	flag.Float64Var(&cfg.Margin, "margin", cfg.Margin, "distance the walker keeps from walls, in rooms")
	flag.Float64Var(&cfg.Step, "step", cfg.Step, "distance of one walker step, in rooms")
	flag.IntVar(&cfg.Scale, "scale", cfg.Scale, "pixels per room in the gui")

	flag.StringVar(&cfg.Out, "out", cfg.Out, "write print and dump output to this file")
	flag.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "debug logging")
}

// loadConfig reads the config file, if any, keeping the flags given on the
// command line over its values
func loadConfig() {
	if configPath == "" {
		return
	}

	given := map[string]string{}
	flag.Visit(func(f *flag.Flag) {
		given[f.Name] = f.Value.String()
	})

	if err := config.Read(configPath, &cfg); err != nil {
		log.Fatal(err)
	}

	for name, value := range given {
		if err := flag.Set(name, value); err != nil {
			log.Fatalf("unable to restore flag %s: %s", name, err)
		}
	}
}

func setupLogging() {
	logLevel := logrus.InfoLevel
	if cfg.Verbose {
		logLevel = logrus.DebugLevel
	}
	formatter := &logrus.TextFormatter{ForceColors: terminal.IsTerminal(os.Stderr)}

	for _, l := range []*logrus.Logger{log, generator.Log, gameplay.Log, ebitenrenderer.Log} {
		l.SetLevel(logLevel)
		l.SetFormatter(formatter)
	}
}

func setupBindings() {
	for name, key := range cfg.Bindings {
		action, ok := input.ActionByName(name)
		if !ok {
			log.Fatalf("unknown action in bindings: %s", name)
		}
		input.SetSingleBinding(action, key)
	}
}

func textOptions() text.Options {
	return text.Options{
		RoomWidth:  cfg.RoomWidth,
		RoomHeight: cfg.RoomHeight,
		Wall:       []rune(cfg.Wall)[0],
		Floor:      []rune(cfg.Floor)[0],
		Color:      cfg.Color,
	}
}

// output returns where print and dump write to
func output() (io.Writer, func()) {
	if cfg.Out == "" {
		return os.Stdout, func() {}
	}
	f, err := os.Create(cfg.Out)
	if err != nil {
		log.Fatal("unable to create output file: ", err)
	}
	return f, func() {
		if err := f.Close(); err != nil {
			log.Error("unable to close output file: ", err)
		}
	}
}

func runPrint() {
	g, err := gameplay.GenerateMaze(cfg.Width, cfg.Height, cfg.Seed, cfg.Entrances)
	if err != nil {
		log.Fatal(err)
	}

	out, done := output()
	defer done()
	if err := text.Render(out, g, textOptions()); err != nil {
		log.Fatal("unable to render maze: ", err)
	}
	log.Info(messages.Get(messages.Generated, g.Width(), g.Height(), cfg.Seed))
}

func runDump() {
	g, err := gameplay.GenerateMaze(cfg.Width, cfg.Height, cfg.Seed, cfg.Entrances)
	if err != nil {
		log.Fatal(err)
	}

	out, done := output()
	defer done()
	if err := devtools.DumpMap(out, g, cfg.Seed); err != nil {
		log.Fatal("unable to dump maze: ", err)
	}
}

func runWalk() {
	w, err := gameplay.BuildWalker(cfg)
	if err != nil {
		log.Fatal(err)
	}

	var out io.Writer = os.Stdout
	if terminal.IsTerminal(os.Stdin) {
		restore, err := terminal.MakeRaw(os.Stdin)
		if err != nil {
			log.Fatal("unable to put the terminal in raw mode: ", err)
		}
		defer restore()
		out = terminal.CRLFWriter{W: os.Stdout}
	}

	t := tui.New(out, textOptions())
	renderer.SetRenderer(t)
	renderer.Init()

	if err := t.Run(w, bufio.NewReader(os.Stdin)); err != nil {
		log.Error(err)
		return
	}
	log.WithFields(logrus.Fields{"moves": w.Moves, "escaped": w.Escaped}).Debug("walk finished")
}

func runGUI() {
	w, err := gameplay.BuildWalker(cfg)
	if err != nil {
		log.Fatal(err)
	}

	e := ebitenrenderer.New(w, cfg.Scale)
	renderer.SetRenderer(e)
	if err := e.Run(); err != nil {
		log.Fatal(err)
	}
}

func main() {
	flag.Parse()
	loadConfig()

	if cfg.Fit {
		width, height := terminal.GetSize()
		reserved := fitReserved
		if cfg.Mode == config.ModeWalk {
			reserved = tui.ViewportTopMargin
		}
		cfg.Width, cfg.Height = terminal.FitMaze(width, height, cfg.RoomWidth, cfg.RoomHeight, reserved)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	setupLogging()
	setupBindings()

	cfg.Seed = generator.ResolveSeed(cfg.Seed)

	log.WithFields(cfg.Fields()).Debug("config")

	switch cfg.Mode {
	case config.ModePrint:
		runPrint()
	case config.ModeDump:
		runDump()
	case config.ModeWalk:
		runWalk()
	case config.ModeGUI:
		runGUI()
	}
}
