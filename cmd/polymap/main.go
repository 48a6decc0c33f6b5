package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"polymap/internal/canvas"
	"polymap/internal/config"
	"polymap/internal/designer"
	"polymap/internal/tui"
)

func main() {
	cfgPath := flag.String("config", "", "TOML config file")
	mapPath := flag.String("map", "", "map file used by save and load (overrides config)")
	logPath := flag.String("log", "polymap.log", "log file for interactive mode")
	script := flag.String("script", "", "replay events from `file` (- for stdin) instead of the terminal")
	dump := flag.Bool("dump", false, "with -script, print the final frame")
	cols := flag.Int("cols", 80, "with -script, canvas width in cells")
	rows := flag.Int("rows", 24, "with -script, canvas height in cells")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: polymap [flags] [map.json]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if *mapPath != "" {
		cfg.MapPath = *mapPath
	}
	opts := cfg.Options()

	if *script != "" {
		if err := runScript(*script, opts, *cols, *rows, *dump); err != nil {
			log.Fatal(err)
		}
		return
	}

	f, err := tea.LogToFile(*logPath, "polymap")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	cv := canvas.New(opts.Size, *cols, *rows)
	d := designer.New(cv, opts)
	var m tea.Model
	if flag.NArg() > 0 {
		m = tui.NewWithPath(d, cv, flag.Arg(0))
	} else {
		m = tui.New(d, cv)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}

// runScript drives the designer headlessly from an event script.
func runScript(path string, opts designer.Options, cols, rows int, dump bool) error {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	cv := canvas.New(opts.Size, cols, rows)
	d := designer.New(cv, opts)
	if err := d.Start(designer.NewScriptSource(r)); err != nil {
		return err
	}
	if dump {
		fmt.Println(cv.Plain())
	}
	fmt.Printf("%s  lines=%d\n", d.Status(), len(d.Lines()))
	return nil
}
