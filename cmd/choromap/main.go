package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"choromap/internal/classify"
	"choromap/internal/config"
	"choromap/internal/geom"
	"choromap/internal/render"
	"choromap/internal/series"
	"choromap/internal/tui"
)

const (
	ExitCodeOK = iota
	ExitCodeError
	ExitCodeUsage
)

type CLI struct {
	outStream, errStream io.Writer
}

func (c *CLI) Run(args []string) int {
	var (
		configPath string
		pngPath    string
		width      int
		height     int
		background string
		labels     bool
	)
	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.SetOutput(c.errStream)
	flags.Usage = func() {
		fmt.Fprintf(c.errStream, "usage: %s [flags] [data.csv|data.geojson|shape.wkt]\n", args[0])
		flags.PrintDefaults()
	}
	flags.StringVar(&configPath, "config", "", "config file (default "+config.DefaultPath+")")
	flags.StringVar(&pngPath, "png", "", "render to this PNG file instead of the terminal")
	flags.IntVar(&width, "width", 800, "PNG width")
	flags.IntVar(&height, "height", 500, "PNG height")
	flags.StringVar(&background, "bg", "#FFFFFF", "PNG background color")
	flags.BoolVar(&labels, "labels", false, "print region values on the PNG")
	if err := flags.Parse(args[1:]); err != nil {
		return ExitCodeUsage
	}
	if flags.NArg() > 1 {
		flags.Usage()
		return ExitCodeUsage
	}

	opts, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(c.errStream, err)
		return ExitCodeError
	}
	if labels {
		opts.DataLabels = true
	}

	if pngPath == "" {
		var m tea.Model
		if flags.NArg() == 1 {
			m = tui.NewWithPath(opts, flags.Arg(0))
		} else {
			m = tui.New(opts)
		}
		if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
			log.Fatal(err)
		}
		return ExitCodeOK
	}

	if flags.NArg() == 0 {
		fmt.Fprintln(c.errStream, "-png needs a data file")
		return ExitCodeUsage
	}
	if err := c.renderPNG(opts, flags.Arg(0), pngPath, width, height, classify.Color(background)); err != nil {
		fmt.Fprintln(c.errStream, err)
		return ExitCodeError
	}
	return ExitCodeOK
}

func (c *CLI) renderPNG(opts config.Options, dataPath, out string, width, height int, bg classify.Color) error {
	data, err := geom.LoadFile(dataPath, opts.ValueProperty, opts.NameProperty)
	if err != nil {
		return err
	}
	s := series.New(opts, data, log.New(c.errStream, "", 0))
	canvas, err := render.Render(s, width, height, bg)
	if err != nil {
		return err
	}
	if err := canvas.SavePNG(out); err != nil {
		return err
	}
	fmt.Fprintf(c.outStream, "wrote %s (%d regions)\n", out, len(s.Points()))
	return nil
}

func main() {
	cli := &CLI{outStream: os.Stdout, errStream: os.Stderr}
	os.Exit(cli.Run(os.Args))
}
