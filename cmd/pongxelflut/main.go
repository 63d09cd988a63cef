package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/sync/errgroup"

	"pongxelflut/internal/canvas"
	"pongxelflut/internal/config"
	"pongxelflut/internal/game"
	"pongxelflut/internal/input"
	"pongxelflut/internal/render"
	"pongxelflut/internal/supervisor"
)

func main() {
	configPath := flag.String("config", "", "optional TOML tuning file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] host:port\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	addr := flag.Arg(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	style, err := cfg.Style()
	if err != nil {
		log.Fatal(err)
	}

	// One throwaway connection sizes the world; each streamer dials its own
	// afterwards so a stalled streamer never holds anyone else up.
	sizer, err := canvas.Dial(addr)
	if err != nil {
		log.Fatal(err)
	}
	width, height, err := sizer.Size()
	sizer.Close()
	if err != nil {
		log.Fatal(err)
	}

	world := game.NewWorld(game.Vec{X: width, Y: height}, cfg.Params())
	bindings := input.NewBindings(cfg.Keys.P1Up, cfg.Keys.P1Down, cfg.Keys.P2Up, cfg.Keys.P2Down, cfg.Keys.Start)

	var g errgroup.Group
	g.Go(func() error {
		supervisor.Forever("ball streamer", func() error {
			client, err := canvas.Dial(addr)
			if err != nil {
				return err
			}
			defer client.Close()
			s := render.BallStreamer{World: world, Sink: client, Style: style}
			return s.Run()
		})
		return nil
	})
	g.Go(func() error {
		supervisor.Forever("paddle streamer", func() error {
			client, err := canvas.Dial(addr)
			if err != nil {
				return err
			}
			defer client.Close()
			s := render.PaddleStreamer{World: world, Sink: client, Style: style}
			return s.Run()
		})
		return nil
	})
	g.Go(func() error {
		supervisor.Forever("input dispatcher", func() error {
			d := input.Dispatcher{Bindings: bindings, Sink: world}
			return d.Run()
		})
		return nil
	})
	g.Go(func() error {
		game.NewDriver(cfg.TickInterval(), world.Tick).Run()
		return nil
	})

	// Every loop runs for the process lifetime; only an external signal
	// ends the game.
	g.Wait()
}
