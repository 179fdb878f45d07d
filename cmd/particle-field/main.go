package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/particle-field/audio"
	"github.com/lixenwraith/particle-field/core"
	"github.com/lixenwraith/particle-field/engine"
	"github.com/lixenwraith/particle-field/parameter"
	"github.com/lixenwraith/particle-field/scene"
	"github.com/lixenwraith/particle-field/terminal"
)

var (
	countFlag = flag.Int("count", parameter.FieldDefaultCount, "Number of particles")
	fpsFlag   = flag.Int("fps", parameter.FrameRate, "Target frames per second")
	seedFlag  = flag.Int64("seed", 0, "Random seed, 0 for time based")
	debugFlag = flag.Bool("debug", false, "Write debug log to logs/")
	soundFlag = flag.Bool("sound", false, "Play ambient drone tracking camera distance")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		log.Printf("exit with error: %v", err)
		fmt.Fprintf(os.Stderr, "particle-field: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := scene.Config{
		Count:  *countFlag,
		Source: rand.New(rand.NewSource(seed)),
	}
	log.Printf("starting: count=%d fps=%d seed=%d", cfg.Count, *fpsFlag, seed)

	audioCfg := audio.LoadConfig()
	if *soundFlag {
		audioCfg.Enabled = true
	}
	drone := audio.NewDrone(audioCfg)
	if err := drone.Start(); err != nil {
		log.Printf("audio start failed: %v (continuing without audio)", err)
	}
	defer drone.Stop()

	screen, err := terminal.Open()
	if err != nil {
		return err
	}
	defer screen.Close()

	h, err := newHost(screen, cfg, engine.NewPausableClock(), drone)
	if err != nil {
		return err
	}
	defer h.scene.Unmount()

	cmds := make(chan terminal.Command, 64)
	loop := engine.NewLoop(*fpsFlag)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(core.Guard(func() error {
		return terminal.Pump(gctx, screen, cmds)
	}))
	g.Go(func() error {
		// PollEvent only returns once the screen is finalized
		<-gctx.Done()
		screen.Close()
		return nil
	})
	g.Go(core.Guard(func() error {
		return loop.Run(gctx, func() error { return h.frame(cmds) })
	}))

	err = g.Wait()
	log.Printf("stopped after %d frames", loop.Frames())
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}
