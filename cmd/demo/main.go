package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	ebitenbackend "github.com/milk9111/inputstack/backend/ebiten"
	"github.com/milk9111/inputstack/backend/replay"
	"github.com/milk9111/inputstack/input"
	"github.com/milk9111/inputstack/logger"
	"github.com/milk9111/inputstack/profile"
)

func main() {
	profileName := flag.String("profile", "default.yaml", "binding profile (a copy under profiles/ overrides the embedded one)")
	replayPath := flag.String("replay", "", "drive input from a tengo replay script instead of real devices")
	watch := flag.Bool("watch", false, "re-apply the profile when its file changes")
	logLevel := flag.String("log", "info", "log level: debug, info, warn, error")
	flag.Parse()

	logger.Init(logger.Config{Level: *logLevel, Format: "console"})

	prof, err := profile.LoadProfile(*profileName)
	if err != nil {
		log.Fatalf("%v (available: %s)", err, strings.Join(profile.Names(), ", "))
	}

	backends := []input.Backend{ebitenbackend.New()}
	if *replayPath != "" {
		src, err := os.ReadFile(*replayPath)
		if err != nil {
			log.Fatal(err)
		}
		rb, err := replay.New(src)
		if err != nil {
			log.Fatal(err)
		}
		backends = append(backends, rb)
	}

	pipe := input.New(backends...)
	if err := prof.Apply(pipe); err != nil {
		log.Fatal(err)
	}
	// Debug toggles sit above gameplay; they bind their own keys only, so
	// they never shadow movement.
	if err := pipe.PushContext("debug"); err != nil {
		log.Fatal(err)
	}

	game := NewGame(pipe, *profileName)
	if *watch {
		game.watchProfile()
	}

	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("inputstack demo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
