package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	levelIndex := flag.Int("level", 1, "level to start from (1-based)")
	debug := flag.Bool("debug", false, "enable debug logging and the F9 game complete shortcut")
	watch := flag.Bool("watch", false, "reload prefabs from disk when they change")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	game, err := NewGame(*levelIndex, *debug, *watch)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(game.WindowWidth(), game.WindowHeight())
	ebiten.SetWindowTitle(game.title())

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
