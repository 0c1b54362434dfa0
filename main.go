package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	watch := flag.Bool("watch", false, "hot reload prefabs and scripts from ./prefabs")
	encounter := flag.String("m", "encounter.yaml", "encounter prefab to load")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("dragonfight")

	game, err := NewGame(*encounter, *debug, *watch)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	// Mouse look needs relative motion, so keep the cursor inside the window.
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
