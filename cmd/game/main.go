package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"aimrange/internal/game"
)

func main() {
	// A .env file is optional; absence is the normal case.
	if err := godotenv.Load(); err == nil {
		log.Println("loaded settings from .env")
	}
	cfg := game.LoadConfig()

	ebiten.SetWindowTitle("Aim Range")
	ebiten.SetWindowSize(
		int(float64(game.ScreenW())*cfg.Scale),
		int(float64(game.ScreenH())*cfg.Scale),
	)
	if err := ebiten.RunGame(game.New(cfg)); err != nil {
		log.Fatal(err)
	}
}
