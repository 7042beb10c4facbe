package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockpilot/internal/bot"
	"github.com/vovakirdan/blockpilot/internal/config"
)

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List available pilots",
	Args:  cobra.NoArgs,
	RunE:  runPlayers,
}

func runPlayers(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return err
	}

	for _, name := range bot.Names() {
		marker := " "
		if name == cfg.Bot.Player {
			marker = "*"
		}
		fmt.Printf("%s %s\n", marker, name)
	}
	fmt.Println()
	fmt.Println("* configured default (bot.player in tetris.yaml)")
	return nil
}
