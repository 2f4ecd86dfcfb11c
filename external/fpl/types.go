package fpl

import (
	"strings"

	"github.com/riskibarqy/fantasy-lineups/internal/domain/player"
)

type bootstrapEnvelope struct {
	Elements []element `json:"elements"`
}

type element struct {
	ID                       int64  `json:"id" validate:"gt=0"`
	WebName                  string `json:"web_name" validate:"required"`
	FirstName                string `json:"first_name"`
	SecondName               string `json:"second_name"`
	Team                     int64  `json:"team" validate:"gt=0"`
	ElementType              int    `json:"element_type"`
	Status                   string `json:"status"`
	ChanceOfPlayingNextRound *int   `json:"chance_of_playing_next_round"`
}

func (e element) toPlayer() player.Player {
	return player.Player{
		ID:                       e.ID,
		DisplayName:              strings.TrimSpace(e.WebName),
		FirstName:                strings.TrimSpace(e.FirstName),
		LastName:                 strings.TrimSpace(e.SecondName),
		TeamID:                   e.Team,
		PositionCode:             e.ElementType,
		ChanceOfPlayingNextRound: e.ChanceOfPlayingNextRound,
		Status:                   e.Status,
	}
}
