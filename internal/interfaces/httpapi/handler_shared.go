package httpapi

import (
	"github.com/riskibarqy/fantasy-lineups/internal/usecase"
)

type availabilityRequest struct {
	Picks []availabilityPickRequest `json:"picks" validate:"required,min=1,max=30,dive"`
}

type availabilityPickRequest struct {
	PlayerID   int64 `json:"player_id" validate:"required,gt=0"`
	HomeTeamID int64 `json:"home_team_id" validate:"required,gt=0"`
	AwayTeamID int64 `json:"away_team_id" validate:"required,gt=0,nefield=HomeTeamID"`
}

func (r availabilityRequest) toPicks() []usecase.AvailabilityPick {
	out := make([]usecase.AvailabilityPick, 0, len(r.Picks))
	for _, pick := range r.Picks {
		out = append(out, usecase.AvailabilityPick{
			PlayerID:   pick.PlayerID,
			HomeTeamID: pick.HomeTeamID,
			AwayTeamID: pick.AwayTeamID,
		})
	}
	return out
}

type availabilityDTO struct {
	PlayerID  int64  `json:"player_id"`
	Indicator string `json:"indicator"`
	Source    string `json:"source"`
	Status    string `json:"status,omitempty"`
}

func availabilityToDTO(item usecase.Availability) availabilityDTO {
	return availabilityDTO{
		PlayerID:  item.PlayerID,
		Indicator: string(item.Indicator),
		Source:    string(item.Source),
		Status:    string(item.Status),
	}
}
