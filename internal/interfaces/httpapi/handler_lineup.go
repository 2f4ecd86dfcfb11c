package httpapi

import (
	"net/http"
)

// GetLineups writes the lineup map as a bare JSON object keyed by
// "<home_team_id>-<away_team_id>". Errors use the standard envelope.
func (h *Handler) GetLineups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLineups")
	defer span.End()

	result, err := h.lineupService.BuildLineups(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "build lineups failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	if h.cacheControl != "" {
		w.Header().Set("Cache-Control", h.cacheControl)
	}
	writeJSON(ctx, w, http.StatusOK, result)
}

func (h *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CheckAvailability")
	defer span.End()

	var req availabilityRequest
	if err := h.decodeJSON(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.lineupService.Availability(ctx, req.toPicks())
	if err != nil {
		h.logger.WarnContext(ctx, "check availability failed", "picks", len(req.Picks), "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]availabilityDTO, 0, len(items))
	for _, item := range items {
		out = append(out, availabilityToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}
