package discord

import (
	"context"
	"log"
	"time"
)

// ReloadInterval is how often stored overrides are merged back into the catalogue.
const ReloadInterval = 10 * time.Minute

// RunScheduledTasks runs periodic tasks every interval until ctx is done:
// reloading string overrides written by other bot instances.
func (h *Handler) RunScheduledTasks(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.reloadStrings(ctx)
		}
	}
}

func (h *Handler) reloadStrings(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()
	if _, err := h.stringUseCase.Load(ctx); err != nil {
		log.Printf("⚠️ Erreur lors du rechargement des chaînes: %v", err)
	}
}
