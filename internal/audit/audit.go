// Package audit reports security incidents to the log and, when configured,
// archives them as JSON documents.
package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/marketplace-auth/internal/logger"
	"github.com/dtroode/marketplace-auth/internal/model"
)

const KindRefreshTokenReuse = "refresh_token_reuse"

// Incident is the archived form of a security event.
type Incident struct {
	ID            uuid.UUID `json:"id"`
	Kind          string    `json:"kind"`
	UserID        uuid.UUID `json:"user_id"`
	RevokedTokens int64     `json:"revoked_tokens"`
	DetectedAt    time.Time `json:"detected_at"`
}

// Key is the object key the incident is archived under.
func (i Incident) Key() string {
	return fmt.Sprintf("%s/%s/%s.json", i.Kind, i.DetectedAt.UTC().Format("2006/01/02"), i.ID)
}

type Recorder struct {
	archive model.IncidentArchive
	logger  *logger.Logger
	now     func() time.Time
}

// NewRecorder creates a recorder. archive may be nil.
func NewRecorder(archive model.IncidentArchive, logger *logger.Logger) *Recorder {
	return &Recorder{
		archive: archive,
		logger:  logger,
		now:     time.Now,
	}
}

// TokenReuse records that a rotated refresh token was presented again.
// Archive failures are logged and never returned.
func (r *Recorder) TokenReuse(ctx context.Context, userID uuid.UUID, revoked int64) {
	incident := Incident{
		ID:            uuid.New(),
		Kind:          KindRefreshTokenReuse,
		UserID:        userID,
		RevokedTokens: revoked,
		DetectedAt:    r.now(),
	}

	r.logger.Warn("Audit: refresh token reuse detected, session chain revoked",
		"incident_id", incident.ID,
		"user_id", userID,
		"revoked_tokens", revoked)

	if r.archive == nil {
		return
	}

	if err := r.store(ctx, incident); err != nil {
		r.logger.Error("Audit: failed to archive incident",
			"incident_id", incident.ID,
			"error", err.Error())
	}
}

func (r *Recorder) store(ctx context.Context, incident Incident) error {
	data, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident: %w", err)
	}

	return r.archive.Upload(ctx, incident.Key(), bytes.NewReader(data), int64(len(data)))
}
