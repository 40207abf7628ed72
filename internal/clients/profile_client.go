package clients

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/mindstep/aiplan/internal/ability"
	"github.com/mindstep/aiplan/internal/profile"
)

// ProfileSource returns the assessment profile of one child.
type ProfileSource interface {
	Profile(ctx context.Context, userID, patientCode string) (profile.Profile, error)
}

// ProfileClient reads profiles from the user-profile service.
type ProfileClient struct {
	get httpGetter
}

func NewProfileClient(baseURL string, timeout time.Duration) *ProfileClient {
	return &ProfileClient{get: newGetter("profile service", baseURL, timeout)}
}

type profileWire struct {
	TrainDays       int                           `json:"train_days"`
	PerceptionScore float64                       `json:"perception_score"`
	ExecScore       float64                       `json:"exec_score"`
	AttentionScore  float64                       `json:"attention_score"`
	MemoryScore     float64                       `json:"memory_score"`
	SubScores       map[string]map[string]float64 `json:"sub_scores"`
	DiseaseTag      string                        `json:"disease_tag"`
	LastTask        *struct {
		ID string `json:"id"`
	} `json:"last_task"`
	WeeklyMissedTaskIDs []string `json:"weekly_missed_task_ids"`
}

func (c *ProfileClient) Profile(ctx context.Context, userID, patientCode string) (profile.Profile, error) {
	var w profileWire
	q := url.Values{"user_id": {userID}, "patient_code": {patientCode}}
	if err := c.get.getJSON(ctx, "/api/v1/profile", q, &w); err != nil {
		return profile.Profile{}, err
	}

	raw := profile.RawProfile{
		UserID:      userID,
		PatientCode: patientCode,
		Scores: map[string]float64{
			string(ability.Perception): w.PerceptionScore,
			string(ability.Exec):       w.ExecScore,
			string(ability.Attention):  w.AttentionScore,
			string(ability.Memory):     w.MemoryScore,
		},
		SubScores:     w.SubScores,
		TrainDays:     w.TrainDays,
		DiseaseTag:    w.DiseaseTag,
		MissedTaskIDs: w.WeeklyMissedTaskIDs,
	}
	if w.LastTask != nil {
		raw.LastTaskID = w.LastTask.ID
	}

	p, err := raw.Build()
	if err != nil {
		return profile.Profile{}, fmt.Errorf("profile service: %w", err)
	}
	return p, nil
}
