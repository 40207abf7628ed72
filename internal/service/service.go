// Package service runs one plan request end to end: fetch the profile and
// catalog, assemble the plan and record it in the audit log.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mindstep/aiplan/internal/clients"
	"github.com/mindstep/aiplan/internal/plan"
	"github.com/mindstep/aiplan/internal/profile"
	"github.com/mindstep/aiplan/internal/store"
)

var (
	// ErrInvalidRequest marks caller mistakes.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrUpstream marks failures of the profile or task service.
	ErrUpstream = errors.New("upstream unavailable")
)

// PlanService generates plans for remote or inline profiles.
type PlanService struct {
	profiles  clients.ProfileSource
	catalog   clients.CatalogSource
	assembler *plan.Assembler
	repo      store.EventRepo
	locale    string
	logger    *zap.Logger
}

// Deps are the collaborators of a PlanService. Repo may be nil.
type Deps struct {
	Profiles  clients.ProfileSource
	Catalog   clients.CatalogSource
	Assembler *plan.Assembler
	Repo      store.EventRepo
	Locale    string
	Logger    *zap.Logger
}

func New(d Deps) *PlanService {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	return &PlanService{
		profiles:  d.Profiles,
		catalog:   d.Catalog,
		assembler: d.Assembler,
		repo:      d.Repo,
		locale:    d.Locale,
		logger:    d.Logger,
	}
}

// Generate fetches the profile and catalog concurrently and assembles the
// plan.
func (s *PlanService) Generate(ctx context.Context, userID, patientCode string) (*plan.Plan, error) {
	userID, patientCode = strings.TrimSpace(userID), strings.TrimSpace(patientCode)
	if userID == "" || patientCode == "" {
		return nil, fmt.Errorf("%w: user_id and patient_code are required", ErrInvalidRequest)
	}
	if s.profiles == nil || s.catalog == nil {
		return nil, fmt.Errorf("%w: remote sources are not configured", ErrUpstream)
	}

	var (
		prof    profile.Profile
		catalog []profile.TaskCatalogEntry
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.profiles.Profile(gctx, userID, patientCode)
		if err != nil {
			return fmt.Errorf("fetch profile: %w", err)
		}
		prof = p
		return nil
	})
	g.Go(func() error {
		c, err := s.catalog.Catalog(gctx)
		if err != nil {
			return fmt.Errorf("fetch catalog: %w", err)
		}
		catalog = c
		return nil
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, clients.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	return s.Preview(ctx, prof, catalog)
}

// Preview assembles a plan from an inline profile and catalog.
func (s *PlanService) Preview(ctx context.Context, p profile.Profile, catalog []profile.TaskCatalogEntry) (*plan.Plan, error) {
	out, err := s.assembler.Assemble(ctx, plan.Request{Profile: p, Catalog: catalog})
	if err != nil {
		s.logger.Error("assemble plan", zap.String("user_id", p.UserID), zap.Error(err))
		return nil, err
	}
	s.record(ctx, p, out)
	return out, nil
}

// record writes the plan to the audit log. Failures never fail the request.
func (s *PlanService) record(ctx context.Context, p profile.Profile, out *plan.Plan) {
	if s.repo == nil {
		return
	}
	body, err := json.Marshal(out)
	if err != nil {
		s.logger.Warn("encode plan for audit", zap.Error(err))
		return
	}
	err = s.repo.AppendPlanEvent(ctx, store.PlanEvent{
		PlanID:         out.PlanID,
		UserID:         p.UserID,
		PatientCode:    p.PatientCode,
		UserType:       string(out.UserType),
		Rule:           out.Trace.Rule,
		Locale:         s.locale,
		DroppedTaskIDs: out.Trace.Dropped,
		PlanJSON:       string(body),
	})
	if err != nil {
		s.logger.Warn("record plan event", zap.String("plan_id", out.PlanID), zap.Error(err))
	}
}
