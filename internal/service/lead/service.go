package lead

import (
	"context"
	"fmt"
	"time"

	"github.com/opsgrid/workforce-backend-go/internal/domain/lead"
	"github.com/opsgrid/workforce-backend-go/internal/domain/user"
	"github.com/opsgrid/workforce-backend-go/internal/domain/workflow"
)

type LeadService interface {
	Capture(ctx context.Context, req lead.CaptureLeadRequest) (lead.Lead, error)
	Get(ctx context.Context, id string) (lead.LeadItem, error)
	List(ctx context.Context, filter lead.LeadFilter) ([]lead.LeadItem, int64, error)
	UpdateStatus(ctx context.Context, actor user.Actor, req lead.UpdateLeadStatusRequest) (lead.Lead, error)
}

type leadService struct {
	leads lead.LeadRepository
	now   func() time.Time
}

func NewLeadService(leads lead.LeadRepository) LeadService {
	return &leadService{
		leads: leads,
		now:   time.Now,
	}
}

// Capture creates a NEW lead from the public chatbot widget. No auth; the
// widget posts name, email and a free-form requirement.
func (s *leadService) Capture(ctx context.Context, req lead.CaptureLeadRequest) (lead.Lead, error) {
	l := lead.Lead{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Requirement: req.Requirement,
		Status:      lead.StatusNew,
	}

	created, err := s.leads.Create(ctx, l)
	if err != nil {
		return lead.Lead{}, fmt.Errorf("failed to capture lead: %w", err)
	}

	return created, nil
}

func (s *leadService) Get(ctx context.Context, id string) (lead.LeadItem, error) {
	l, err := s.leads.GetByID(ctx, id)
	if err != nil {
		return lead.LeadItem{}, err
	}

	return lead.LeadItem{Lead: l, IsStale: lead.IsStale(l, s.now())}, nil
}

// List attaches the derived staleness flag to each lead at read time.
func (s *leadService) List(ctx context.Context, filter lead.LeadFilter) ([]lead.LeadItem, int64, error) {
	leads, total, err := s.leads.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	now := s.now()
	items := make([]lead.LeadItem, 0, len(leads))
	for _, l := range leads {
		items = append(items, lead.LeadItem{Lead: l, IsStale: lead.IsStale(l, now)})
	}

	return items, total, nil
}

func (s *leadService) UpdateStatus(ctx context.Context, actor user.Actor, req lead.UpdateLeadStatusRequest) (lead.Lead, error) {
	l, err := s.leads.GetByID(ctx, req.ID)
	if err != nil {
		return lead.Lead{}, err
	}

	next, err := workflow.Transition(workflow.Request{
		Entity:  workflow.EntityLead,
		Current: string(l.Status),
		Target:  req.Status,
		Role:    actor.Role,
	})
	if err != nil {
		return lead.Lead{}, err
	}

	if next == string(l.Status) {
		return l, nil
	}

	updated, err := s.leads.UpdateStatus(ctx, l.ID, lead.Status(next))
	if err != nil {
		return lead.Lead{}, fmt.Errorf("failed to update lead status: %w", err)
	}

	return updated, nil
}
