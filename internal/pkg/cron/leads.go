package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/opsgrid/workforce-backend-go/internal/domain/lead"
)

type LeadJobs struct {
	leadRepo lead.LeadRepository
}

func NewLeadJobs(leadRepo lead.LeadRepository) *LeadJobs {
	return &LeadJobs{leadRepo: leadRepo}
}

func (j *LeadJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("report_stale_leads", 1*time.Hour, j.ReportStaleLeads)
}

// ReportStaleLeads logs how many NEW leads have gone uncontacted past the
// staleness threshold. Staleness itself is never written back; the flag is
// derived on every read.
func (j *LeadJobs) ReportStaleLeads(ctx context.Context) error {
	leads, err := j.leadRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list leads: %w", err)
	}

	now := time.Now()
	stale := 0
	for _, l := range leads {
		if lead.IsStale(l, now) {
			stale++
		}
	}

	if stale > 0 {
		slog.Warn("Stale chatbot leads awaiting contact", "count", stale, "threshold_hours", lead.StaleAfterHours)
	}
	return nil
}
