package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// Reporter builds the scheduled league reports.
type Reporter interface {
	EfficiencyReport(ctx context.Context) (string, error)
}

type Scheduler struct {
	s           gocron.Scheduler
	reports     Reporter
	sendMessage func(string) error
}

func NewScheduler(reports Reporter, sendMessage func(string) error) (*Scheduler, error) {
	location, err := time.LoadLocation("America/Chicago") // CDT
	if err != nil {
		slog.Error("Failed to load location", "error", err)
		location = time.UTC
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:           s,
		reports:     reports,
		sendMessage: sendMessage,
	}, nil
}

func (s *Scheduler) Start() error {
	// Lineup efficiency - Tuesday 7:30 CDT, once Monday night is final
	_, err := s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Tuesday), gocron.NewAtTimes(gocron.NewAtTime(7, 30, 0))),
		gocron.NewTask(s.sendEfficiency),
		gocron.WithName("lineup-efficiency"),
	)
	if err != nil {
		return fmt.Errorf("failed to create efficiency job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

// Jobs lists the registered job names.
func (s *Scheduler) Jobs() []string {
	jobs := s.s.Jobs()
	names := make([]string, len(jobs))
	for i, j := range jobs {
		names[i] = j.Name()
	}
	return names
}

func (s *Scheduler) sendEfficiency() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	report, err := s.reports.EfficiencyReport(ctx)
	if err != nil {
		slog.Error("Failed to get efficiency report", "error", err)
		return
	}
	if err := s.sendMessage(report); err != nil {
		slog.Error("Failed to send efficiency report", "error", err)
	}
}
