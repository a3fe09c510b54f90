package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/omarshaarawi/ffwrapped/internal/service"
)

const helpText = "Available commands:\n" +
	"/lineup <team> - Best possible lineup from last week\n" +
	"/bench <team> - Who sat on the bench last week and what it cost\n" +
	"/efficiency - Points left on the bench by every team last week\n" +
	"/wrapped <team> - Season summary"

// Reporter builds the chat reports.
type Reporter interface {
	LineupReport(ctx context.Context, teamQuery string) (string, error)
	BenchReport(ctx context.Context, teamQuery string) (string, error)
	EfficiencyReport(ctx context.Context) (string, error)
	SeasonReport(ctx context.Context, teamQuery string) (string, error)
}

type Handler struct {
	reports Reporter
}

func NewHandler(reports Reporter) *Handler {
	return &Handler{reports: reports}
}

func (h *Handler) HandleCommand(ctx context.Context, update tgbotapi.Update) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	command := strings.ToLower(update.Message.Command())
	args := strings.TrimSpace(update.Message.CommandArguments())
	msg.ParseMode = tgbotapi.ModeMarkdown

	switch command {
	case "start":
		msg.Text = "Welcome to ffwrapped! Use /help to see available commands."
	case "help":
		msg.Text = helpText
	case "lineup":
		h.handleTeamReport(ctx, &msg, "lineup", args, h.reports.LineupReport)
	case "bench":
		h.handleTeamReport(ctx, &msg, "bench", args, h.reports.BenchReport)
	case "wrapped":
		h.handleTeamReport(ctx, &msg, "wrapped", args, h.reports.SeasonReport)
	case "efficiency":
		h.handleEfficiency(ctx, &msg)
	default:
		msg.Text = "Unknown command. Use /help to see available commands."
	}

	return msg
}

func (h *Handler) handleTeamReport(ctx context.Context, msg *tgbotapi.MessageConfig, command, args string, report func(context.Context, string) (string, error)) {
	if args == "" {
		msg.Text = fmt.Sprintf("Please provide a team name. Usage: /%s <team name>", command)
		return
	}

	result, err := report(ctx, args)
	var lookupErr *service.TeamLookupError
	switch {
	case errors.As(err, &lookupErr) && len(lookupErr.Candidates) > 0:
		msg.Text = fmt.Sprintf("Which team did you mean? %s", strings.Join(lookupErr.Candidates, ", "))
	case errors.As(err, &lookupErr):
		msg.Text = fmt.Sprintf("No team matches %q.", lookupErr.Query)
	case err != nil:
		slog.Error("Error building report", "command", command, "team", args, "error", err)
		msg.Text = fmt.Sprintf("Error building %s report: %v", command, err)
	default:
		msg.Text = result
	}
}

func (h *Handler) handleEfficiency(ctx context.Context, msg *tgbotapi.MessageConfig) {
	report, err := h.reports.EfficiencyReport(ctx)
	if err != nil {
		slog.Error("Error building efficiency report", "error", err)
		msg.Text = fmt.Sprintf("Error building efficiency report: %v", err)
	} else {
		msg.Text = report
	}
}
