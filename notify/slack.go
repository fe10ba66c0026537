package notify

import (
	"fmt"
	"os"
	"strings"

	"github.com/slack-go/slack"

	"gardiendutemps.fr/gardien/core"
)

type Slack struct {
	client  *slack.Client
	options SlackOption
}

type SlackOption struct {
	InfoChannelID  string
	ErrorChannelID string
}

func ConnectSlack() *Slack {
	token := os.Getenv("SLACK_BOT_TOKEN")
	infoCh := os.Getenv("SLACK_INFO_CHANNEL")
	errorCh := os.Getenv("SLACK_ERROR_CHANNEL")

	return NewSlack(token, SlackOption{InfoChannelID: infoCh, ErrorChannelID: errorCh})
}

func NewSlack(token string, options SlackOption) *Slack {
	client := slack.New(token)
	return &Slack{client: client, options: options}
}

func (s *Slack) postMessage(channelID, message string) error {
	_, _, err := s.client.PostMessage(
		channelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		return fmt.Errorf("failed to post message to Slack: %w", err)
	}
	return nil
}

func (s *Slack) Info(message string) error {
	return s.postMessage(s.options.InfoChannelID, message)
}

func (s *Slack) Error(message string) error {
	return s.postMessage(s.options.ErrorChannelID, message)
}

// Anomaly is one user whose day ended in a suspicious state, e.g. an arrival
// without a departure or a break left open overnight.
type Anomaly struct {
	UserID int32
	Name   string
	Day    core.DaySummary
}

// DayCloseReport posts the end-of-day anomaly list for one date. No anomalies
// still posts a short all-clear so the channel shows the job ran.
func (s *Slack) DayCloseReport(date string, anomalies []Anomaly) error {
	if len(anomalies) == 0 {
		return s.Info(fmt.Sprintf("Clôture du %s : aucun pointage incomplet.", date))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Clôture du %s : %d pointage(s) incomplet(s)\n", date, len(anomalies))
	for _, a := range anomalies {
		fmt.Fprintf(&b, "• %s (#%d) — %s", a.Name, a.UserID, describeDay(a.Day))
		b.WriteString("\n")
	}
	return s.Error(b.String())
}

func describeDay(day core.DaySummary) string {
	switch day.Status {
	case core.StatusOnBreak:
		return "pause non terminée"
	case core.StatusInProgress:
		return "départ manquant"
	default:
		return string(day.Status)
	}
}
