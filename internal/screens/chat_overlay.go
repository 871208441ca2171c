package screens

import (
	"fmt"
	"time"

	"github.com/BrandonKowalski/gabagool/v2/pkg/gabagool"
	"github.com/BrandonKowalski/gabagool/v2/pkg/gabagool/constants"

	"github.com/travelbuddy/travelbuddy/internal/domain"
)

// chatOverlay runs the trip chat until the user backs out. The
// transcript survives the overlay; reopening the chat shows the full
// history.
func (s *Screens) chatOverlay(trip domain.Trip) {
	sender, ok := s.Session.Current()
	if !ok {
		return
	}
	sess := s.chatFor(trip.ID)
	chatIcon := s.iconPath("chat", 96)

	for {
		messages := sess.Messages()
		items := make([]gabagool.ItemWithOptions, 0, len(messages))
		for _, msg := range messages {
			items = append(items, gabagool.ItemWithOptions{
				Item: gabagool.MenuItem{
					Text:          msg.SenderName + ": " + msg.Message,
					ImageFilename: chatIcon,
				},
				Options: []gabagool.Option{
					{DisplayName: relativeTime(msg.Timestamp, time.Now()), Type: gabagool.OptionTypeStandard},
				},
			})
		}

		settings := gabagool.OptionListSettings{
			ActionButton:         constants.VirtualButtonX,
			InitialSelectedIndex: len(items) - 1,
			UseSmallTitle:        true,
			FooterHelpItems: []gabagool.FooterHelpItem{
				{ButtonName: "X", HelpText: s.T("chat.send")},
				{ButtonName: "B", HelpText: s.T("footer.back")},
			},
		}

		res, err := gabagool.OptionsList(s.T("chat.title")+" - "+trip.Title, settings, items)
		if err != nil {
			return
		}
		if res.Action != gabagool.ListActionTriggered {
			continue
		}

		kb, err := gabagool.Keyboard("", s.T("chat.compose"))
		if err != nil || kb.Text == "" {
			continue
		}
		before := len(sess.Messages())
		sess.Send(sender, kb.Text)
		s.awaitReply(sess.Messages, before)
	}
}

// awaitReply gives the assistant a beat to answer so the reply is on
// screen when the transcript re-renders.
func (s *Screens) awaitReply(messages func() []domain.ChatMessage, before int) {
	deadline := time.Now().Add(s.Cfg.ReplyDelay() + 500*time.Millisecond)
	for time.Now().Before(deadline) {
		if len(messages()) >= before+2 {
			return
		}
		time.Sleep(25 * time.Millisecond)
	}
}

// relativeTime renders a coarse age for chat timestamps.
func relativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return t.Format("Jan 2")
	}
}
