package webhook

import (
	"github.com/samber/lo"
)

// MessageTexts flattens every message text in the response, in entry order
// then messaging order. Items without a message payload, or whose message has
// no text, are skipped rather than treated as errors, so the helper is safe
// on mixed batches containing postbacks and optins.
func MessageTexts(resp *Response) []string {
	if resp == nil {
		return nil
	}

	return lo.FlatMap(resp.Entry, func(entry Entry, _ int) []string {
		return lo.FilterMap(entry.Messaging, func(m Messaging, _ int) (string, bool) {
			if m.Message == nil || m.Message.Text == nil {
				return "", false
			}

			return *m.Message.Text, true
		})
	})
}

// MessageAttachments flattens every message attachment in the response,
// preserving entry, then messaging, then attachment order.
func MessageAttachments(resp *Response) []Attachment {
	if resp == nil {
		return nil
	}

	return lo.FlatMap(resp.Entry, func(entry Entry, _ int) []Attachment {
		return lo.FlatMap(entry.Messaging, func(m Messaging, _ int) []Attachment {
			if m.Message == nil {
				return nil
			}

			return m.Message.Attachments
		})
	})
}

// MessageSenders flattens every sender id in the response, same ordering
// discipline as MessageTexts. Items without a sender are skipped.
func MessageSenders(resp *Response) []string {
	if resp == nil {
		return nil
	}

	return lo.FlatMap(resp.Entry, func(entry Entry, _ int) []string {
		return lo.FilterMap(entry.Messaging, func(m Messaging, _ int) (string, bool) {
			if m.Sender == nil {
				return "", false
			}

			return m.Sender.ID, true
		})
	})
}
