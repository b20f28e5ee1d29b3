package webhook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bed42/facebook-messenger/pkg/webhook"
)

func strPtr(s string) *string {
	return &s
}

func messagingWithText(senderID, text string) webhook.Messaging {
	return webhook.Messaging{
		Sender:  &webhook.User{ID: senderID},
		Message: &webhook.Message{Text: strPtr(text)},
	}
}

func TestMessageTextsFlatteningOrder(t *testing.T) {
	resp := &webhook.Response{
		Object: "page",
		Entry: []webhook.Entry{
			{Messaging: []webhook.Messaging{
				messagingWithText("100", "a"),
				messagingWithText("100", "b"),
			}},
			{Messaging: []webhook.Messaging{
				messagingWithText("200", "c"),
				messagingWithText("200", "d"),
			}},
		},
	}

	assert.Equal(t, []string{"a", "b", "c", "d"}, webhook.MessageTexts(resp))
}

func TestMessageTextsSkipsNonMessageEvents(t *testing.T) {
	resp := &webhook.Response{
		Entry: []webhook.Entry{
			{Messaging: []webhook.Messaging{
				{Postback: &webhook.Postback{Payload: "START"}},
				messagingWithText("100", "hello"),
				{Message: &webhook.Message{MID: "m2"}}, // attachment-only, no text
			}},
			{Messaging: []webhook.Messaging{}},
		},
	}

	assert.Equal(t, []string{"hello"}, webhook.MessageTexts(resp))
}

func TestMessageAttachmentsFlattening(t *testing.T) {
	image := webhook.Attachment{
		Type: "image",
		URL:  strPtr("https://cdn.example.com/cat.png"),
	}
	audio := webhook.Attachment{
		Type:  "audio",
		Title: strPtr("voice note"),
	}

	resp := &webhook.Response{
		Entry: []webhook.Entry{
			{Messaging: []webhook.Messaging{
				{Message: &webhook.Message{Attachments: []webhook.Attachment{image, audio}}},
				{Postback: &webhook.Postback{Payload: "START"}},
			}},
		},
	}

	attachments := webhook.MessageAttachments(resp)
	assert.Len(t, attachments, 2)
	assert.Equal(t, "image", attachments[0].Type)
	assert.Equal(t, "https://cdn.example.com/cat.png", *attachments[0].URL)
	assert.Nil(t, attachments[0].Title)
	assert.Equal(t, "audio", attachments[1].Type)
	assert.Equal(t, "voice note", *attachments[1].Title)
	assert.Nil(t, attachments[1].URL)
}

func TestMessageSendersFlattening(t *testing.T) {
	resp := &webhook.Response{
		Entry: []webhook.Entry{
			{Messaging: []webhook.Messaging{messagingWithText("100", "a")}},
			{Messaging: []webhook.Messaging{
				{Sender: &webhook.User{ID: "200"}, Postback: &webhook.Postback{Payload: "START"}},
				{Timestamp: 1}, // delivery-style event without sender
			}},
		},
	}

	assert.Equal(t, []string{"100", "200"}, webhook.MessageSenders(resp))
}

func TestAccessorsOnNilResponse(t *testing.T) {
	assert.Empty(t, webhook.MessageTexts(nil))
	assert.Empty(t, webhook.MessageAttachments(nil))
	assert.Empty(t, webhook.MessageSenders(nil))
}
