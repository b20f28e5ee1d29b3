package messenger

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/imroc/req/v3"
	"github.com/rs/zerolog"
)

// DefaultGraphURL is the Graph API base used when the caller has no reason
// to override it (tests, proxies).
const DefaultGraphURL = "https://graph.facebook.com/v18.0"

// Client sends messages back to users through the Graph API Send API.
type Client struct {
	cl          *req.Client
	accessToken string
	graphURL    string
}

func NewClient(
	accessToken string,
	graphURL string,
	cl *req.Client,
) *Client {
	if graphURL == "" {
		graphURL = DefaultGraphURL
	}

	return &Client{
		cl:          cl,
		accessToken: accessToken,
		graphURL:    graphURL,
	}
}

// Send posts a raw SendRequest to me/messages and returns the platform
// acknowledgement.
func (c *Client) Send(
	ctx context.Context,
	request SendRequest,
) (*SendResponse, error) {
	var (
		sendResp SendResponse
		graphErr GraphError
	)

	resp, err := c.cl.R().
		SetContext(ctx).
		SetQueryParam("access_token", c.accessToken).
		SetBody(request).
		SetSuccessResult(&sendResp).
		SetErrorResult(&graphErr).
		Post(c.graphURL + "/me/messages")
	if err != nil {
		return nil, err
	}

	if resp.IsErrorState() {
		if graphErr.Error.Message != "" {
			return nil, errors.Newf("graph api error: %s (type=%s code=%d subcode=%d trace=%s)",
				graphErr.Error.Message, graphErr.Error.Type,
				graphErr.Error.Code, graphErr.Error.Subcode, graphErr.Error.FBTraceID)
		}

		return nil, errors.Newf("got error response: %s", resp.String())
	}

	zerolog.Ctx(ctx).Debug().
		Str("recipient_id", sendResp.RecipientID).
		Str("message_id", sendResp.MessageID).
		Msg("message sent")

	return &sendResp, nil
}

// SendText sends a plain text reply.
func (c *Client) SendText(
	ctx context.Context,
	recipientID string,
	text string,
) (*SendResponse, error) {
	return c.Send(ctx, SendRequest{
		MessagingType: "RESPONSE",
		Recipient:     RecipientRef{ID: recipientID},
		Message: &OutboundMessage{
			Text: text,
		},
	})
}

// SendAttachment sends a hosted media attachment by url. attachmentType is
// one of image, audio, video or file.
func (c *Client) SendAttachment(
	ctx context.Context,
	recipientID string,
	attachmentType string,
	url string,
) (*SendResponse, error) {
	return c.Send(ctx, SendRequest{
		MessagingType: "RESPONSE",
		Recipient:     RecipientRef{ID: recipientID},
		Message: &OutboundMessage{
			Attachment: &OutboundAttachment{
				Type: attachmentType,
				Payload: OutboundPayload{
					URL: url,
				},
			},
		},
	})
}

// SendQuickReplies sends a text message with quick reply buttons attached.
func (c *Client) SendQuickReplies(
	ctx context.Context,
	recipientID string,
	text string,
	replies []OutboundQuickReply,
) (*SendResponse, error) {
	if len(replies) == 0 {
		return nil, errors.New("at least one quick reply is required")
	}

	return c.Send(ctx, SendRequest{
		MessagingType: "RESPONSE",
		Recipient:     RecipientRef{ID: recipientID},
		Message: &OutboundMessage{
			Text:         text,
			QuickReplies: replies,
		},
	})
}

// SenderAction toggles typing indicators and read receipts: typing_on,
// typing_off or mark_seen.
func (c *Client) SenderAction(
	ctx context.Context,
	recipientID string,
	action string,
) error {
	_, err := c.Send(ctx, SendRequest{
		Recipient:    RecipientRef{ID: recipientID},
		SenderAction: action,
	})

	return err
}
