package messenger

// SendRequest is the body posted to the Graph API me/messages endpoint.
type SendRequest struct {
	MessagingType string           `json:"messaging_type,omitempty"`
	Recipient     RecipientRef     `json:"recipient"`
	Message       *OutboundMessage `json:"message,omitempty"`
	SenderAction  string           `json:"sender_action,omitempty"`
}

type RecipientRef struct {
	ID string `json:"id"`
}

type OutboundMessage struct {
	Text         string               `json:"text,omitempty"`
	Attachment   *OutboundAttachment  `json:"attachment,omitempty"`
	QuickReplies []OutboundQuickReply `json:"quick_replies,omitempty"`
}

type OutboundAttachment struct {
	Type    string          `json:"type"`
	Payload OutboundPayload `json:"payload"`
}

type OutboundPayload struct {
	URL        string `json:"url,omitempty"`
	IsReusable bool   `json:"is_reusable,omitempty"`
}

type OutboundQuickReply struct {
	ContentType string `json:"content_type"`
	Title       string `json:"title,omitempty"`
	Payload     string `json:"payload,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

// SendResponse is the Graph API acknowledgement for an accepted message.
type SendResponse struct {
	RecipientID string `json:"recipient_id"`
	MessageID   string `json:"message_id"`
}

// GraphError is the Graph API error envelope returned on non-2xx responses.
type GraphError struct {
	Error GraphErrorDetail `json:"error"`
}

type GraphErrorDetail struct {
	Message   string `json:"message"`
	Type      string `json:"type"`
	Code      int    `json:"code"`
	Subcode   int    `json:"error_subcode"`
	FBTraceID string `json:"fbtrace_id"`
}
