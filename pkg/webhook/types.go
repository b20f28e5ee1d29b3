package webhook

// Response is the webhook envelope Facebook posts to a subscribed endpoint.
type Response struct {
	Object string  `json:"object,omitempty"`
	Entry  []Entry `json:"entry"`
}

// Entry is one event batch scoped to a single page id and timestamp.
type Entry struct {
	ID        string      `json:"id,omitempty"`
	Time      int64       `json:"time,omitempty"`
	Messaging []Messaging `json:"messaging"`
}

// Messaging is a single user interaction within an entry. The platform
// populates exactly one of Message, Optin, Postback, AccountLinking or
// Referral per event; the rest stay nil.
type Messaging struct {
	Sender         *User           `json:"sender,omitempty"`
	Recipient      *User           `json:"recipient,omitempty"`
	Timestamp      int64           `json:"timestamp,omitempty"`
	Message        *Message        `json:"message,omitempty"`
	Optin          *Optin          `json:"optin,omitempty"`
	Postback       *Postback       `json:"postback,omitempty"`
	AccountLinking *AccountLinking `json:"account_linking,omitempty"`
	Referral       *Referral       `json:"referral,omitempty"`
}

type User struct {
	ID string `json:"id,omitempty"`
}

type Message struct {
	MID          string                 `json:"mid,omitempty"`
	Seq          int64                  `json:"seq,omitempty"`
	Text         *string                `json:"text,omitempty"`
	NLP          map[string]interface{} `json:"nlp"`
	Attachments  []Attachment           `json:"attachments"`
	QuickReplies []QuickReply           `json:"quick_replies"`
	QuickReply   *QuickReply            `json:"quick_reply,omitempty"`
}

type Attachment struct {
	Type    string                 `json:"type,omitempty"`
	Title   *string                `json:"title,omitempty"`
	Payload map[string]interface{} `json:"payload"`
	URL     *string                `json:"url,omitempty"`
}

type QuickReply struct {
	ContentType string                 `json:"content_type,omitempty"`
	Title       *string                `json:"title,omitempty"`
	Payload     map[string]interface{} `json:"payload"`
}

type Optin struct {
	Ref string `json:"ref,omitempty"`
}

type Postback struct {
	Payload  string    `json:"payload,omitempty"`
	Referral *Referral `json:"referral,omitempty"`
}

type AccountLinking struct {
	AuthorizationCode string `json:"authorization_code,omitempty"`
	Status            string `json:"status,omitempty"`
}

type Referral struct {
	Ref    string `json:"ref,omitempty"`
	Source string `json:"source,omitempty"`
	Type   string `json:"type,omitempty"`
}
