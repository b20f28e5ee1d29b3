package webhook

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"

	"github.com/bed42/facebook-messenger/pkg/common"
)

// Parse decodes a raw webhook body into the typed object graph.
// Invalid JSON syntax yields common.ErrMalformedJSON; a body whose shape
// contradicts the schema yields common.ErrSchemaMismatch. Missing fields are
// never an error: absent scalars and objects decode to zero values or nil,
// absent collections decode to empty slices.
func Parse(raw []byte) (*Response, error) {
	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, errors.Wrap(common.ErrMalformedJSON, err.Error())
	}

	return ParseValue(generic)
}

// ParseString decodes a webhook body held in a string.
func ParseString(raw string) (*Response, error) {
	return Parse([]byte(raw))
}

// ParseValue rehydrates an already-parsed generic JSON value, as produced by
// encoding/json into interface{}. Unknown keys are dropped silently.
func ParseValue(input interface{}) (*Response, error) {
	obj, ok := input.(map[string]interface{})
	if !ok {
		return nil, errors.Wrapf(common.ErrSchemaMismatch,
			"top-level value is not an object: %v", spew.Sdump(input))
	}

	resp := &Response{
		Object: stringField(obj, "object"),
		Entry:  []Entry{},
	}

	items, err := arrayField(obj, "entry", "entry")
	if err != nil {
		return nil, err
	}

	for i, item := range items {
		entry, entryErr := decodeEntry(item, fmt.Sprintf("entry[%d]", i))
		if entryErr != nil {
			return nil, entryErr
		}

		resp.Entry = append(resp.Entry, entry)
	}

	return resp, nil
}

func decodeEntry(v interface{}, path string) (Entry, error) {
	entry := Entry{
		Messaging: []Messaging{},
	}

	obj, err := asObject(v, path)
	if err != nil || obj == nil {
		return entry, err
	}

	entry.ID = stringField(obj, "id")
	entry.Time = intField(obj, "time")

	items, err := arrayField(obj, "messaging", path+".messaging")
	if err != nil {
		return entry, err
	}

	for i, item := range items {
		messaging, msgErr := decodeMessaging(item, fmt.Sprintf("%s.messaging[%d]", path, i))
		if msgErr != nil {
			return entry, msgErr
		}

		entry.Messaging = append(entry.Messaging, messaging)
	}

	return entry, nil
}

func decodeMessaging(v interface{}, path string) (Messaging, error) {
	var messaging Messaging

	obj, err := asObject(v, path)
	if err != nil || obj == nil {
		return messaging, err
	}

	messaging.Timestamp = intField(obj, "timestamp")

	if messaging.Sender, err = decodeUser(obj, "sender", path); err != nil {
		return messaging, err
	}

	if messaging.Recipient, err = decodeUser(obj, "recipient", path); err != nil {
		return messaging, err
	}

	if messaging.Message, err = decodeMessage(obj, path); err != nil {
		return messaging, err
	}

	if messaging.Optin, err = decodeOptin(obj, path); err != nil {
		return messaging, err
	}

	if messaging.Postback, err = decodePostback(obj, path); err != nil {
		return messaging, err
	}

	if messaging.AccountLinking, err = decodeAccountLinking(obj, path); err != nil {
		return messaging, err
	}

	if messaging.Referral, err = decodeReferral(obj, "referral", path); err != nil {
		return messaging, err
	}

	return messaging, nil
}

func decodeUser(parent map[string]interface{}, key, path string) (*User, error) {
	obj, err := objectField(parent, key, path)
	if err != nil || obj == nil {
		return nil, err
	}

	return &User{
		ID: stringField(obj, "id"),
	}, nil
}

func decodeMessage(parent map[string]interface{}, path string) (*Message, error) {
	obj, err := objectField(parent, "message", path)
	if err != nil || obj == nil {
		return nil, err
	}

	path += ".message"

	message := &Message{
		MID:          stringField(obj, "mid"),
		Seq:          intField(obj, "seq"),
		Text:         optStringField(obj, "text"),
		Attachments:  []Attachment{},
		QuickReplies: []QuickReply{},
	}

	if message.NLP, err = objectField(obj, "nlp", path); err != nil {
		return nil, err
	}

	attachments, err := arrayField(obj, "attachments", path+".attachments")
	if err != nil {
		return nil, err
	}

	for i, item := range attachments {
		attachment, attErr := decodeAttachment(item, fmt.Sprintf("%s.attachments[%d]", path, i))
		if attErr != nil {
			return nil, attErr
		}

		message.Attachments = append(message.Attachments, attachment)
	}

	quickReplies, err := arrayField(obj, "quick_replies", path+".quick_replies")
	if err != nil {
		return nil, err
	}

	for i, item := range quickReplies {
		quickReply, qrErr := decodeQuickReply(item, fmt.Sprintf("%s.quick_replies[%d]", path, i))
		if qrErr != nil {
			return nil, qrErr
		}

		message.QuickReplies = append(message.QuickReplies, quickReply)
	}

	single, err := objectField(obj, "quick_reply", path)
	if err != nil {
		return nil, err
	}

	if single != nil {
		quickReply, qrErr := decodeQuickReply(single, path+".quick_reply")
		if qrErr != nil {
			return nil, qrErr
		}

		message.QuickReply = &quickReply
	}

	return message, nil
}

func decodeAttachment(v interface{}, path string) (Attachment, error) {
	var attachment Attachment

	obj, err := asObject(v, path)
	if err != nil || obj == nil {
		return attachment, err
	}

	attachment.Type = stringField(obj, "type")
	attachment.Title = optStringField(obj, "title")
	attachment.URL = optStringField(obj, "url")

	if attachment.Payload, err = objectField(obj, "payload", path); err != nil {
		return attachment, err
	}

	return attachment, nil
}

func decodeQuickReply(v interface{}, path string) (QuickReply, error) {
	var quickReply QuickReply

	obj, err := asObject(v, path)
	if err != nil || obj == nil {
		return quickReply, err
	}

	quickReply.ContentType = stringField(obj, "content_type")
	quickReply.Title = optStringField(obj, "title")

	if quickReply.Payload, err = objectField(obj, "payload", path); err != nil {
		return quickReply, err
	}

	return quickReply, nil
}

func decodeOptin(parent map[string]interface{}, path string) (*Optin, error) {
	obj, err := objectField(parent, "optin", path)
	if err != nil || obj == nil {
		return nil, err
	}

	return &Optin{
		Ref: stringField(obj, "ref"),
	}, nil
}

func decodePostback(parent map[string]interface{}, path string) (*Postback, error) {
	obj, err := objectField(parent, "postback", path)
	if err != nil || obj == nil {
		return nil, err
	}

	postback := &Postback{
		Payload: stringField(obj, "payload"),
	}

	if postback.Referral, err = decodeReferral(obj, "referral", path+".postback"); err != nil {
		return nil, err
	}

	return postback, nil
}

func decodeAccountLinking(parent map[string]interface{}, path string) (*AccountLinking, error) {
	obj, err := objectField(parent, "account_linking", path)
	if err != nil || obj == nil {
		return nil, err
	}

	return &AccountLinking{
		AuthorizationCode: stringField(obj, "authorization_code"),
		Status:            stringField(obj, "status"),
	}, nil
}

func decodeReferral(parent map[string]interface{}, key, path string) (*Referral, error) {
	obj, err := objectField(parent, key, path)
	if err != nil || obj == nil {
		return nil, err
	}

	return &Referral{
		Ref:    stringField(obj, "ref"),
		Source: stringField(obj, "source"),
		Type:   stringField(obj, "type"),
	}, nil
}

// asObject coerces a node that the schema declares as an object. JSON null
// counts as absent.
func asObject(v interface{}, path string) (map[string]interface{}, error) {
	if v == nil {
		return nil, nil
	}

	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil, errors.Wrapf(common.ErrSchemaMismatch,
			"%s: expected object, got %v", path, spew.Sdump(v))
	}

	return obj, nil
}

// objectField reads a declared-as-object key; absent and null both decode to
// nil without error.
func objectField(parent map[string]interface{}, key, path string) (map[string]interface{}, error) {
	v, ok := parent[key]
	if !ok {
		return nil, nil
	}

	return asObject(v, path+"."+key)
}

// arrayField reads a declared-as-list key; absent and null both decode to an
// empty list.
func arrayField(parent map[string]interface{}, key, path string) ([]interface{}, error) {
	v, ok := parent[key]
	if !ok || v == nil {
		return nil, nil
	}

	items, ok := v.([]interface{})
	if !ok {
		return nil, errors.Wrapf(common.ErrSchemaMismatch,
			"%s: expected array, got %v", path, spew.Sdump(v))
	}

	return items, nil
}

func stringField(parent map[string]interface{}, key string) string {
	s, _ := parent[key].(string)
	return s
}

// optStringField keeps absent distinct from empty for scalars the schema
// marks optional.
func optStringField(parent map[string]interface{}, key string) *string {
	s, ok := parent[key].(string)
	if !ok {
		return nil
	}

	return &s
}

// intField reads a declared-as-integer key; absent, null and non-numeric
// values all decode to 0.
func intField(parent map[string]interface{}, key string) int64 {
	switch n := parent[key].(type) {
	case float64:
		return int64(n)
	case json.Number:
		v, _ := n.Int64()
		return v
	default:
		return 0
	}
}
