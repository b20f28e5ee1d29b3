package webhook

// EventType discriminates which payload a Messaging item carries.
type EventType string

const (
	EventMessage        EventType = "message"
	EventOptin          EventType = "optin"
	EventPostback       EventType = "postback"
	EventAccountLinking EventType = "account_linking"
	EventReferral       EventType = "referral"
	EventUnknown        EventType = "unknown"
)

// Event reports the kind of event this messaging item describes. The
// platform sends one active payload per event; referral is checked last
// because postbacks embed their own referral.
func (m Messaging) Event() EventType {
	switch {
	case m.Message != nil:
		return EventMessage
	case m.Optin != nil:
		return EventOptin
	case m.Postback != nil:
		return EventPostback
	case m.AccountLinking != nil:
		return EventAccountLinking
	case m.Referral != nil:
		return EventReferral
	default:
		return EventUnknown
	}
}
