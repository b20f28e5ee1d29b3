package messenger

import "github.com/cockroachdb/errors"

// VerifySubscription answers the GET handshake Facebook performs when a page
// subscribes its webhook. It returns the challenge to echo back, or an error
// when the request is not a valid subscribe attempt. The caller owns the
// transport: pass hub.mode, hub.verify_token and hub.challenge from the
// query string.
func VerifySubscription(mode, verifyToken, challenge, expectedToken string) (string, error) {
	if mode != "subscribe" {
		return "", errors.Newf("unexpected hub.mode %q", mode)
	}

	if expectedToken == "" || verifyToken != expectedToken {
		return "", errors.New("verify token mismatch")
	}

	return challenge, nil
}
