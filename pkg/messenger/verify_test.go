package messenger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bed42/facebook-messenger/pkg/messenger"
)

func TestVerifySubscription(t *testing.T) {
	challenge, err := messenger.VerifySubscription("subscribe", "secret", "1158201444", "secret")
	assert.NoError(t, err)
	assert.Equal(t, "1158201444", challenge)
}

func TestVerifySubscriptionTokenMismatch(t *testing.T) {
	challenge, err := messenger.VerifySubscription("subscribe", "wrong", "1158201444", "secret")
	assert.Error(t, err)
	assert.Empty(t, challenge)
}

func TestVerifySubscriptionRejectsEmptyExpectedToken(t *testing.T) {
	challenge, err := messenger.VerifySubscription("subscribe", "", "1158201444", "")
	assert.Error(t, err)
	assert.Empty(t, challenge)
}

func TestVerifySubscriptionUnexpectedMode(t *testing.T) {
	challenge, err := messenger.VerifySubscription("unsubscribe", "secret", "1158201444", "secret")
	assert.Error(t, err)
	assert.Empty(t, challenge)
}
