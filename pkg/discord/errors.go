package discord

import "github.com/friendsofgo/errors"

var errWebhookRequired = errors.New("discord: webhook URL is required")
