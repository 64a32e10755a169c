package email

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/hightidestudios/website/internal/booking"
)

// ErrNotConfigured is returned by DisabledRelay on every Send.
var ErrNotConfigured = errors.New("email delivery is not configured")

// DisabledRelay stands in when SES credentials are absent. The site
// still serves pages; submissions fail with the fallback contact
// instruction instead of silently vanishing.
type DisabledRelay struct{}

func (DisabledRelay) Send(ctx context.Context, payload booking.Payload) error {
	log.Ctx(ctx).Warn().
		Str("reply_to", payload.ReplyTo).
		Msg("Booking submission dropped: email relay disabled")
	return ErrNotConfigured
}
