// Package bot ties the listing pipeline together: route the inbound URL,
// fetch the record, compose the post, publish it, tell the sender how it
// went.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"arendnipro_bot/compose"
	"arendnipro_bot/listing"
	"arendnipro_bot/models"
)

// Reply phrases sent back to the user.
const (
	ReplyGuidance     = "Пожалуйста, отправьте ссылку на объявление с easyhata.site (flats или houses)"
	ReplyPublished    = "Объявление опубликовано в канале!"
	replyBadURL       = "Ссылка на объявление неполная, проверьте её и отправьте ещё раз"
	replyAPIErrorFmt  = "Ошибка при запросе к API: %v"
	replyPublishError = "Не удалось опубликовать объявление в канале, попробуйте позже"
)

// Fetcher retrieves a listing record for a reference.
type Fetcher interface {
	Fetch(ctx context.Context, ref models.ListingRef) (models.Listing, error)
}

// Publisher delivers a composed post to the channel.
type Publisher interface {
	Publish(ctx context.Context, post models.Post) error
}

// Pipeline holds only immutable collaborators, so concurrent Handle
// calls for independent messages are safe.
type Pipeline struct {
	fetcher   Fetcher
	composer  *compose.Composer
	publisher Publisher
}

func NewPipeline(fetcher Fetcher, composer *compose.Composer, publisher Publisher) *Pipeline {
	return &Pipeline{
		fetcher:   fetcher,
		composer:  composer,
		publisher: publisher,
	}
}

// Handle processes one inbound message text start to finish. It returns
// the post that reached the channel (nil when nothing was published) and
// the reply for the sender. The sender is acknowledged with the success
// phrase whenever something reached the channel, including the text-only
// fallback; only a total publish failure turns the reply into a
// diagnostic.
func (p *Pipeline) Handle(ctx context.Context, text string) (*models.Post, string) {
	reqID := uuid.NewString()[:8]

	ref, err := listing.ParseURL(text)
	if err != nil {
		if errors.Is(err, listing.ErrNotAListing) {
			return nil, ReplyGuidance
		}
		log.Printf("[%s] bad url: %v", reqID, err)
		return nil, replyBadURL
	}

	log.Printf("[%s] listing %s/%s agent %s", reqID, ref.RealtyType, ref.RealtyID, ref.AgentID)

	l, err := p.fetcher.Fetch(ctx, ref)
	if err != nil {
		log.Printf("[%s] fetch: %v", reqID, err)
		return nil, fmt.Sprintf(replyAPIErrorFmt, err)
	}

	post := p.composer.Compose(ref, l)

	if err := p.publisher.Publish(ctx, post); err != nil {
		log.Printf("[%s] publish: %v", reqID, err)
		return nil, replyPublishError
	}

	log.Printf("[%s] published %s with %d images", reqID, l.ID, len(post.Images))
	return &post, ReplyPublished
}
