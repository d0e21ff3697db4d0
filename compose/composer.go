// Package compose assembles the channel post body from a fetched
// listing. The layout is fixed: missing fields show their placeholders,
// the shape never changes.
package compose

import (
	"fmt"
	"strings"

	"arendnipro_bot/config"
	"arendnipro_bot/models"
	"arendnipro_bot/textutil"
)

// Description budget inside the post, before the caption limit applies.
const maxDescriptionLength = 780

type Composer struct {
	promoLine string
}

func New(promo []config.PromoLink) *Composer {
	return &Composer{promoLine: buildPromoLine(promo)}
}

// Compose builds the post body and carries the image URLs through. Pure:
// no I/O, no clock.
func (c *Composer) Compose(ref models.ListingRef, l models.Listing) models.Post {
	description := textutil.NormalizeDescription(l.Description)
	description = textutil.TrimSentence(description, maxDescriptionLength)

	address := strings.TrimSpace(fmt.Sprintf("%s, вул. %s %s", l.City, l.Street, l.HouseNumber))

	// A house has no distinct current floor, show total/total.
	floor := l.Floor
	if ref.RealtyType == models.RealtyHouses {
		floor = l.Floors
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", description)
	fmt.Fprintf(&b, "📍 %s\n\n", address)
	fmt.Fprintf(&b, "ОП %s м²\n", l.Area)
	fmt.Fprintf(&b, "Этаж %s/%s\n", floor, l.Floors)
	fmt.Fprintf(&b, "Цена %s %s\n\n", l.Price, l.Currency)
	fmt.Fprintf(&b, "📱 %s %s\n\n", l.ContactName, l.Phone)
	fmt.Fprintf(&b, "%s\n\n", c.promoLine)
	b.WriteString(l.ID)

	return models.Post{Body: b.String(), Images: l.Images}
}

func buildPromoLine(links []config.PromoLink) string {
	parts := make([]string, 0, len(links))
	for _, link := range links {
		parts = append(parts, fmt.Sprintf("%s <a href='%s'>%s</a>", link.Emoji, link.URL, link.Title))
	}
	return strings.Join(parts, " | ")
}
