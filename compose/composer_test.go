package compose

import (
	"strings"
	"testing"

	"arendnipro_bot/config"
	"arendnipro_bot/models"
)

var testPromo = []config.PromoLink{
	{Emoji: "📸", Title: "Мой Instagram", URL: "https://www.instagram.com/elenamelnik_rieltor"},
	{Emoji: "💬", Title: "Написать мне в ЛС", URL: "https://t.me/NYK_ELENA"},
}

func fullListing() models.Listing {
	return models.Listing{
		Description: "<p>Сдам квартиру в центре.</p>",
		City:        "Киев",
		Street:      "Крещатик",
		HouseNumber: "12",
		Area:        "45.5",
		Floor:       "3",
		Floors:      "9",
		Price:       "500",
		Currency:    "USD",
		ContactName: "Елена",
		Phone:       "+380501112233",
		ID:          "31337",
		Images:      []string{"https://cdn.example.com/1.jpg"},
	}
}

func TestCompose_Layout(t *testing.T) {
	c := New(testPromo)
	ref := models.ListingRef{RealtyType: models.RealtyFlats, RealtyID: "31337", AgentID: "456"}

	post := c.Compose(ref, fullListing())

	want := "Сдам квартиру в центре.\n\n" +
		"📍 Киев, вул. Крещатик 12\n\n" +
		"ОП 45.5 м²\n" +
		"Этаж 3/9\n" +
		"Цена 500 USD\n\n" +
		"📱 Елена +380501112233\n\n" +
		"📸 <a href='https://www.instagram.com/elenamelnik_rieltor'>Мой Instagram</a> | " +
		"💬 <a href='https://t.me/NYK_ELENA'>Написать мне в ЛС</a>\n\n" +
		"31337"
	if post.Body != want {
		t.Fatalf("body mismatch:\n got: %q\nwant: %q", post.Body, want)
	}
	if len(post.Images) != 1 {
		t.Fatalf("expected images carried through, got %d", len(post.Images))
	}
}

func TestCompose_HousesShowTotalFloors(t *testing.T) {
	c := New(testPromo)
	ref := models.ListingRef{RealtyType: models.RealtyHouses, RealtyID: "1", AgentID: "11249"}
	l := fullListing()
	l.Floor = "2"
	l.Floors = "5"

	post := c.Compose(ref, l)

	if !strings.Contains(post.Body, "Этаж 5/5\n") {
		t.Fatalf("houses must show total/total, body: %q", post.Body)
	}
	if strings.Contains(post.Body, "Этаж 2/") {
		t.Fatalf("current floor leaked into houses post: %q", post.Body)
	}
}

func TestCompose_EmptyHouseNumberTrimmed(t *testing.T) {
	c := New(testPromo)
	ref := models.ListingRef{RealtyType: models.RealtyFlats}
	l := fullListing()
	l.HouseNumber = ""

	post := c.Compose(ref, l)

	if !strings.Contains(post.Body, "📍 Киев, вул. Крещатик\n") {
		t.Fatalf("expected address without trailing space, body: %q", post.Body)
	}
}

func TestCompose_LongDescriptionTrimmed(t *testing.T) {
	c := New(testPromo)
	ref := models.ListingRef{RealtyType: models.RealtyFlats}
	l := fullListing()
	l.Description = strings.Repeat("Очень длинное предложение про квартиру. ", 60)

	post := c.Compose(ref, l)

	description := strings.SplitN(post.Body, "\n\n📍", 2)[0]
	if n := len([]rune(description)); n > 781 {
		t.Fatalf("description not trimmed: %d runes", n)
	}
	if !strings.HasSuffix(description, ".") {
		t.Fatalf("trimmed description must end with a period: %q", description)
	}
}

func TestCompose_MissingDescriptionPlaceholder(t *testing.T) {
	c := New(testPromo)
	ref := models.ListingRef{RealtyType: models.RealtyFlats}
	l := fullListing()
	l.Description = "   "

	post := c.Compose(ref, l)

	if !strings.HasPrefix(post.Body, "Описание отсутствует\n\n") {
		t.Fatalf("expected description placeholder, body: %q", post.Body)
	}
}
