package listing

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"arendnipro_bot/httputil"
	"arendnipro_bot/models"
)

// Field placeholders used when the upstream record is incomplete. The
// post layout never drops a line, it shows these instead.
const (
	noCity     = "Город не найден"
	noStreet   = "Улица не найдена"
	noArea     = "Площадь не найдена"
	noFloor    = "Этаж не найден"
	noPrice    = "Цена не найдена"
	noContact  = "Имя не найден"
	noPhone    = "Телефон не найден"
	noID       = "ID не найден"
	defaultCur = "USD"
)

// Fetcher performs the single upstream GET per inbound message. No
// retries; resilience policy, if ever wanted, goes here.
type Fetcher struct {
	base   string
	client *http.Client
}

func NewFetcher(base string, client *http.Client) *Fetcher {
	return &Fetcher{base: base, client: client}
}

// apiListing is the wire shape of the upstream record.
type apiListing struct {
	Error string `json:"error"`
	Text  string `json:"text"`
	City  struct {
		Name string `json:"name"`
	} `json:"city"`
	Street struct {
		Name string `json:"name"`
	} `json:"street"`
	HouseNumber  string      `json:"house_number"`
	SquareCommon json.Number `json:"square_common"`
	Floor        json.Number `json:"floor"`
	Floors       json.Number `json:"floors"`
	Price        json.Number `json:"price"`
	Currency     string      `json:"currency"`
	AuthorFname  string      `json:"author_fname"`
	Phone        []string    `json:"phone"`
	ID           json.Number `json:"id"`
	Images       []struct {
		ImgObj string `json:"img_obj"`
	} `json:"images"`
}

// Fetch retrieves the listing record and maps it into a fully-populated
// Listing in one defaulting pass.
func (f *Fetcher) Fetch(ctx context.Context, ref models.ListingRef) (models.Listing, error) {
	endpoint := Endpoint(f.base, ref)
	log.Printf("fetcher: GET %s", endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.Listing{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	req.Header.Set("User-Agent", httputil.UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return models.Listing{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.Listing{}, fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}

	var rec apiListing
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return models.Listing{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if rec.Error != "" {
		return models.Listing{}, fmt.Errorf("%w: %s", ErrMalformedResponse, rec.Error)
	}

	return rec.toListing(), nil
}

// toListing is the single defaulting pass: every absent field becomes
// its documented placeholder, images are capped, the first phone wins.
func (r *apiListing) toListing() models.Listing {
	l := models.Listing{
		Description: r.Text,
		City:        orDefault(r.City.Name, noCity),
		Street:      orDefault(r.Street.Name, noStreet),
		HouseNumber: r.HouseNumber,
		Area:        orDefault(r.SquareCommon.String(), noArea),
		Floor:       orDefault(r.Floor.String(), noFloor),
		Floors:      orDefault(r.Floors.String(), noFloor),
		Price:       orDefault(r.Price.String(), noPrice),
		Currency:    orDefault(r.Currency, defaultCur),
		ContactName: orDefault(r.AuthorFname, noContact),
		Phone:       noPhone,
		ID:          orDefault(r.ID.String(), noID),
	}

	if len(r.Phone) > 0 && r.Phone[0] != "" {
		l.Phone = r.Phone[0]
	}

	for _, img := range r.Images {
		if img.ImgObj == "" {
			continue
		}
		l.Images = append(l.Images, img.ImgObj)
		if len(l.Images) == models.MaxImages {
			break
		}
	}

	return l
}

func orDefault(val, fallback string) string {
	if val == "" {
		return fallback
	}
	return val
}
