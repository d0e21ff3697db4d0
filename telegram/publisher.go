// Package telegram delivers composed posts to the destination channel.
package telegram

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"arendnipro_bot/httputil"
	"arendnipro_bot/models"
	"arendnipro_bot/textutil"
)

const fallbackNotice = "Ошибка при отправке фото. "

// Telegram rejects photos over 10MB; anything larger is a broken URL
// anyway.
const maxImageBytes = 10 * 1024 * 1024

// Sender is the slice of the bot API the publisher needs.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	SendMediaGroup(cfg tgbotapi.MediaGroupConfig) ([]tgbotapi.Message, error)
}

type Publisher struct {
	bot     Sender
	channel string
	media   *http.Client
}

func NewPublisher(bot Sender, channel string, media *http.Client) *Publisher {
	return &Publisher{bot: bot, channel: channel, media: media}
}

// Publish sends the post to the channel. Posts with images go out as a
// media group with the body as the first item's caption; if any image
// download or the group send fails, the body goes out alone with a
// failure notice. An error comes back only when even the fallback send
// failed.
func (p *Publisher) Publish(ctx context.Context, post models.Post) error {
	if len(post.Images) == 0 {
		return p.sendText(textutil.TruncateRunes(post.Body, models.CaptionLimit))
	}

	if err := p.sendMediaGroup(ctx, post); err != nil {
		log.Printf("publisher: media group failed, falling back to text: %v", err)
		fallback := fallbackNotice + textutil.TruncateRunes(post.Body, models.CaptionLimit)
		return p.sendText(fallback)
	}

	return nil
}

func (p *Publisher) sendText(text string) error {
	msg := tgbotapi.NewMessageToChannel(p.channel, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := p.bot.Send(msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

func (p *Publisher) sendMediaGroup(ctx context.Context, post models.Post) error {
	media := make([]interface{}, 0, len(post.Images))
	for i, url := range post.Images {
		data, err := p.downloadImage(ctx, url)
		if err != nil {
			return fmt.Errorf("image %d: %w", i+1, err)
		}

		photo := tgbotapi.NewInputMediaPhoto(tgbotapi.FileBytes{
			Name:  fmt.Sprintf("photo-%d.jpg", i+1),
			Bytes: data,
		})
		if i == 0 {
			photo.Caption = textutil.TruncateRunes(post.Body, models.CaptionLimit)
			photo.ParseMode = tgbotapi.ModeHTML
		}
		media = append(media, photo)
	}

	group := tgbotapi.MediaGroupConfig{
		ChannelUsername: p.channel,
		Media:           media,
	}
	if _, err := p.bot.SendMediaGroup(group); err != nil {
		return fmt.Errorf("send media group: %w", err)
	}
	return nil
}

func (p *Publisher) downloadImage(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", httputil.UserAgent)
	req.Header.Set("Accept", "image/*,*/*")

	resp, err := p.media.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download status: %d", resp.StatusCode)
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
}
