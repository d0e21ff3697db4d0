package bot

import (
	"context"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Transport runs the long-polling loop and dispatches every text message
// to the pipeline. The handler is registered once; it keeps no state
// between updates.
type Transport struct {
	api      *tgbotapi.BotAPI
	pipeline *Pipeline
	timeout  time.Duration
}

func NewTransport(api *tgbotapi.BotAPI, pipeline *Pipeline) *Transport {
	return &Transport{
		api:      api,
		pipeline: pipeline,
		timeout:  90 * time.Second, // generous bound on one message cycle
	}
}

// Run blocks until ctx is cancelled. Any webhook left over from a
// previous deployment is removed so polling can start.
func (t *Transport) Run(ctx context.Context) error {
	if _, err := t.api.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
		return err
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := t.api.GetUpdatesChan(u)

	log.Printf("transport: polling as @%s", t.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			t.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			t.handleUpdate(ctx, update)
		}
	}
}

func (t *Transport) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	msgCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	_, reply := t.pipeline.Handle(msgCtx, update.Message.Text)

	msg := tgbotapi.NewMessage(update.Message.Chat.ID, reply)
	msg.ReplyToMessageID = update.Message.MessageID
	if _, err := t.api.Send(msg); err != nil {
		log.Printf("transport: reply failed: %v", err)
	}
}
