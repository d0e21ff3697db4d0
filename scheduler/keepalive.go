// Package scheduler keeps the process awake on free-tier hosting by
// pinging its own liveness endpoint on a cron schedule.
package scheduler

import (
	"log"
	"net/http"

	"github.com/robfig/cron/v3"

	"arendnipro_bot/config"
)

type Keepalive struct {
	cfg    config.KeepaliveConfig
	client *http.Client
	cron   *cron.Cron
}

func NewKeepalive(cfg config.KeepaliveConfig, client *http.Client) *Keepalive {
	return &Keepalive{
		cfg:    cfg,
		client: client,
		cron:   cron.New(),
	}
}

// Start schedules the self-ping. A missing self URL disables it, which
// is the right default for local runs.
func (k *Keepalive) Start() error {
	if k.cfg.SelfURL == "" {
		log.Println("keepalive: no SELF_URL, pinger disabled")
		return nil
	}

	if _, err := k.cron.AddFunc(k.cfg.Cron, k.ping); err != nil {
		return err
	}

	k.cron.Start()
	log.Printf("keepalive: pinging %s on schedule %q", k.cfg.SelfURL, k.cfg.Cron)
	return nil
}

func (k *Keepalive) Stop() {
	k.cron.Stop()
}

func (k *Keepalive) ping() {
	resp, err := k.client.Get(k.cfg.SelfURL)
	if err != nil {
		log.Printf("keepalive: ping failed: %v", err)
		return
	}
	resp.Body.Close()
}
