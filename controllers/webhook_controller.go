// controllers/webhook_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/am5510/hiyeum/app"
	"github.com/am5510/hiyeum/notify"

	"github.com/gin-gonic/gin"
	"github.com/line/line-bot-sdk-go/v7/linebot"
)

type WebhookController struct{ *Srv }

func NewWebhookController(s *Srv) *WebhookController { return &WebhookController{Srv: s} }

// POST /api/webhook/line
// Diagnostic only: logs inbound events so an operator can read group/room/user
// ids off the server log when pointing the bot at a new chat.
func (wc *WebhookController) LineEvents(c *gin.Context) {
	ln, ok := wc.Notifier.(*notify.LineNotifier)
	if !ok {
		log.Println("LINE webhook event received but LINE is not configured")
		c.JSON(http.StatusOK, app.H{"status": "ok"})
		return
	}

	events, err := ln.ParseWebhook(c.Request)
	if err != nil {
		if errors.Is(err, linebot.ErrInvalidSignature) {
			c.JSON(http.StatusBadRequest, app.H{"status": "error"})
			return
		}
		log.Printf("Error processing LINE webhook: %v", err)
		c.JSON(http.StatusInternalServerError, app.H{"status": "error"})
		return
	}

	for _, ev := range events {
		log.Printf("LINE webhook event received: %s", ev.Type)
		if ev.Source == nil {
			continue
		}
		switch ev.Source.Type {
		case linebot.EventSourceTypeGroup:
			log.Printf("group id: %s", ev.Source.GroupID)
		case linebot.EventSourceTypeRoom:
			log.Printf("room id: %s", ev.Source.RoomID)
		case linebot.EventSourceTypeUser:
			log.Printf("user id: %s", ev.Source.UserID)
		}
	}
	c.JSON(http.StatusOK, app.H{"status": "ok"})
}
