package notify

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/am5510/hiyeum/models"

	"github.com/line/line-bot-sdk-go/v7/linebot"
)

// Notifier pushes a formatted message for a freshly created request.
// Best-effort: callers log failures and move on, the write already happened.
type Notifier interface {
	NotifyNewRequest(ctx context.Context, req *models.BorrowRequest) error
}

// LineNotifier pushes a flex message to one pre-configured LINE target:
// the group id when set, otherwise a direct user id.
type LineNotifier struct {
	bot    *linebot.Client
	target string
}

func NewLineNotifier(channelSecret, channelToken, groupID, userID string) (Notifier, error) {
	target := groupID
	if target == "" {
		target = userID
	}
	if channelToken == "" || target == "" {
		return disabledNotifier{}, nil
	}
	bot, err := linebot.New(channelSecret, channelToken)
	if err != nil {
		return nil, err
	}
	return &LineNotifier{bot: bot, target: target}, nil
}

func (n *LineNotifier) NotifyNewRequest(ctx context.Context, req *models.BorrowRequest) error {
	msg := linebot.NewFlexMessage("มีคำขอใหม่: "+req.Service, buildRequestBubble(req))
	_, err := n.bot.PushMessage(n.target, msg).WithContext(ctx).Do()
	return err
}

// ParseWebhook verifies and decodes an inbound LINE webhook request.
func (n *LineNotifier) ParseWebhook(r *http.Request) ([]*linebot.Event, error) {
	return n.bot.ParseRequest(r)
}

// disabledNotifier stands in when credentials are absent (e.g. local dev).
type disabledNotifier struct{}

func (disabledNotifier) NotifyNewRequest(context.Context, *models.BorrowRequest) error {
	log.Println("LINE notification skipped: missing credentials")
	return nil
}

// thaiDate renders a date the way the admin reads it: dd/mm with the
// Buddhist-era year.
func thaiDate(t time.Time) string {
	return fmt.Sprintf("%02d/%02d/%d", t.Day(), int(t.Month()), t.Year()+543)
}

func dateRange(req *models.BorrowRequest) string {
	end := req.UsageDate
	if req.EndDate != nil {
		end = *req.EndDate
	}
	return thaiDate(req.UsageDate) + " - " + thaiDate(end)
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func flexRow(label, value string) linebot.FlexComponent {
	return &linebot.BoxComponent{
		Type:   linebot.FlexComponentTypeBox,
		Layout: linebot.FlexBoxLayoutTypeHorizontal,
		Margin: linebot.FlexComponentMarginTypeMd,
		Contents: []linebot.FlexComponent{
			&linebot.TextComponent{
				Type:   linebot.FlexComponentTypeText,
				Text:   label,
				Size:   linebot.FlexTextSizeTypeSm,
				Color:  "#555555",
				Flex:   linebot.IntPtr(2),
				Weight: linebot.FlexTextWeightTypeBold,
			},
			&linebot.TextComponent{
				Type:  linebot.FlexComponentTypeText,
				Text:  value,
				Size:  linebot.FlexTextSizeTypeSm,
				Color: "#111111",
				Flex:  linebot.IntPtr(4),
				Wrap:  true,
			},
		},
	}
}

func buildRequestBubble(req *models.BorrowRequest) *linebot.BubbleContainer {
	return &linebot.BubbleContainer{
		Type: linebot.FlexContainerTypeBubble,
		Header: &linebot.BoxComponent{
			Type:            linebot.FlexComponentTypeBox,
			Layout:          linebot.FlexBoxLayoutTypeVertical,
			BackgroundColor: "#0070f3",
			PaddingAll:      linebot.FlexComponentPaddingType("10px"),
			Background: &linebot.BoxBackground{
				Type:        linebot.FlexBoxBackgroundTypeLinearGradient,
				Angle:       "135deg",
				StartColor:  "#0070f3",
				CenterColor: "#50e3c2",
				EndColor:    "#ffcc00",
			},
			Contents: []linebot.FlexComponent{
				&linebot.TextComponent{
					Type:   linebot.FlexComponentTypeText,
					Text:   "คำขอใช้บริการ",
					Color:  "#ffffff",
					Weight: linebot.FlexTextWeightTypeBold,
					Size:   linebot.FlexTextSizeTypeXl,
				},
			},
		},
		Body: &linebot.BoxComponent{
			Type:   linebot.FlexComponentTypeBox,
			Layout: linebot.FlexBoxLayoutTypeVertical,
			Contents: []linebot.FlexComponent{
				flexRow("บริการ", req.Service),
				flexRow("ผู้ขอ", req.Username),
				flexRow("หน่วยงาน", req.Department),
				flexRow("โครงการ", orDash(req.Project)),
				flexRow("สถานที่", req.Location),
				flexRow("วันที่", dateRange(req)),
				flexRow("เวลา", orDash(req.UsageTime)),
				flexRow("โทร.", req.Contact),
				flexRow("รายละเอียด", orDash(req.Details)),
			},
		},
	}
}
