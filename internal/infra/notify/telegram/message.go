package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gabapcia/aptoswatch/internal/pkg/transport/rest"
	"github.com/gabapcia/aptoswatch/internal/walletalert"
)

// ErrRequestFailed is wrapped by every failed Bot API call.
var ErrRequestFailed = errors.New("telegram request failed")

type (
	// InlineKeyboardButton is a link or callback button.
	InlineKeyboardButton struct {
		Text         string `json:"text"`
		URL          string `json:"url,omitempty"`
		CallbackData string `json:"callback_data,omitempty"`
	}

	// InlineKeyboardMarkup lays buttons out in rows.
	InlineKeyboardMarkup struct {
		InlineKeyboard [][]InlineKeyboardButton `json:"inline_keyboard"`
	}

	// SendMessageRequest is the body of sendMessage.
	SendMessageRequest struct {
		ChatID                int64                 `json:"chat_id"`
		Text                  string                `json:"text"`
		DisableWebPagePreview bool                  `json:"disable_web_page_preview,omitempty"`
		ReplyMarkup           *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	}

	// ResponseParameters explains some failures.
	ResponseParameters struct {
		MigrateToChatID int64 `json:"migrate_to_chat_id,omitempty"`
		RetryAfter      int   `json:"retry_after,omitempty"`
	}

	// APIResponse is the envelope of every Bot API answer.
	APIResponse struct {
		OK          bool                `json:"ok"`
		ErrorCode   int                 `json:"error_code,omitempty"`
		Description string              `json:"description,omitempty"`
		Parameters  *ResponseParameters `json:"parameters,omitempty"`
	}
)

func newSendMessageRequest(msg walletalert.Message) SendMessageRequest {
	req := SendMessageRequest{
		ChatID:                msg.ChatID,
		Text:                  msg.Text,
		DisableWebPagePreview: true,
	}
	if len(msg.Actions) == 0 {
		return req
	}

	row := make([]InlineKeyboardButton, 0, len(msg.Actions))
	for _, a := range msg.Actions {
		button := InlineKeyboardButton{Text: a.Text}
		if a.URL != "" {
			button.URL = a.URL
		} else {
			button.CallbackData = a.Data
		}
		row = append(row, button)
	}

	req.ReplyMarkup = &InlineKeyboardMarkup{InlineKeyboard: [][]InlineKeyboardButton{row}}
	return req
}

// Send posts msg with sendMessage, waiting for the rate limiter first.
// Rejections are returned as *walletalert.DeliveryError.
func (c *client) Send(ctx context.Context, msg walletalert.Message) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var res APIResponse
	err := c.conn.Post(ctx, "/bot"+c.token+"/sendMessage", newSendMessageRequest(msg), &res)
	if err != nil {
		return c.classify(err)
	}
	if !res.OK {
		return c.classifyResponse(res)
	}
	return nil
}

func (c *client) classify(err error) error {
	var statusErr *rest.StatusError
	if !errors.As(err, &statusErr) {
		return &walletalert.DeliveryError{Reason: walletalert.ReasonOther, Err: c.redact(err)}
	}

	var res APIResponse
	if json.Unmarshal(statusErr.Body, &res) != nil {
		res = APIResponse{ErrorCode: statusErr.StatusCode, Description: http.StatusText(statusErr.StatusCode)}
	}
	if res.ErrorCode == 0 {
		res.ErrorCode = statusErr.StatusCode
	}
	return c.classifyResponse(res)
}

func (c *client) classifyResponse(res APIResponse) error {
	cause := fmt.Errorf("%w: %d %s", ErrRequestFailed, res.ErrorCode, res.Description)

	switch {
	case res.Parameters != nil && res.Parameters.MigrateToChatID != 0:
		return &walletalert.DeliveryError{Reason: walletalert.ReasonMoved, MovedTo: res.Parameters.MigrateToChatID, Err: cause}
	case res.ErrorCode == http.StatusForbidden, isChatGone(res):
		return &walletalert.DeliveryError{Reason: walletalert.ReasonBlocked, Err: cause}
	case res.ErrorCode == http.StatusTooManyRequests:
		return &walletalert.DeliveryError{Reason: walletalert.ReasonRateLimited, Err: cause}
	default:
		return &walletalert.DeliveryError{Reason: walletalert.ReasonOther, Err: cause}
	}
}

func isChatGone(res APIResponse) bool {
	return res.ErrorCode == http.StatusBadRequest && strings.Contains(strings.ToLower(res.Description), "chat not found")
}

// redact drops the request URL, which embeds the bot token, from transport errors.
func (c *client) redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%w: %s: %w", ErrRequestFailed, urlErr.Op, urlErr.Err)
	}
	if c.token != "" && strings.Contains(err.Error(), c.token) {
		return fmt.Errorf("%w: %s", ErrRequestFailed, strings.ReplaceAll(err.Error(), c.token, "<token>"))
	}
	return fmt.Errorf("%w: %w", ErrRequestFailed, err)
}
