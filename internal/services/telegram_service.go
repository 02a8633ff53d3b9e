package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/example/innatural/internal/catalog"
	"github.com/example/innatural/internal/validate"
)

const telegramAPI = "https://api.telegram.org"

// TelegramService sends pipeline notifications to the operator chat.
type TelegramService struct {
	botToken    string
	adminChatID string
	baseURL     string
	client      *http.Client
	logger      *zap.Logger
}

// NewTelegramService creates a new TelegramService. An empty token or chat
// ID turns every send into a no-op.
func NewTelegramService(botToken, adminChatID string, logger *zap.Logger) *TelegramService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TelegramService{
		botToken:    botToken,
		adminChatID: adminChatID,
		baseURL:     telegramAPI,
		client:      &http.Client{Timeout: 10 * time.Second},
		logger:      logger,
	}
}

// WithBaseURL points the service at a different Bot API host.
func (s *TelegramService) WithBaseURL(baseURL string) *TelegramService {
	s.baseURL = strings.TrimRight(baseURL, "/")
	return s
}

// Enabled reports whether messages will actually be sent.
func (s *TelegramService) Enabled() bool {
	return s.botToken != "" && s.adminChatID != ""
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendMessage sends an HTML message to chatID.
func (s *TelegramService) SendMessage(ctx context.Context, chatID, text string) error {
	if s.botToken == "" {
		s.logger.Debug("telegram bot token not configured")
		return nil
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.baseURL, s.botToken)

	body, err := json.Marshal(telegramMessage{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("telegram send failed", zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("telegram unexpected status", zap.Int("status", resp.StatusCode))
		return fmt.Errorf("telegram returned status %d", resp.StatusCode)
	}

	return nil
}

// SendToAdmin sends a message to the admin chat.
func (s *TelegramService) SendToAdmin(ctx context.Context, text string) error {
	if s.adminChatID == "" {
		s.logger.Debug("telegram admin chat not configured")
		return nil
	}
	return s.SendMessage(ctx, s.adminChatID, text)
}

// NotifyReport sends the summary of a pipeline run.
func (s *TelegramService) NotifyReport(ctx context.Context, report *catalog.Report) error {
	if !s.Enabled() {
		return nil
	}
	return s.SendToAdmin(ctx, FormatReport(report))
}

// NotifyValidation sends the outcome of a validation run.
func (s *TelegramService) NotifyValidation(ctx context.Context, path string, result *validate.Result) error {
	if !s.Enabled() {
		return nil
	}
	return s.SendToAdmin(ctx, FormatValidation(path, result))
}

// FormatReport renders report as a Telegram HTML message.
func FormatReport(report *catalog.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<b>📦 Catalog %s</b> <i>v%s</i>\n", html.EscapeString(string(report.Stage)), html.EscapeString(report.Version))
	fmt.Fprintf(&b, "<b>Products:</b> %d\n", report.Total)
	switch report.Stage {
	case catalog.StageEnrich:
		fmt.Fprintf(&b, "<b>From backup:</b> %d\n", report.Matched)
		fmt.Fprintf(&b, "<b>Generated:</b> %d\n", report.Generated)
	case catalog.StageImprove:
		fmt.Fprintf(&b, "<b>Benefits corrected:</b> %d\n", report.Corrected)
		fmt.Fprintf(&b, "<b>Descriptions rewritten:</b> %d\n", report.DescriptionsRewritten)
	}
	if len(report.Skipped) > 0 {
		fmt.Fprintf(&b, "<b>⚠️ Skipped:</b> %d\n", len(report.Skipped))
		for _, sp := range report.Skipped {
			fmt.Fprintf(&b, "• <code>%s</code> %s\n", html.EscapeString(sp.ProductID), html.EscapeString(sp.Reason))
		}
	}
	if len(report.Flagged) > 0 {
		fmt.Fprintf(&b, "<b>Review:</b> %s\n", html.EscapeString(strings.Join(report.Flagged, ", ")))
	}
	return strings.TrimSpace(b.String())
}

// FormatValidation renders a validation result as a Telegram HTML message.
func FormatValidation(path string, result *validate.Result) string {
	var b strings.Builder
	status := "✅ passed"
	if !result.OK() {
		status = "❌ failed"
	}
	fmt.Fprintf(&b, "<b>Catalog validation %s</b>\n<code>%s</code>\n", status, html.EscapeString(path))
	fmt.Fprintf(&b, "<b>Errors:</b> %d\n<b>Warnings:</b> %d\n", len(result.Errors), len(result.Warnings))
	for i, issue := range result.Errors {
		if i == 10 {
			fmt.Fprintf(&b, "… and %d more\n", len(result.Errors)-i)
			break
		}
		fmt.Fprintf(&b, "• %s\n", html.EscapeString(issue.String()))
	}
	return strings.TrimSpace(b.String())
}
