package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"

	"github.com/elitizon/invoicepipe/internal/llm"
)

const providerName = "anthropic"

// Config for the Anthropic client.
type Config struct {
	APIKey      string        // if empty, falls back to env ANTHROPIC_API_KEY
	BaseURL     string        // optional override (testing)
	Model       string        // e.g., "claude-3-5-sonnet-20241022"
	Temperature float32       // 0..1
	Timeout     time.Duration // http client timeout
	MaxTokens   int64         // default 4096
	// StrictValidation disables the lenient sanitize pass on schema failures.
	StrictValidation bool
}

type Client struct {
	cfg    Config
	sdk    sdk.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if cfg.Model == "" {
		cfg.Model = "claude-3-5-sonnet-20241022"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 4096
	}
	if logger == nil {
		logger = slog.Default()
	}
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithRequestTimeout(cfg.Timeout),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Client{
		cfg:    cfg,
		sdk:    sdk.NewClient(opts...),
		logger: logger,
	}
}

// ExtractFields implements llm.FieldExtractor over the Messages API.
// Low-confidence images are sent as base64 image blocks ahead of the prompt.
func (c *Client) ExtractFields(ctx context.Context, req llm.ExtractRequest) (llm.InvoiceFields, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("llm.extract.start",
		"req_id", rid,
		"provider", providerName,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(req.OCRText),
		"has_file_path", req.FilePath != "",
		"prep_confidence", req.PrepConfidence,
		"default_currency", req.DefaultCurrency,
	)

	schema := llm.BuildInvoiceJSONSchema()
	user := llm.BuildUserPrompt(req) + "\n\nReturn ONLY JSON that matches this schema:\n" + mustJSON(schema)

	blocks := []sdk.ContentBlockParamUnion{}
	if attach, dataURL, mimeType := llm.ShouldAttachImage(req); attach {
		if b64, ok := llm.SplitDataURL(dataURL); ok {
			c.logger.Info("llm.extract.attach_image", "req_id", rid, "mime_type", mimeType)
			blocks = append(blocks, sdk.NewImageBlockBase64(mimeType, b64))
		}
	}
	blocks = append(blocks, sdk.NewTextBlock(user))

	params := sdk.MessageNewParams{
		Model:       sdk.Model(c.cfg.Model),
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: sdk.Float(float64(c.cfg.Temperature)),
		System:      []sdk.TextBlockParam{{Text: llm.SystemPrompt()}},
		Messages:    []sdk.MessageParam{sdk.NewUserMessage(blocks...)},
	}

	msg, err := c.sdk.Messages.New(ctx, params)
	if err != nil {
		var apierr *sdk.Error
		if errors.As(err, &apierr) && apierr.StatusCode == 429 {
			err = llm.NewRateLimitError(providerName, err, llm.ParseRetryAfterHeader(apierr.Response.Header.Get("Retry-After")))
		}
		c.logger.Error("llm.extract.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.InvoiceFields{}, nil, err
	}

	var content string
	for _, b := range msg.Content {
		if b.Type == "text" {
			content += b.Text
		}
	}
	content = strings.TrimSpace(content)
	if content == "" {
		c.logger.Error("llm.extract.empty_content",
			"req_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.InvoiceFields{}, nil, fmt.Errorf("empty anthropic response")
	}

	fields, rawContent, err := llm.FinishExtraction(schema, []byte(content), !c.cfg.StrictValidation, c.logger)
	if err != nil {
		c.logger.Error("llm.extract.invalid_output",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.InvoiceFields{}, rawContent, err
	}

	c.logger.Info("llm.extract.ok",
		"req_id", rid,
		"invoice_number", fields.InvoiceNumber,
		"date", fields.InvoiceDate,
		"vendor", fields.Vendor.Name,
		"total", fields.Total,
		"currency", fields.CurrencyCode,
		"input_tokens", msg.Usage.InputTokens,
		"output_tokens", msg.Usage.OutputTokens,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return fields, rawContent, nil
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
