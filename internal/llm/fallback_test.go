package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubExtractor struct {
	fields InvoiceFields
	err    error
	calls  int
}

func (s *stubExtractor) ExtractFields(ctx context.Context, req ExtractRequest) (InvoiceFields, []byte, error) {
	s.calls++
	if s.err != nil {
		return InvoiceFields{}, nil, s.err
	}
	return s.fields, []byte(`{}`), nil
}

func TestFallback_FirstProviderWins(t *testing.T) {
	first := &stubExtractor{fields: InvoiceFields{InvoiceNumber: "INV-1"}}
	second := &stubExtractor{fields: InvoiceFields{InvoiceNumber: "INV-2"}}
	f := NewFallbackExtractor([]FieldExtractor{first, second}, []string{"openai", "gemini"}, nil)

	fields, _, err := f.ExtractFields(context.Background(), ExtractRequest{})
	require.NoError(t, err)
	assert.Equal(t, "INV-1", fields.InvoiceNumber)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls)
}

func TestFallback_FailureFallsThrough(t *testing.T) {
	first := &stubExtractor{err: errors.New("boom")}
	second := &stubExtractor{fields: InvoiceFields{InvoiceNumber: "INV-2"}}
	f := NewFallbackExtractor([]FieldExtractor{first, second}, []string{"openai", "gemini"}, nil)

	fields, _, err := f.ExtractFields(context.Background(), ExtractRequest{})
	require.NoError(t, err)
	assert.Equal(t, "INV-2", fields.InvoiceNumber)
}

func TestFallback_RateLimitOpensCircuit(t *testing.T) {
	first := &stubExtractor{err: NewRateLimitError("openai", errors.New("429"), 60)}
	second := &stubExtractor{fields: InvoiceFields{InvoiceNumber: "INV-2"}}
	f := NewFallbackExtractor([]FieldExtractor{first, second}, []string{"openai", "gemini"}, nil)

	_, _, err := f.ExtractFields(context.Background(), ExtractRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, first.calls)

	// Circuit is open now; the rate-limited provider must be skipped.
	_, _, err = f.ExtractFields(context.Background(), ExtractRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 2, second.calls)
}

func TestFallback_AllRateLimited(t *testing.T) {
	first := &stubExtractor{err: NewRateLimitError("openai", errors.New("429"), 30)}
	second := &stubExtractor{err: NewRateLimitError("gemini", errors.New("429"), 90)}
	f := NewFallbackExtractor([]FieldExtractor{first, second}, []string{"openai", "gemini"}, nil)

	_, _, err := f.ExtractFields(context.Background(), ExtractRequest{})
	require.Error(t, err)

	var rl *RateLimitError
	require.True(t, errors.As(err, &rl))
	assert.Equal(t, "all", rl.Provider)
}

func TestFallback_AllFailed(t *testing.T) {
	first := &stubExtractor{err: errors.New("bad key")}
	second := &stubExtractor{err: errors.New("model gone")}
	f := NewFallbackExtractor([]FieldExtractor{first, second}, []string{"openai", "gemini"}, nil)

	_, _, err := f.ExtractFields(context.Background(), ExtractRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all providers failed")
	assert.Contains(t, err.Error(), "model gone")
}

func TestParseRetryAfterHeader(t *testing.T) {
	assert.Equal(t, 0, ParseRetryAfterHeader(""))
	assert.Equal(t, 0, ParseRetryAfterHeader("Wed, 21 Oct 2015 07:28:00 GMT"))
	assert.Equal(t, 30, ParseRetryAfterHeader("30"))
}

func TestNewRateLimitErrorDefaults(t *testing.T) {
	rl := NewRateLimitError("gemini", errors.New("429"), 0)
	assert.Equal(t, "gemini", rl.Provider)
	assert.Equal(t, float64(60), rl.RetryAfter.Seconds())
}
