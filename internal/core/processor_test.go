package core

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elitizon/invoicepipe/constants"
	"github.com/elitizon/invoicepipe/internal/entity"
	"github.com/elitizon/invoicepipe/internal/llm"
	"github.com/elitizon/invoicepipe/internal/ocr"
	"github.com/elitizon/invoicepipe/internal/repository"
)

// --- fakes ---

type fakeOCR struct {
	res ocr.ExtractionResult
	err error
}

func (f *fakeOCR) Extract(_ context.Context, _ string) (ocr.ExtractionResult, error) {
	return f.res, f.err
}

type fakeLLM struct {
	fields llm.InvoiceFields
	raw    []byte
	err    error
	gotReq llm.ExtractRequest
}

func (f *fakeLLM) ExtractFields(_ context.Context, req llm.ExtractRequest) (llm.InvoiceFields, []byte, error) {
	f.gotReq = req
	return f.fields, f.raw, f.err
}

type fakeFiles struct {
	file *entity.InvoiceFile
}

func (f *fakeFiles) GetByID(_ context.Context, id uuid.UUID) (*entity.InvoiceFile, error) {
	if f.file == nil || f.file.ID != id {
		return nil, errors.New("file not found")
	}
	return f.file, nil
}
func (f *fakeFiles) GetByProfileAndHash(context.Context, uuid.UUID, []byte) (*entity.InvoiceFile, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeFiles) Create(context.Context, uuid.UUID, string, string, int, []byte, time.Time) (*entity.InvoiceFile, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeFiles) UpsertByHash(context.Context, uuid.UUID, string, string, int, []byte, time.Time) (*entity.InvoiceFile, bool, error) {
	return nil, false, errors.New("not implemented")
}

type fakeJobs struct {
	started     *entity.ExtractJob
	ocrText     string
	ocrMethod   string
	failedMsg   string
	llmInvoice  uuid.UUID
	llmReview   bool
	llmRaw      []byte
	llmFinished bool
	startErr    error
}

func (f *fakeJobs) Start(_ context.Context, fileID, profileID uuid.UUID, format, status string) (*entity.ExtractJob, error) {
	if f.startErr != nil {
		return nil, f.startErr
	}
	st := status
	f.started = &entity.ExtractJob{
		ID:        uuid.New(),
		FileID:    fileID,
		ProfileID: profileID,
		Format:    format,
		StartedAt: time.Now(),
		Status:    &st,
	}
	return f.started, nil
}
func (f *fakeJobs) GetByID(_ context.Context, jobID uuid.UUID) (*entity.ExtractJob, error) {
	if f.started == nil || f.started.ID != jobID {
		return nil, errors.New("job not found")
	}
	return f.started, nil
}
func (f *fakeJobs) LatestForFile(context.Context, uuid.UUID) (*entity.ExtractJob, error) {
	return f.started, nil
}
func (f *fakeJobs) MarkRunning(context.Context, uuid.UUID) error { return nil }
func (f *fakeJobs) FinishOCRSuccess(_ context.Context, _ uuid.UUID, text, method string, _ float32) error {
	f.ocrText, f.ocrMethod = text, method
	return nil
}
func (f *fakeJobs) FinishLLMSuccess(_ context.Context, _ uuid.UUID, invoiceID uuid.UUID, raw []byte, _ string, _ float32, needsReview bool, _ map[string]any) error {
	f.llmInvoice, f.llmReview, f.llmRaw, f.llmFinished = invoiceID, needsReview, raw, true
	return nil
}
func (f *fakeJobs) FinishFailure(_ context.Context, _ uuid.UUID, msg string) error {
	f.failedMsg = msg
	return nil
}

type fakeProfiles struct {
	profile *entity.Profile
}

func (f *fakeProfiles) GetByID(_ context.Context, id uuid.UUID) (*entity.Profile, error) {
	if f.profile == nil || f.profile.ID != id {
		return nil, errors.New("profile not found")
	}
	return f.profile, nil
}
func (f *fakeProfiles) CreateProfile(context.Context, *repository.CreateProfileRequest) (*entity.Profile, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeProfiles) GetOrCreateByName(context.Context, string, string) (*entity.Profile, error) {
	return f.profile, nil
}
func (f *fakeProfiles) ListProfiles(context.Context) ([]*entity.Profile, error) {
	return []*entity.Profile{f.profile}, nil
}
func (f *fakeProfiles) Exists(context.Context, uuid.UUID) (bool, error) { return true, nil }

type fakeInvoices struct {
	upserted *repository.CreateInvoiceRequest
	result   *entity.Invoice
	err      error
}

func (f *fakeInvoices) GetByID(context.Context, uuid.UUID) (*entity.Invoice, error) {
	return f.result, nil
}
func (f *fakeInvoices) ListInvoices(context.Context, uuid.UUID, *time.Time, *time.Time) ([]*entity.Invoice, error) {
	return nil, nil
}
func (f *fakeInvoices) ListLineItems(context.Context, uuid.UUID) ([]*entity.LineItem, error) {
	return nil, nil
}
func (f *fakeInvoices) UpsertFromFields(_ context.Context, req *repository.CreateInvoiceRequest) (*entity.Invoice, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.upserted = req
	return f.result, nil
}

// --- fixtures ---

func goodFields() llm.InvoiceFields {
	return llm.InvoiceFields{
		InvoiceNumber:   "INV-1001",
		InvoiceDate:     "2025-03-14",
		Vendor:          llm.Party{Name: "Acme Supplies GmbH"},
		Total:           "418.00",
		Subtotal:        "400.00",
		Tax:             "18.00",
		CurrencyCode:    "EUR",
		ModelConfidence: 0.92,
	}
}

func newTestWorld(t *testing.T) (*fakeOCR, *fakeLLM, *fakeFiles, *fakeJobs, *fakeProfiles, *fakeInvoices) {
	t.Helper()
	profileID := uuid.New()
	company := "Elitizon Ltd"
	profiles := &fakeProfiles{profile: &entity.Profile{
		ID:              profileID,
		Name:            "default",
		CompanyName:     &company,
		DefaultCurrency: "EUR",
	}}
	files := &fakeFiles{file: &entity.InvoiceFile{
		ID:         uuid.New(),
		ProfileID:  profileID,
		SourcePath: "/inbox/acme/INV-1001.pdf",
		FileExt:    "pdf",
	}}
	ocrFake := &fakeOCR{res: ocr.ExtractionResult{
		Text:       "ACME Supplies GmbH\nInvoice INV-1001\nTotal 418.00 EUR",
		Pages:      1,
		SourceType: constants.PDF,
		Method:     "pdf-text",
		Confidence: 0.95,
	}}
	llmFake := &fakeLLM{fields: goodFields(), raw: []byte(`{"invoice_number":"INV-1001"}`)}
	invoices := &fakeInvoices{result: &entity.Invoice{ID: uuid.New(), InvoiceNumber: "INV-1001"}}
	return ocrFake, llmFake, files, &fakeJobs{}, profiles, invoices
}

// --- tests ---

func TestProcessFile_HappyPath(t *testing.T) {
	ocrFake, llmFake, files, jobs, profiles, invoices := newTestWorld(t)
	p := NewProcessor(nil, ocrFake, llmFake, files, jobs, profiles, invoices, 0.6)

	jobID, err := p.ProcessFile(context.Background(), files.file.ID)
	require.NoError(t, err)
	require.NotNil(t, jobs.started)
	assert.Equal(t, jobs.started.ID, jobID)

	// OCR stage persisted
	assert.Equal(t, ocrFake.res.Text, jobs.ocrText)
	assert.Equal(t, "pdf-text", jobs.ocrMethod)

	// LLM stage persisted and linked to the invoice
	require.True(t, jobs.llmFinished)
	assert.Equal(t, invoices.result.ID, jobs.llmInvoice)
	assert.False(t, jobs.llmReview)
	assert.Equal(t, llmFake.raw, jobs.llmRaw)

	// extract request carried profile context
	assert.Equal(t, "EUR", llmFake.gotReq.DefaultCurrency)
	assert.Equal(t, "Elitizon Ltd", llmFake.gotReq.Profile.CompanyName)
	assert.Equal(t, "INV-1001.pdf", llmFake.gotReq.FilenameHint)

	// invoice upserted with the extracted fields
	require.NotNil(t, invoices.upserted)
	assert.Equal(t, "INV-1001", invoices.upserted.Fields.InvoiceNumber)
}

func TestProcessFile_OCRFailureMarksJobFailed(t *testing.T) {
	ocrFake, llmFake, files, jobs, profiles, invoices := newTestWorld(t)
	ocrFake.err = errors.New("pdftotext: exit status 1")
	p := NewProcessor(nil, ocrFake, llmFake, files, jobs, profiles, invoices, 0.6)

	_, err := p.ProcessFile(context.Background(), files.file.ID)
	require.Error(t, err)
	assert.Contains(t, jobs.failedMsg, "pdftotext")
	assert.False(t, jobs.llmFinished)
}

func TestProcessFile_LLMFailureMarksJobFailed(t *testing.T) {
	ocrFake, llmFake, files, jobs, profiles, invoices := newTestWorld(t)
	llmFake.err = errors.New("all providers failed")
	p := NewProcessor(nil, ocrFake, llmFake, files, jobs, profiles, invoices, 0.6)

	_, err := p.ProcessFile(context.Background(), files.file.ID)
	require.Error(t, err)
	assert.Contains(t, jobs.failedMsg, "all providers failed")
	assert.Nil(t, invoices.upserted)
}

func TestProcessFile_LowConfidenceNeedsReview(t *testing.T) {
	ocrFake, llmFake, files, jobs, profiles, invoices := newTestWorld(t)
	llmFake.fields.ModelConfidence = 0.35
	p := NewProcessor(nil, ocrFake, llmFake, files, jobs, profiles, invoices, 0.6)

	_, err := p.ProcessFile(context.Background(), files.file.ID)
	require.NoError(t, err)
	assert.True(t, jobs.llmReview)
}

func TestProcessFile_MissingFieldsNeedReview(t *testing.T) {
	ocrFake, llmFake, files, jobs, profiles, invoices := newTestWorld(t)
	llmFake.fields.InvoiceNumber = ""
	p := NewProcessor(nil, ocrFake, llmFake, files, jobs, profiles, invoices, 0.6)

	_, err := p.ProcessFile(context.Background(), files.file.ID)
	require.NoError(t, err)
	assert.True(t, jobs.llmReview)
}

func TestRunOCROnly_PersistsTextWithoutLLM(t *testing.T) {
	ocrFake, _, files, jobs, profiles, invoices := newTestWorld(t)
	p := NewProcessor(nil, ocrFake, nil, files, jobs, profiles, invoices, 0.6)

	jobID, res, err := p.RunOCROnly(context.Background(), files.file.ID)
	require.NoError(t, err)
	require.NotNil(t, jobs.started)
	assert.Equal(t, jobs.started.ID, jobID)

	assert.Equal(t, ocrFake.res.Text, res.Text)
	assert.Equal(t, ocrFake.res.Text, jobs.ocrText)
	assert.Equal(t, "pdf-text", jobs.ocrMethod)
	assert.False(t, jobs.llmFinished)
	assert.Nil(t, invoices.upserted)
}

func TestProcessFile_UnknownFile(t *testing.T) {
	ocrFake, llmFake, files, jobs, profiles, invoices := newTestWorld(t)
	p := NewProcessor(nil, ocrFake, llmFake, files, jobs, profiles, invoices, 0.6)

	_, err := p.ProcessFile(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Nil(t, jobs.started)
}

func TestProcessPath_Success(t *testing.T) {
	ocrFake, llmFake, _, _, _, _ := newTestWorld(t)
	p := NewStandaloneProcessor(nil, ocrFake, llmFake, 10, "USD")

	path := filepath.Join(t.TempDir(), "invoice.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4\nfake invoice body\n%%EOF"), 0o644))

	res := p.ProcessPath(context.Background(), path)
	require.True(t, res.Success, res.ErrorMessage)
	require.NotNil(t, res.InvoiceData)
	assert.Equal(t, "INV-1001", res.InvoiceData.InvoiceNumber)
	assert.InDelta(t, 0.92, float64(res.ConfidenceScore), 1e-6)
	assert.GreaterOrEqual(t, res.ProcessingTime, 0.0)

	// the raw path feeds the extractor, DefaultCurrency comes from config
	assert.Equal(t, "USD", llmFake.gotReq.DefaultCurrency)
	assert.Equal(t, path, llmFake.gotReq.FilePath)
}

func TestProcessPath_MissingFile(t *testing.T) {
	ocrFake, llmFake, _, _, _, _ := newTestWorld(t)
	p := NewStandaloneProcessor(nil, ocrFake, llmFake, 10, "USD")

	res := p.ProcessPath(context.Background(), filepath.Join(t.TempDir(), "nope.pdf"))
	assert.False(t, res.Success)
	assert.Contains(t, res.ErrorMessage, "file not found")
	assert.Nil(t, res.InvoiceData)
}

func TestProcessPath_OCRFailure(t *testing.T) {
	ocrFake, llmFake, _, _, _, _ := newTestWorld(t)
	ocrFake.err = errors.New("tesseract missing")
	p := NewStandaloneProcessor(nil, ocrFake, llmFake, 10, "USD")

	path := filepath.Join(t.TempDir(), "scan.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4\n%%EOF"), 0o644))

	res := p.ProcessPath(context.Background(), path)
	assert.False(t, res.Success)
	assert.Contains(t, res.ErrorMessage, "text extraction failed")
}
