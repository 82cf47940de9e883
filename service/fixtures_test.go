package service

import (
	"context"
	"sync"
	"time"

	"legalbrief-backend/models"
	"legalbrief-backend/repository"

	"github.com/google/uuid"
)

var fixedNow = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

func strPtr(s string) *string {
	return &s
}

// doeCase is a civil rights case with no supporting data
func doeCase() models.CaseData {
	return models.CaseData{
		Case: models.CaseRecord{
			ID:            uuid.MustParse("6f1c2b1e-4d2a-4c3b-9f6e-2a1b3c4d5e6f"),
			Title:         "Doe v. City",
			CaseType:      models.CaseTypeCivilRights,
			OpposingParty: "City of Example",
			Status:        models.CaseStatusOpen,
		},
	}
}

func scenarioOptions() models.GenerationOptions {
	return models.GenerationOptions{
		TemplateID:   "civil-rights-complaint",
		AttorneyName: "A. Lawyer",
		AttorneyBar:  "12345",
	}
}

// fakeCaseSource serves copies of stored case data
type fakeCaseSource struct {
	mu    sync.Mutex
	cases map[uuid.UUID]models.CaseData
	err   error
	calls int
}

func newFakeCaseSource(data ...models.CaseData) *fakeCaseSource {
	f := &fakeCaseSource{cases: make(map[uuid.UUID]models.CaseData)}
	for _, d := range data {
		f.cases[d.Case.ID] = d
	}
	return f
}

func (f *fakeCaseSource) GetCaseData(ctx context.Context, caseID uuid.UUID) (*models.CaseData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	data, ok := f.cases[caseID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &data, nil
}

type fakeAnalyzer struct {
	text  string
	err   error
	calls int
}

func (f *fakeAnalyzer) AnalyzeCase(ctx context.Context, data *models.CaseData) (string, error) {
	f.calls++
	return f.text, f.err
}

// fakeExportStore keeps export records in memory
type fakeExportStore struct {
	mu        sync.Mutex
	records   map[uuid.UUID]*models.ExportRecord
	createErr error
}

func newFakeExportStore() *fakeExportStore {
	return &fakeExportStore{records: make(map[uuid.UUID]*models.ExportRecord)}
}

func (f *fakeExportStore) Create(ctx context.Context, record *models.ExportRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	record.CreatedAt = fixedNow
	stored := *record
	f.records[record.ID] = &stored
	return nil
}

func (f *fakeExportStore) GetByID(ctx context.Context, id uuid.UUID) (*models.ExportRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	record, ok := f.records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *record
	return &out, nil
}

func (f *fakeExportStore) ListByCaseID(ctx context.Context, caseID uuid.UUID, limit int) ([]*models.ExportRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.ExportRecord, 0)
	for _, record := range f.records {
		if record.CaseID == caseID {
			r := *record
			out = append(out, &r)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
