package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/openlabor/jobmarket/constants"
	"github.com/openlabor/jobmarket/internal/entity"
)

type fakeSource struct {
	ratings []*entity.Rating
	karma   int64
}

func (f *fakeSource) GetRatings(addr string, filter constants.RatingFilter) []*entity.Rating {
	return f.ratings
}

func (f *fakeSource) GetKarma(addr string) int64 {
	return f.karma
}

func TestExportRatingsXLSX(t *testing.T) {
	src := &fakeSource{
		ratings: []*entity.Rating{
			{
				JobID:       0,
				RatedPerson: "0xbbbb",
				Rater:       "0xaaaa",
				Score:       5,
				Role:        constants.RoleEmployee,
				Comment:     "ref:good",
				CreatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
			},
			{
				JobID:       1,
				RatedPerson: "0xbbbb",
				Rater:       "0xaaaa",
				Score:       2,
				Role:        constants.RoleEmployee,
				Comment:     "ref:bad",
				CreatedAt:   time.Date(2026, 2, 2, 3, 4, 5, 0, time.UTC),
			},
		},
		karma: 0,
	}

	svc := NewService(src, nil)
	out, err := svc.ExportRatingsXLSX(context.Background(), "0xbbbb")
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	const sheet = "Ratings"
	got := func(cell string) string {
		t.Helper()
		v, err := f.GetCellValue(sheet, cell)
		if err != nil {
			t.Fatalf("cell %s: %v", cell, err)
		}
		return v
	}

	if got("A1") != "Job ID" || got("B1") != "Score" {
		t.Fatalf("header row = %q %q", got("A1"), got("B1"))
	}
	if got("B2") != "5" || got("C2") != "Positive" {
		t.Fatalf("first rating row = %q %q", got("B2"), got("C2"))
	}
	if got("B3") != "2" || got("C3") != "Negative" {
		t.Fatalf("second rating row = %q %q", got("B3"), got("C3"))
	}
	if got("A5") != "Karma" || got("B5") != "0" {
		t.Fatalf("karma summary = %q %q", got("A5"), got("B5"))
	}
}

func TestExportRatingsXLSXEmpty(t *testing.T) {
	svc := NewService(&fakeSource{karma: 0}, nil)
	out, err := svc.ExportRatingsXLSX(context.Background(), "0xdddd")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()
	if v, _ := f.GetCellValue("Ratings", "A3"); v != "Karma" {
		t.Fatalf("karma label = %q, want Karma", v)
	}
}
