package querybuilder

import (
	"reflect"
	"testing"
)

func TestBuildWithoutConditions(t *testing.T) {
	sql, args := New().Build("SELECT * FROM fiche_navettes", "ORDER BY created_at DESC")

	want := "SELECT * FROM fiche_navettes ORDER BY created_at DESC"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want empty", args)
	}
}

func TestBuildRenumbersPlaceholders(t *testing.T) {
	b := New().
		And("status = ?", "pending").
		And("created_at >= ?", "2025-01-01")

	sql, args := b.Build("SELECT id FROM fiche_navettes", "LIMIT ? OFFSET ?", 10, 20)

	want := "SELECT id FROM fiche_navettes WHERE status = $1 AND created_at >= $2 LIMIT $3 OFFSET $4"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}

	wantArgs := []interface{}{"pending", "2025-01-01", 10, 20}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Errorf("args = %v, want %v", args, wantArgs)
	}
}

func TestAndIfSkipsInactiveFilters(t *testing.T) {
	status := ""
	companyID := "c-1"

	b := New().
		AndIf(status != "", "status = ?", status).
		AndIf(companyID != "", "company_id = ?", companyID)

	sql, args := b.Build("SELECT id FROM t", "")

	want := "SELECT id FROM t WHERE company_id = $1"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != "c-1" {
		t.Errorf("args = %v, want [c-1]", args)
	}
}

func TestOrGroupComposition(t *testing.T) {
	g := NewGroup().
		Or("fn_number ILIKE ?", "%7/2025%").
		Or("status ILIKE ?", "%7/2025%")

	b := New().
		AndGroup(g).
		And("patient_id = ?", "p-1")

	sql, args := b.Build("SELECT id FROM fiche_navettes", "")

	want := "SELECT id FROM fiche_navettes WHERE (fn_number ILIKE $1 OR status ILIKE $2) AND patient_id = $3"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 3 {
		t.Errorf("len(args) = %d, want 3", len(args))
	}
}

func TestEmptyGroupIsIgnored(t *testing.T) {
	sql, _ := New().AndGroup(NewGroup()).Build("SELECT 1", "")

	if sql != "SELECT 1" {
		t.Errorf("sql = %q, want %q", sql, "SELECT 1")
	}
}

func TestBuildCountSharesConditions(t *testing.T) {
	b := New().And("status = ?", "approved")

	sql, args := b.BuildCount("SELECT COUNT(*) FROM fiche_navettes")

	want := "SELECT COUNT(*) FROM fiche_navettes WHERE status = $1"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 1 {
		t.Errorf("len(args) = %d, want 1", len(args))
	}
}

func TestPaginationNormalization(t *testing.T) {
	cases := []struct {
		name        string
		page        int
		perPage     int
		wantPage    int
		wantPerPage int
		wantOffset  int
	}{
		{"defaults", 0, 0, 1, 10, 0},
		{"explicit", 3, 15, 3, 15, 30},
		{"capped", 1, 500, 1, 100, 0},
		{"negative page", -2, 10, 1, 10, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPagination(tc.page, tc.perPage, 10, 100)
			if p.Page != tc.wantPage || p.PerPage != tc.wantPerPage {
				t.Errorf("got page=%d perPage=%d, want page=%d perPage=%d",
					p.Page, p.PerPage, tc.wantPage, tc.wantPerPage)
			}
			if p.Offset() != tc.wantOffset {
				t.Errorf("Offset() = %d, want %d", p.Offset(), tc.wantOffset)
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	p := NewPagination(1, 10, 10, 100)

	if got := p.TotalPages(0); got != 0 {
		t.Errorf("TotalPages(0) = %d, want 0", got)
	}
	if got := p.TotalPages(10); got != 1 {
		t.Errorf("TotalPages(10) = %d, want 1", got)
	}
	if got := p.TotalPages(11); got != 2 {
		t.Errorf("TotalPages(11) = %d, want 2", got)
	}
}
