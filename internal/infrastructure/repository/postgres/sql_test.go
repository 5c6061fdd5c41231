package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(sql.ErrNoRows) {
		t.Fatal("expected sql.ErrNoRows to classify as not found")
	}
	if !isNotFound(fmt.Errorf("get: %w", sql.ErrNoRows)) {
		t.Fatal("expected wrapped sql.ErrNoRows to classify as not found")
	}
	if isNotFound(errors.New("boom")) {
		t.Fatal("unexpected not-found classification")
	}
}

type fakeResult struct {
	affected int64
	err      error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.affected, r.err }

func TestCheckRowsAffected(t *testing.T) {
	sentinel := errors.New("thing not found")

	if err := checkRowsAffected(fakeResult{affected: 1}, sentinel); err != nil {
		t.Fatalf("expected nil for affected row, got %v", err)
	}
	if err := checkRowsAffected(fakeResult{affected: 0}, sentinel); !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel for zero rows, got %v", err)
	}
	if err := checkRowsAffected(fakeResult{err: errors.New("driver")}, sentinel); err == nil || errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped driver error, got %v", err)
	}
}

func TestConstraintClassification(t *testing.T) {
	fk := &pq.Error{Code: pqForeignKeyViolation}
	unique := &pq.Error{Code: pqUniqueViolation}

	if !isForeignKeyViolation(fmt.Errorf("insert: %w", fk)) {
		t.Fatal("expected wrapped 23503 to classify as fk violation")
	}
	if isForeignKeyViolation(unique) {
		t.Fatal("23505 must not classify as fk violation")
	}
	if !isUniqueViolation(unique) {
		t.Fatal("expected 23505 to classify as unique violation")
	}
	if isUniqueViolation(errors.New("boom")) {
		t.Fatal("plain error must not classify as unique violation")
	}
}

func TestNullHelpersRoundTrip(t *testing.T) {
	if got := nullInt64(nil); got.Valid {
		t.Fatal("nil int64 must map to invalid NullInt64")
	}
	id := int64(7)
	if got := nullInt64Ptr(nullInt64(&id)); got == nil || *got != id {
		t.Fatalf("int64 round trip failed: %v", got)
	}

	if got := nullFloat64Ptr(nullFloat64(nil)); got != nil {
		t.Fatalf("nil float64 round trip failed: %v", got)
	}
	xg := 0.42
	if got := nullFloat64Ptr(nullFloat64(&xg)); got == nil || *got != xg {
		t.Fatalf("float64 round trip failed: %v", got)
	}

	when := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	if got := nullTimePtr(nullTime(&when)); got == nil || !got.Equal(when) {
		t.Fatalf("time round trip failed: %v", got)
	}
	if got := nullTimePtr(nullTime(nil)); got != nil {
		t.Fatalf("nil time round trip failed: %v", got)
	}
}
