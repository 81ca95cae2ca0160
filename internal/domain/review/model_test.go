package review

import "testing"

func TestStatusCanTransition(t *testing.T) {
	tests := []struct {
		from Status
		to   Status
		want bool
	}{
		{StatusPending, StatusProcessing, true},
		{StatusProcessing, StatusComplete, true},
		{StatusProcessing, StatusError, true},
		{StatusPending, StatusComplete, false},
		{StatusPending, StatusError, false},
		{StatusComplete, StatusProcessing, false},
		{StatusComplete, StatusError, false},
		{StatusError, StatusProcessing, false},
		{StatusError, StatusComplete, false},
		{StatusProcessing, StatusPending, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.want {
			t.Errorf("CanTransition(%s → %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusProcessing, StatusComplete, StatusError} {
		if !s.IsValid() {
			t.Errorf("IsValid(%s) = false, want true", s)
		}
	}
	if Status("done").IsValid() {
		t.Error("IsValid(done) = true, want false")
	}
}

func TestSortClauses(t *testing.T) {
	clauses := []*Clause{
		{ID: 1, RiskLevel: RiskLow, SortOrder: 0},
		{ID: 2, RiskLevel: RiskHigh, SortOrder: 5},
		{ID: 3, RiskLevel: RiskMedium, SortOrder: 1},
		{ID: 4, RiskLevel: RiskHigh, SortOrder: 2},
		{ID: 5, RiskLevel: RiskMedium, SortOrder: 0},
	}

	SortClauses(clauses)

	wantOrder := []int64{4, 2, 5, 3, 1}
	for i, want := range wantOrder {
		if clauses[i].ID != want {
			t.Errorf("clauses[%d].ID = %d, want %d", i, clauses[i].ID, want)
		}
	}
}
