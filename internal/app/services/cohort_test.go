package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sachin/campushub/internal/app/models"
	"github.com/sachin/campushub/internal/pkg/apperrors"
)

func TestDepartmentCode(t *testing.T) {
	tests := []struct {
		department string
		want       string
		wantErr    bool
	}{
		{"Computing CS", "COMPUTING", false},
		{"Computing", "COMPUTING", false},
		{"engineering mech", "ENGINEERING", false},
		{"  Business  ", "BUSINESS", false},
		{"", "", true},
		{"   ", "", true},
	}

	for _, tt := range tests {
		got, err := DepartmentCode(tt.department)
		if tt.wantErr {
			assert.Error(t, err, "department %q", tt.department)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestComputeGroupName(t *testing.T) {
	attrs := CohortAttributes{
		Year:       1,
		Semester:   2,
		DayType:    models.DayTypeWeekend,
		Department: "Computing CS",
	}

	tests := []struct {
		name          string
		existingCount int64
		want          string
	}{
		{"first student opens batch 1", 0, "Y1.S2.WE.COMPUTING.1"},
		{"tenth student still batch 1", 9, "Y1.S2.WE.COMPUTING.1"},
		{"eleventh student opens batch 2", 10, "Y1.S2.WE.COMPUTING.2"},
		{"twentieth student still batch 2", 19, "Y1.S2.WE.COMPUTING.2"},
		{"twenty-first student opens batch 3", 20, "Y1.S2.WE.COMPUTING.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeGroupName(attrs, tt.existingCount)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeGroupNameValidation(t *testing.T) {
	valid := CohortAttributes{
		Year:       3,
		Semester:   1,
		DayType:    models.DayTypeWeekday,
		Department: "Engineering",
	}

	tests := []struct {
		name   string
		mutate func(a CohortAttributes) CohortAttributes
	}{
		{"missing year", func(a CohortAttributes) CohortAttributes { a.Year = 0; return a }},
		{"missing semester", func(a CohortAttributes) CohortAttributes { a.Semester = 0; return a }},
		{"invalid day type", func(a CohortAttributes) CohortAttributes { a.DayType = "XX"; return a }},
		{"missing department", func(a CohortAttributes) CohortAttributes { a.Department = ""; return a }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeGroupName(tt.mutate(valid), 0)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

type fakeCohortCounter struct {
	seq     int64
	lastKey string
	err     error
}

func (f *fakeCohortCounter) Next(_ context.Context, year, semester int, dayType models.DayType, deptCode string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.seq++
	f.lastKey = deptCode
	return f.seq, nil
}

func TestCohortServiceAssignCohort(t *testing.T) {
	counter := &fakeCohortCounter{}
	svc := NewCohortService(counter)

	attrs := CohortAttributes{
		Year:       1,
		Semester:   2,
		DayType:    models.DayTypeWeekend,
		Department: "Computing CS",
	}

	// The first ten enrollments share batch 1; the eleventh opens batch 2.
	for i := 0; i < GroupBatchSize; i++ {
		group, err := svc.AssignCohort(context.Background(), attrs)
		require.NoError(t, err)
		assert.Equal(t, "Y1.S2.WE.COMPUTING.1", group)
	}

	group, err := svc.AssignCohort(context.Background(), attrs)
	require.NoError(t, err)
	assert.Equal(t, "Y1.S2.WE.COMPUTING.2", group)
	assert.Equal(t, "COMPUTING", counter.lastKey)
}

func TestCohortServiceAssignCohortValidatesBeforeCounting(t *testing.T) {
	counter := &fakeCohortCounter{}
	svc := NewCohortService(counter)

	_, err := svc.AssignCohort(context.Background(), CohortAttributes{})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Zero(t, counter.seq, "invalid attributes must not advance the counter")
}
