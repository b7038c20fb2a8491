package directory

import (
	"fmt"
	"testing"
	"time"

	doctorRepo "apexcare/database/repository/doctor"
	"apexcare/models"
	"apexcare/services/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDoctorRepo struct {
	roster []models.Doctor
}

func (f *fakeDoctorRepo) GetAll() ([]models.Doctor, error) {
	return append([]models.Doctor(nil), f.roster...), nil
}

func (f *fakeDoctorRepo) GetByID(id int) (*models.Doctor, error) {
	for i := range f.roster {
		if f.roster[i].ID == id {
			d := f.roster[i]
			return &d, nil
		}
	}
	return nil, fmt.Errorf("doctor %d not found", id)
}

func (f *fakeDoctorRepo) Upsert(doctor *models.Doctor) error {
	f.roster = append(f.roster, *doctor)
	return nil
}

func rosterIDs(doctors []models.Doctor) []int {
	ids := make([]int, 0, len(doctors))
	for _, d := range doctors {
		ids = append(ids, d.ID)
	}
	return ids
}

func TestFilterDoctorsIdentity(t *testing.T) {
	roster := doctorRepo.Roster

	for _, filter := range []string{"", "all", "All", "ALL"} {
		got := FilterDoctors(roster, "", filter)
		require.Len(t, got, len(roster), "specialty %q", filter)
		assert.Equal(t, rosterIDs(roster), rosterIDs(got), "roster order must be preserved")
	}
}

func TestFilterDoctors(t *testing.T) {
	roster := doctorRepo.Roster

	tests := []struct {
		name      string
		search    string
		specialty string
		wantIDs   []int
	}{
		{name: "name substring", search: "rodriguez", wantIDs: []int{3}},
		{name: "name substring case insensitive", search: "RODRIGUEZ", wantIDs: []int{3}},
		{name: "specialty substring via search", search: "cardio", wantIDs: []int{1}},
		{name: "specialty exact", specialty: "Dermatologist", wantIDs: []int{2}},
		{name: "specialty exact case insensitive", specialty: "dermatologist", wantIDs: []int{2}},
		{name: "search and specialty conjoined", search: "dr.", specialty: "Pediatrician", wantIDs: []int{5}},
		{name: "conjunction can be empty", search: "chen", specialty: "Cardiologist", wantIDs: []int{}},
		{name: "no match yields empty", search: "no such doctor", wantIDs: []int{}},
		{name: "whitespace trimmed", search: "  chen  ", wantIDs: []int{2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterDoctors(roster, tc.search, tc.specialty)
			assert.Equal(t, tc.wantIDs, rosterIDs(got))
		})
	}
}

func TestFilterDoctorsDoesNotMutateInput(t *testing.T) {
	roster := append([]models.Doctor(nil), doctorRepo.Roster...)
	before := rosterIDs(roster)
	FilterDoctors(roster, "chen", "")
	assert.Equal(t, before, rosterIDs(roster))
}

type fixedOccupancy struct {
	busyIDs map[int]bool
}

func (f *fixedOccupancy) IsOccupied(doctorID int, at time.Time) (bool, error) {
	return f.busyIDs[doctorID], nil
}

func newTestService(roster []models.Doctor, now time.Time, busyIDs map[int]bool) *DefaultDirectoryService {
	return &DefaultDirectoryService{
		Repo: &fakeDoctorRepo{roster: roster},
		Evaluator: &schedule.Evaluator{
			Clock:     func() time.Time { return now },
			Occupancy: &fixedOccupancy{busyIDs: busyIDs},
		},
	}
}

func TestListDoctorsCarriesStatus(t *testing.T) {
	// Monday 11:00: doctors 1, 2, 3, 5 are in window; 4 (Tue/Thu) and
	// 6 (night shift) are not.
	now := time.Date(2025, time.June, 2, 11, 0, 0, 0, time.UTC)
	svc := newTestService(doctorRepo.Roster, now, map[int]bool{3: true})

	dtos, err := svc.ListDoctors("", "")
	require.NoError(t, err)
	require.Len(t, dtos, len(doctorRepo.Roster))

	byID := make(map[int]models.AvailabilityStatus, len(dtos))
	for _, dto := range dtos {
		byID[dto.ID] = dto.Status
	}
	assert.Equal(t, models.StatusAvailable, byID[1])
	assert.Equal(t, models.StatusBusy, byID[3])
	assert.Equal(t, models.StatusUnavailable, byID[4])
	assert.Equal(t, models.StatusUnavailable, byID[6])
}

func TestGetDoctor(t *testing.T) {
	now := time.Date(2025, time.June, 7, 1, 0, 0, 0, time.UTC) // Saturday 01:00
	svc := newTestService(doctorRepo.Roster, now, nil)

	dto, err := svc.GetDoctor(6)
	require.NoError(t, err)
	assert.Equal(t, "Dr. David Kim", dto.Name)
	assert.Equal(t, models.StatusAvailable, dto.Status, "night shift spills past midnight")

	_, err = svc.GetDoctor(99)
	assert.Error(t, err)
}

func TestSpecialties(t *testing.T) {
	roster := append([]models.Doctor(nil), doctorRepo.Roster...)
	roster = append(roster, models.Doctor{ID: 7, Name: "Dr. Dup", Specialty: "Cardiologist"})

	svc := newTestService(roster, time.Now(), nil)
	specialties, err := svc.Specialties()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Cardiologist", "Dermatologist", "General Physician",
		"Orthopedic Surgeon", "Pediatrician", "Emergency Medicine",
	}, specialties, "distinct, in roster order")
}
