// Package directory serves the public doctor roster: filtering plus the
// derived availability status each listing carries.
package directory

import (
	"fmt"
	"strings"

	doctorRepo "apexcare/database/repository/doctor"
	"apexcare/models"
	"apexcare/services/schedule"
)

// DirectoryService defines the doctor roster queries.
type DirectoryService interface {
	ListDoctors(searchTerm, specialty string) ([]models.DoctorDTO, error)
	GetDoctor(id int) (*models.DoctorDTO, error)
	Specialties() ([]string, error)
}

// DefaultDirectoryService implements DirectoryService.
type DefaultDirectoryService struct {
	Repo      doctorRepo.DoctorRepository
	Evaluator *schedule.Evaluator
}

// FilterDoctors applies the directory predicates to a roster slice:
// case-insensitive substring match of searchTerm against name or
// specialty, ANDed with an exact specialty match ("" and "all" match
// everything). Roster order is preserved; an empty result is valid.
func FilterDoctors(roster []models.Doctor, searchTerm, specialty string) []models.Doctor {
	term := strings.ToLower(strings.TrimSpace(searchTerm))
	wantSpecialty := strings.TrimSpace(specialty)
	matchAll := wantSpecialty == "" || strings.EqualFold(wantSpecialty, "all")

	filtered := make([]models.Doctor, 0, len(roster))
	for _, d := range roster {
		if term != "" &&
			!strings.Contains(strings.ToLower(d.Name), term) &&
			!strings.Contains(strings.ToLower(d.Specialty), term) {
			continue
		}
		if !matchAll && !strings.EqualFold(d.Specialty, wantSpecialty) {
			continue
		}
		filtered = append(filtered, d)
	}
	return filtered
}

// ListDoctors returns the filtered roster, each entry decorated with its
// availability status at the current instant.
func (s *DefaultDirectoryService) ListDoctors(searchTerm, specialty string) ([]models.DoctorDTO, error) {
	roster, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load doctor roster: %w", err)
	}

	filtered := FilterDoctors(roster, searchTerm, specialty)
	dtos := make([]models.DoctorDTO, 0, len(filtered))
	for i := range filtered {
		status, err := s.Evaluator.Status(&filtered[i])
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, models.DoctorDTO{Doctor: filtered[i], Status: status})
	}
	return dtos, nil
}

// GetDoctor returns one doctor with its current status.
func (s *DefaultDirectoryService) GetDoctor(id int) (*models.DoctorDTO, error) {
	doctor, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	status, err := s.Evaluator.Status(doctor)
	if err != nil {
		return nil, err
	}
	return &models.DoctorDTO{Doctor: *doctor, Status: status}, nil
}

// Specialties lists the distinct specialties in roster order, for the
// directory's filter dropdown.
func (s *DefaultDirectoryService) Specialties() ([]string, error) {
	roster, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load doctor roster: %w", err)
	}
	seen := make(map[string]bool, len(roster))
	var specialties []string
	for _, d := range roster {
		if !seen[d.Specialty] {
			seen[d.Specialty] = true
			specialties = append(specialties, d.Specialty)
		}
	}
	return specialties, nil
}
