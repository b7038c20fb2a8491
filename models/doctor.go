package models

// AvailabilityStatus is the derived three-valued status of a doctor at an instant.
type AvailabilityStatus string

const (
	StatusAvailable   AvailabilityStatus = "available"
	StatusBusy        AvailabilityStatus = "busy"
	StatusUnavailable AvailabilityStatus = "unavailable"
)

// AvailabilityWindow is a doctor's recurring weekly consultation window.
// Start/End are "HH:MM" strings; a window with End earlier than Start
// crosses midnight (e.g. 18:00-02:00).
type AvailabilityWindow struct {
	Days  []string `bson:"days" json:"days"` // weekday tokens: "Mon".."Sun"
	Start string   `bson:"start" json:"start"`
	End   string   `bson:"end" json:"end"`
}

// Doctor is a member of the consultation roster. Seeded at startup and
// immutable for the lifetime of the process.
type Doctor struct {
	ID              int                `bson:"id" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Specialty       string             `bson:"specialty" json:"specialty"`
	Experience      string             `bson:"experience" json:"experience"`
	Rating          float64            `bson:"rating" json:"rating"`
	Reviews         int                `bson:"reviews" json:"reviews"`
	ConsultationFee int                `bson:"consultationFee" json:"consultationFee"`
	Availability    AvailabilityWindow `bson:"availability" json:"availability"`
}

// DoctorDTO is the directory view of a doctor, decorated with the
// availability status computed for the evaluation instant.
type DoctorDTO struct {
	Doctor
	Status AvailabilityStatus `json:"status"`
}
