// Package health keeps patients and their prescriptions and answers
// per-patient prescription lookups.
package health

import (
	"github.com/ginjaninja78/recordkeeper/internal/logger"
	"github.com/ginjaninja78/recordkeeper/internal/repository"
	"github.com/ginjaninja78/recordkeeper/internal/types"
)

// System owns the patient and prescription repositories and a derived
// prescriptions-by-patient index.
type System struct {
	lggr          logger.Logger
	patients      *repository.Repository[types.Patient]
	prescriptions *repository.Repository[types.Prescription]
	byPatient     map[int][]types.Prescription
}

// NewSystem creates an empty System.
func NewSystem(lggr logger.Logger) *System {
	return &System{
		lggr:          lggr.Named("health"),
		patients:      repository.New[types.Patient](),
		prescriptions: repository.New[types.Prescription](),
		byPatient:     map[int][]types.Prescription{},
	}
}

// SeedData loads the initial patients and prescriptions and builds the
// prescription index.
func (s *System) SeedData(patients []types.Patient, prescriptions []types.Prescription) {
	for _, p := range patients {
		s.patients.Add(p)
	}
	for _, p := range prescriptions {
		s.prescriptions.Add(p)
	}
	s.BuildPrescriptionMap()

	s.lggr.Infow("seeded", "patients", len(patients), "prescriptions", len(prescriptions))
}

// AddPatient registers a patient.
func (s *System) AddPatient(p types.Patient) {
	s.patients.Add(p)
}

// AddPrescription stores a prescription and rebuilds the index.
func (s *System) AddPrescription(p types.Prescription) {
	s.prescriptions.Add(p)
	s.BuildPrescriptionMap()
}

// BuildPrescriptionMap recomputes the prescriptions-by-patient index from
// the current repository contents.
func (s *System) BuildPrescriptionMap() {
	s.byPatient = GroupByPatient(s.prescriptions.All())
}

// GetPrescriptionsByPatientID returns the patient's prescriptions in the
// order they were added. The slice is empty, never nil, when there are none.
func (s *System) GetPrescriptionsByPatientID(patientID int) []types.Prescription {
	return append([]types.Prescription{}, s.byPatient[patientID]...)
}

// GetPatientByID returns the first patient with the given id.
func (s *System) GetPatientByID(id int) (types.Patient, bool) {
	return s.patients.Find(func(p types.Patient) bool { return p.ID == id })
}

// Patients returns every patient in registration order.
func (s *System) Patients() []types.Patient {
	return s.patients.All()
}

// Prescriptions returns every prescription in insertion order.
func (s *System) Prescriptions() []types.Prescription {
	return s.prescriptions.All()
}

// GroupByPatient groups prescriptions by PatientID, keeping their relative
// order.
func GroupByPatient(prescriptions []types.Prescription) map[int][]types.Prescription {
	grouped := make(map[int][]types.Prescription)
	for _, p := range prescriptions {
		grouped[p.PatientID] = append(grouped[p.PatientID], p)
	}

	return grouped
}
