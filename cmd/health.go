package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/recordkeeper/internal/health"
)

func newHealthCmd(a *app) *cobra.Command {
	var patientID int

	cmd := &cobra.Command{
		Use:   "health",
		Short: "List patients and their prescriptions",
		Long: `List every patient, then the prescriptions of the patient given with
--patient. Without --patient the prescriptions of every patient are shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runHealth(cmd, patientID, cmd.Flags().Changed("patient"))
		},
	}

	cmd.Flags().IntVar(&patientID, "patient", 0, "Patient ID to show prescriptions for")

	return cmd
}

func (a *app) runHealth(cmd *cobra.Command, patientID int, onePatient bool) error {
	sys := health.NewSystem(a.lggr)
	sys.SeedData(a.cfg.Health.Build(a.now()))

	p := a.printer(cmd)
	p.Line("Welcome to the Health Management System!")
	p.Patients(sys.Patients())

	if !onePatient {
		for _, patient := range sys.Patients() {
			p.Prescriptions(patient, sys.GetPrescriptionsByPatientID(patient.ID))
		}
		return nil
	}

	patient, ok := sys.GetPatientByID(patientID)
	if !ok {
		p.Line("Patient not found.")
		return fmt.Errorf("patient %d not found", patientID)
	}
	p.Prescriptions(patient, sys.GetPrescriptionsByPatientID(patient.ID))

	return nil
}
