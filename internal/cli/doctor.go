package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fleetdeck/fleetdeck/internal/config"
	"github.com/fleetdeck/fleetdeck/internal/doctor"
	"github.com/fleetdeck/fleetdeck/internal/errors"
	"github.com/fleetdeck/fleetdeck/internal/netcheck"
	"github.com/fleetdeck/fleetdeck/internal/ui"
)

// DoctorOutput is the JSON shape of the doctor command.
type DoctorOutput struct {
	Categories []CategoryOutput `json:"categories"`
	Summary    SummaryOutput    `json:"summary"`
}

// CategoryOutput is one category of check results.
type CategoryOutput struct {
	Name    string               `json:"name"`
	Results []doctor.CheckResult `json:"results"`
}

// SummaryOutput summarizes the check results.
type SummaryOutput struct {
	Pass     int  `json:"pass"`
	Warn     int  `json:"warn"`
	Fail     int  `json:"fail"`
	AllClear bool `json:"all_clear"`
}

// doctorCommand runs all diagnostic checks and renders the results.
func doctorCommand(asJSON bool) error {
	checks := doctor.NewConfigChecks(Config())
	checks = append(checks, doctor.NewToolsChecks()...)
	results := doctor.RunAll(checks)

	// Fleet checks probe the network; run them in parallel after the
	// cheap local checks.
	if cfg, err := config.LoadOrDefault(Config()); err == nil && len(cfg.Hosts) > 0 {
		fleetChecks := doctor.NewFleetChecks(cfg.Hosts, netcheck.New(cfg.PingTimeout))
		checks = append(checks, fleetChecks...)
		results = append(results, doctor.RunAllParallel(fleetChecks)...)
	}

	if asJSON {
		if err := outputDoctorJSON(checks, results); err != nil {
			return err
		}
	} else if err := outputDoctorText(checks, results); err != nil {
		return err
	}

	// Failing checks should fail the command, so scripts can gate on it
	if doctor.HasFailures(results) {
		return errors.New(errors.ErrExec,
			"Doctor found failing checks",
			"Fix the failures above and run 'fleetdeck doctor' again")
	}
	return nil
}

func outputDoctorJSON(checks []doctor.Check, results []doctor.CheckResult) error {
	grouped := make(map[string][]doctor.CheckResult)
	var categoryOrder []string
	for i, check := range checks {
		cat := check.Category()
		if _, exists := grouped[cat]; !exists {
			categoryOrder = append(categoryOrder, cat)
		}
		grouped[cat] = append(grouped[cat], results[i])
	}

	output := DoctorOutput{
		Categories: make([]CategoryOutput, 0, len(categoryOrder)),
	}
	for _, cat := range categoryOrder {
		output.Categories = append(output.Categories, CategoryOutput{
			Name:    cat,
			Results: grouped[cat],
		})
	}

	counts := doctor.CountByStatus(results)
	output.Summary = SummaryOutput{
		Pass:     counts[doctor.StatusPass],
		Warn:     counts[doctor.StatusWarn],
		Fail:     counts[doctor.StatusFail],
		AllClear: counts[doctor.StatusWarn] == 0 && counts[doctor.StatusFail] == 0,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func outputDoctorText(checks []doctor.Check, results []doctor.CheckResult) error {
	rows := make([]ui.DoctorRow, 0, len(results))
	for i, check := range checks {
		rows = append(rows, ui.DoctorRow{
			Status:     results[i].Status.String(),
			Category:   check.Category(),
			Message:    results[i].Message,
			Suggestion: results[i].Suggestion,
		})
	}

	fmt.Println()
	fmt.Print(ui.RenderDoctorTable(rows))
	fmt.Println(doctor.Summary(results))
	return nil
}
