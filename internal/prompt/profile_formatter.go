// Package prompt turns structured clinical form data into the text blocks and
// request payloads sent to the generation service. Every function here is a
// pure projection of its inputs: no state, no I/O, deterministic output.
package prompt

import (
	"fmt"
	"strings"

	"github.com/clinical-docs-server/internal/domain"
)

// FormatClientProfile projects one client record, enriched with partner and
// program context, into a structured text block. Absent fields are omitted;
// a section with no populated fields contributes nothing. An unresolvable
// program id simply drops the Partner/Program lines.
func FormatClientProfile(client domain.Client, programs []domain.Program, partners []domain.Partner) string {
	profile := client.Profile

	var partnerName, programName string
	for _, p := range programs {
		if p.ID == client.ProgramID {
			programName = p.Name
			for _, pt := range partners {
				if pt.ID == p.PartnerID {
					partnerName = pt.Name
				}
			}
			break
		}
	}

	sections := []struct {
		title string
		lines []string
	}{
		{"Core Information", []string{
			line("Partner", partnerName),
			line("Program", programName),
			line("Intake Date", profile.IntakeDate),
			line("Presenting Problem", profile.PresentingProblem),
		}},
		{"Clinical Framework", []string{
			line("Stage of Change", string(profile.StageOfChange)),
			line("Primary Motivators", profile.PrimaryMotivators),
			rulerLine("Readiness Ruler", profile.ReadinessRuler),
			line("MBTI Type", profile.MBTI),
		}},
		{"Strengths & Supports", []string{
			listLine("Strengths", profile.Strengths),
			listLine("Skills/Hobbies", profile.SkillsAndHobbies),
			listLine("Support System", profile.SupportSystem),
		}},
		{"Barriers & Needs", []string{
			listLine("Barriers", profile.Barriers),
			listLine("Case Management Needs", profile.CaseManagementNeeds),
		}},
		{"History", []string{
			flagsLine(profile),
			line("Notes on History", profile.NotesOnHistory),
		}},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "### Client Information for: %s (ID: %s)\n", client.Name, client.ID)
	for _, section := range sections {
		for _, l := range section.lines {
			if l != "" {
				b.WriteString("- ")
				b.WriteString(l)
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func line(label, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf("%s: %s", label, value)
}

func listLine(label string, values []string) string {
	if len(values) == 0 {
		return ""
	}
	return fmt.Sprintf("%s: %s", label, strings.Join(values, ", "))
}

func rulerLine(label string, value int) string {
	if value == 0 {
		return ""
	}
	return fmt.Sprintf("%s: %d/10", label, value)
}

// flagsLine aggregates the three history booleans into one comma-joined line,
// in fixed order. Empty when no flag is set.
func flagsLine(profile domain.ClientProfile) string {
	var flags []string
	if profile.HistoryOfTrauma {
		flags = append(flags, "Trauma")
	}
	if profile.HistoryOfSubstanceUse {
		flags = append(flags, "Substance Use")
	}
	if profile.SignificantMedicalConditions {
		flags = append(flags, "Medical Conditions")
	}
	if len(flags) == 0 {
		return ""
	}
	return fmt.Sprintf("Flags: %s", strings.Join(flags, ", "))
}
