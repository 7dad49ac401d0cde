package roster

import (
	"fmt"

	"github.com/clinical-docs-server/internal/domain"
)

// partnerNames are the demo partner organizations, in seed order
var partnerNames = []string{
	"Marvel/DC Crossover Initiative",
	"Miracle House",
	"Stairway to Recovery",
	"DJ's Peer Support",
	"Reach One Recovery Services",
	"Journey to Resilience",
	"Monte's Place",
	"Reach One Clinical Services",
}

// programNames are the programs every partner operates
var programNames = []string{"Outpatient SUD", "IOP SUD", "Peer Support Only"}

// Seed populates the store with the demo roster: every partner gets the three
// standard programs, and a mixed client caseload is attached. Ids are stable
// across restarts so bookmarked links keep working in demos.
func Seed(store *Store) {
	for i, name := range partnerNames {
		partnerID := fmt.Sprintf("partner-%d", i+1)
		store.seedPartner(domain.Partner{ID: partnerID, Name: name})

		for j, progName := range programNames {
			store.seedProgram(domain.Program{
				ID:        fmt.Sprintf("prog-%d-%d", i+1, j+1),
				Name:      progName,
				PartnerID: partnerID,
			})
		}
	}

	for _, client := range seedClients() {
		// Seeded ids are fixed; collisions cannot happen on a fresh store.
		_, _ = store.CreateClient(client)
	}
}

func seedClients() []domain.Client {
	return []domain.Client{
		{
			ID: "dc-01", Name: "Bruce Wayne", ProgramID: "prog-1-1",
			Profile: domain.ClientProfile{
				IntakeDate:            "2024-01-15",
				ExpectedDischargeDate: "2024-10-15",
				StageOfChange:         domain.CONTEMPLATION,
				PresentingProblem:     "Complex PTSD, persistent depressive disorder, and maladaptive coping mechanisms (vigilantism).",
				Strengths:             []string{"High intelligence", "Immense resources", "Strong sense of justice"},
				Barriers:              []string{"Severe trust issues", "Emotional suppression", "Refusal to acknowledge vulnerability"},
				HistoryOfTrauma:       true,
				NotesOnHistory:        "Client reports significant childhood trauma related to the violent death of his parents.",
			},
		},
		{
			ID: "mrvl-01", Name: "Tony Stark", ProgramID: "prog-1-2",
			Profile: domain.ClientProfile{
				IntakeDate:            "2024-04-01",
				ExpectedDischargeDate: "2024-12-01",
				StageOfChange:         domain.ACTION,
				PresentingProblem:     "Alcohol Use Disorder (in early remission), narcissism, and anxiety related to past traumatic events.",
				Strengths:             []string{"Genius-level intellect", "Innovative", "Charismatic"},
				Barriers:              []string{"Impulsivity", "Arrogance", "Uses humor to deflect from serious emotional issues"},
				HistoryOfSubstanceUse: true,
				NotesOnHistory:        "Client has a history of using alcohol to cope with stress and trauma from kidnapping.",
			},
		},
		{
			ID: "dc-02", Name: "Clark Kent", ProgramID: "prog-1-3",
			Profile: domain.ClientProfile{
				IntakeDate:            "2023-09-20",
				ExpectedDischargeDate: "2024-09-20",
				StageOfChange:         domain.MAINTENANCE,
				PresentingProblem:     "Difficulty balancing dual identities, feelings of isolation and being an 'outsider' despite public adoration.",
				Strengths:             []string{"Strong moral compass", "Altruistic", "Resilient"},
				Barriers:              []string{"Reluctance to burden others with his problems", "Immense pressure of being a global protector"},
				NotesOnHistory:        "Client identifies as an immigrant who has successfully integrated but still struggles with his unique heritage.",
			},
		},
		{
			ID: "mrvl-02", Name: "Bruce Banner", ProgramID: "prog-1-2",
			Profile: domain.ClientProfile{
				IntakeDate:            "2024-02-10",
				ExpectedDischargeDate: "2024-11-10",
				StageOfChange:         domain.CONTEMPLATION,
				PresentingProblem:     "Intermittent Explosive Disorder; significant anger management issues. Potential dissociative features.",
				Strengths:             []string{"High intelligence (as Banner)", "Deep desire to protect others from harm"},
				Barriers:              []string{"Fear of his own power", "Social withdrawal to prevent causing harm", "Significant public stigma"},
			},
		},
		{
			ID: "dc-03", Name: "Diana Prince", ProgramID: "prog-1-1",
			Profile: domain.ClientProfile{
				IntakeDate:            "2024-05-05",
				ExpectedDischargeDate: "2025-01-05",
				StageOfChange:         domain.PREPARATION,
				PresentingProblem:     "Adjustment disorder with mixed anxiety and depressed mood related to leaving her isolated home community.",
				Strengths:             []string{"Empathetic", "Strong warrior ethos", "Compassionate"},
				Barriers:              []string{"Naivete about modern societal structures", "Can be perceived as judgmental due to her strong moral code"},
			},
		},
		{
			ID: "mrvl-03", Name: "Peter Parker", ProgramID: "prog-1-3",
			Profile: domain.ClientProfile{
				IntakeDate:            "2024-03-18",
				ExpectedDischargeDate: "2024-09-18",
				StageOfChange:         domain.MAINTENANCE,
				PresentingProblem:     "Generalized Anxiety Disorder, chronic stress, and guilt complex.",
				Strengths:             []string{"Resilient", "Highly responsible", "Strong neighborhood support system"},
				Barriers:              []string{"Financial instability", "Difficulty maintaining personal relationships due to dual life"},
				SupportSystem:         []string{"Aunt May", "Close friends"},
			},
		},
		{
			ID: "dc-04", Name: "Harleen Quinzel", ProgramID: "prog-1-2",
			Profile: domain.ClientProfile{
				IntakeDate:            "2024-06-30",
				ExpectedDischargeDate: "2025-02-28",
				StageOfChange:         domain.PREPARATION,
				PresentingProblem:     "Histrionic and Dependent Personality Traits, history of a toxic and abusive co-dependent relationship.",
				Strengths:             []string{"Highly intelligent (Ph.D. in Psychology)", "Agile", "Charismatic"},
				Barriers:              []string{"Impulsive and erratic behavior", "History of romanticizing unhealthy relationships", "Difficulty with emotional regulation"},
				HistoryOfTrauma:       true,
			},
		},
		{
			ID: "mrvl-04", Name: "Steve Rogers", ProgramID: "prog-1-3",
			Profile: domain.ClientProfile{
				IntakeDate:            "2023-10-01",
				ExpectedDischargeDate: "2024-10-01",
				StageOfChange:         domain.MAINTENANCE,
				PresentingProblem:     "Adjustment disorder, feelings of anachronism and loss after being displaced in time by 70 years.",
				Strengths:             []string{"Strong leadership skills", "Unwavering moral integrity", "Peak physical condition"},
				Barriers:              []string{"'Old-fashioned' worldview can clash with modern realities", "Survivor's guilt over lost comrades"},
			},
		},
		{
			ID: "1", Name: "John Doe", ProgramID: "prog-2-1",
			Profile: domain.ClientProfile{
				IntakeDate:            "2024-05-10",
				ExpectedDischargeDate: "2024-11-10",
				StageOfChange:         domain.CONTEMPLATION,
				PresentingProblem:     "Major Depressive Disorder, recurrent, moderate.",
				Strengths:             []string{"Strong family support", "History of medication compliance"},
				Barriers:              []string{"Social isolation", "Lack of motivation for self-care"},
				HistoryOfSubstanceUse: true,
				NotesOnHistory:        "Occasional substance use (cannabis) as a coping mechanism.",
			},
		},
		{
			ID: "2", Name: "Jane Smith", ProgramID: "prog-2-2",
			Profile: domain.ClientProfile{
				IntakeDate:            "2024-03-01",
				ExpectedDischargeDate: "2024-09-01",
				StageOfChange:         domain.ACTION,
				PresentingProblem:     "Generalized Anxiety Disorder.",
				Strengths:             []string{"Highly motivated for change", "Recently secured part-time employment"},
				Barriers:              []string{"Perfectionism", "Difficulty with emotional regulation", "High levels of stress related to work performance"},
				ReadinessRuler:        8,
			},
		},
		{
			ID: "3", Name: "Alex Johnson", ProgramID: "prog-3-1",
			Profile: domain.ClientProfile{
				IntakeDate:            "2023-11-15",
				ExpectedDischargeDate: "2024-08-15",
				StageOfChange:         domain.MAINTENANCE,
				PresentingProblem:     "Opioid Use Disorder, in sustained remission.",
				Strengths:             []string{"Actively engaged in 12-step community", "Strong relapse prevention skills"},
				Barriers:              []string{"Chronic pain management", "Rebuilding trust with family members", "Financial stressors"},
				SupportSystem:         []string{"12-step community"},
			},
		},
		{
			ID: "4", Name: "Emily White", ProgramID: "prog-8-1",
			Profile: domain.ClientProfile{
				IntakeDate:            "2024-06-20",
				ExpectedDischargeDate: "2024-12-20",
				StageOfChange:         domain.PRECONTEMPLATION,
				PresentingProblem:     "Bipolar I Disorder, current episode depressed. Mandated to treatment.",
				Strengths:             []string{"Artistic and creative", "Has a supportive partner"},
				Barriers:              []string{"Medication adherence issues", "History of impulsive behavior", "Denies severity of symptoms"},
				SupportSystem:         []string{"Partner"},
			},
		},
		{
			ID: "5", Name: "Michael Brown", ProgramID: "prog-4-3",
			Profile: domain.ClientProfile{
				IntakeDate:            "2024-07-01",
				ExpectedDischargeDate: "2025-01-01",
				StageOfChange:         domain.PREPARATION,
				PresentingProblem:     "Alcohol Use Disorder, severe.",
				Strengths:             []string{"Intelligent and self-aware"},
				PrimaryMotivators:     "Expressed a desire to quit drinking for his children.",
				Barriers:              []string{"Severe withdrawal risks", "Lives in an environment with many triggers", "History of failed quit attempts"},
			},
		},
	}
}
