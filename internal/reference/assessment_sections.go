package reference

import (
	"github.com/clinical-docs-server/internal/domain"
)

// AssessmentField is one prompt-able field inside an assessment section. The
// script is the interviewer's guidance language shown in the form.
type AssessmentField struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Script string `json:"script"`
}

// AssessmentSection is one ordered section of an assessment schema
type AssessmentSection struct {
	ID     string            `json:"id"`
	Title  string            `json:"title"`
	Fields []AssessmentField `json:"fields"`
}

// SectionsForAssessmentType returns the fixed ordered section schema for the
// given assessment type
func SectionsForAssessmentType(assessmentType domain.AssessmentType) []AssessmentSection {
	if assessmentType == domain.COMPREHENSIVE_ASSESSMENT {
		return ComprehensiveAssessmentSections
	}
	return InitialAssessmentSections
}

// InitialAssessmentSections is the 5-section intake schema
var InitialAssessmentSections = []AssessmentSection{
	{
		ID:    "presentingProblem",
		Title: "I. Presenting Problem",
		Fields: []AssessmentField{
			{ID: "description", Label: "Description (in client's own words)", Script: "What brings you in to see us today? Can you describe the problem you're experiencing in your own words?"},
			{ID: "immediateConcerns", Label: "Immediate concerns/symptoms", Script: "What are your immediate concerns or symptoms related to this problem?"},
		},
	},
	{
		ID:    "riskOfHarm",
		Title: "II. Risk of Harm",
		Fields: []AssessmentField{
			{ID: "suicidalIdeation", Label: "Suicidal ideation (thoughts, plans, intent, access to means)", Script: "Have you been having any thoughts of harming yourself? (If yes, explore further: \"What kind of thoughts?\", \"Have you had any specific plans?\", \"Do you have the means to carry out these plans?\", \"What is your intent?\")"},
			{ID: "homicidalIdeation", Label: "Homicidal ideation (thoughts, plans, intent, access to means)", Script: "Have you been having any thoughts of harming others? (If yes, explore further: \"What kind of thoughts?\", \"Have you had any specific plans?\", \"Do you have the means to carry out these plans?\", \"What is your intent?\")"},
			{ID: "selfHarm", Label: "Self-harm behaviors", Script: "Have you engaged in any self-harm behaviors recently, such as cutting, burning, or other forms of self-injury? (If yes, explore frequency, severity, and methods)."},
			{ID: "otherRisks", Label: "Other risks", Script: "Are there any other risks to your safety or the safety of others that we should be aware of? (Explore domestic violence, unsafe living situations, etc.)"},
		},
	},
	{
		ID:    "substanceUse",
		Title: "III. Substance Use",
		Fields: []AssessmentField{
			{ID: "type", Label: "Type of substance", Script: "What substances have you been using?"},
			{ID: "frequency", Label: "Frequency of use", Script: "For each substance, how often do you use it?"},
			{ID: "quantity", Label: "Quantity used", Script: "For each substance, how much do you typically use at one time?"},
			{ID: "lastUse", Label: "Date of last use", Script: "When was the last time you used each substance?"},
		},
	},
	{
		ID:    "treatmentHistory",
		Title: "IV. Treatment History",
		Fields: []AssessmentField{
			{ID: "type", Label: "Type of treatment", Script: "What type of treatment did you receive? (Inpatient, outpatient, detox, therapy, etc.)"},
			{ID: "provider", Label: "Provider", Script: "Who was your treatment provider?"},
			{ID: "dates", Label: "Dates of treatment", Script: "What were the dates of your treatment?"},
		},
	},
	{
		ID:    "medicalHistory",
		Title: "V. Medical History and Exam",
		Fields: []AssessmentField{
			{ID: "conditions", Label: "Current medical conditions", Script: "Do you have any current medical conditions?"},
			{ID: "medications", Label: "Current medications", Script: "Are you currently taking any medications, including prescription, over-the-counter, and herbal supplements?"},
			{ID: "allergies", Label: "Allergies", Script: "Do you have any allergies to medications, food, or other substances?"},
			{ID: "recentExams", Label: "Recent medical exams/hospitalizations", Script: "Have you had any recent medical exams or hospitalizations?"},
			{ID: "mse", Label: "Mental Status Exam (brief observations)", Script: "(Throughout the assessment, observe and document the following): Appearance, Behavior, Mood, Speech, Thought process, Thought content, Cognition, Insight, Judgment."},
		},
	},
}

// ComprehensiveAssessmentSections is the 16-section full biopsychosocial
// schema
var ComprehensiveAssessmentSections = []AssessmentSection{
	{
		ID:    "presentingProblem",
		Title: "II-A. Presenting Problem (Expanded)",
		Fields: []AssessmentField{
			{ID: "contributingFactors", Label: "Contributing factors", Script: "Let's explore some of the things that might be contributing to [the presenting problem]. Can you tell me more about [specific biological, psychological, social, developmental, or spiritual factors relevant to the client]?"},
			{ID: "symptomsAndSeverity", Label: "Specific symptoms and severity", Script: "Let's go through each of the symptoms you mentioned. How often have you been experiencing [symptom] lately? How intense has it been? How does it affect your day-to-day life?"},
			{ID: "impactOnLife", Label: "Impact on daily life", Script: "How is [the presenting problem] impacting your work/school, your relationships, your ability to take care of yourself, and your ability to enjoy things?"},
			{ID: "clientGoals", Label: "Client's goals for treatment", Script: "We talked about your goals for treatment last time. Are those goals still the same, or have they changed?"},
			{ID: "associatedRisks", Label: "Associated risks", Script: "Let's revisit your risk assessment. Have you had any thoughts of harming yourself or others since we last met?"},
		},
	},
	{
		ID:    "riskOfHarm",
		Title: "II-B. Risk of Harm to Self and Others (Expanded)",
		Fields: []AssessmentField{
			{ID: "pastHistory", Label: "Past history of suicidal/homicidal behavior", Script: "We talked briefly about [past suicide attempts/violent incidents/self-harm] last time. Can you tell me more about each of those times?"},
			{ID: "currentIdeation", Label: "Current ideation, plans, intent, access to means", Script: "Have you had any thoughts of harming yourself or others recently? (If yes, follow up with detailed risk assessment questions)."},
			{ID: "protectiveFactors", Label: "Protective factors", Script: "What are some things that help you stay safe when you're feeling overwhelmed or having thoughts of harming yourself/others?"},
			{ID: "contextAndTriggers", Label: "Context and triggers for risky behaviors", Script: "Let's try to identify specific situations, feelings, or thoughts that tend to trigger these thoughts or behaviors."},
		},
	},
	{
		ID:    "substanceUse",
		Title: "II-C. Use of Alcohol or Drugs (Expanded)",
		Fields: []AssessmentField{
			{ID: "ageOfOnset", Label: "Age of onset", Script: "For each substance you've used, how old were you when you first tried it, started using regularly, and felt it became a problem?"},
			{ID: "patternsOfUse", Label: "Patterns of use (frequency, quantity, duration)", Script: "Can you describe how your use of [substance] has changed over time? How much? How often? How do you use it?"},
			{ID: "periodsOfAbstinence", Label: "Periods of abstinence", Script: "Have there been times when you've stopped using completely? How long did those periods last? What led you to start again?"},
			{ID: "consequences", Label: "Consequences of use", Script: "How has your use affected your physical health, mental health, relationships, work/school, finances, or led to legal problems?"},
			{ID: "withdrawalHistory", Label: "History of withdrawal symptoms", Script: "Have you ever experienced any withdrawal symptoms when you've tried to cut down or stop using?"},
			{ID: "withdrawalRisks", Label: "Potential withdrawal risks", Script: "(Clinician's assessment of potential withdrawal risks)"},
		},
	},
	{
		ID:    "treatmentHistory",
		Title: "II-D. Treatment History for Mental Illness and/or Substance Use (Expanded)",
		Fields: []AssessmentField{
			{ID: "typesReceived", Label: "Types of treatment received", Script: "Let's make a complete list of all the mental health and substance use treatment you've received (therapy, medication, hospitalizations, etc.)."},
			{ID: "providers", Label: "Providers", Script: "Can you tell me the names and contact information for all of your past and current providers?"},
			{ID: "helpfulUnhelpful", Label: "Helpful and unhelpful aspects of past treatment", Script: "Thinking back on your past treatment experiences, what did you find most helpful? What was unhelpful?"},
			{ID: "barriers", Label: "Barriers to successful treatment", Script: "What, if anything, has made it difficult for you to get the help you need or to stick with treatment in the past?"},
		},
	},
	{
		ID:    "medicalHistory",
		Title: "II-E. Medical History (Expanded)",
		Fields: []AssessmentField{
			{ID: "conditions", Label: "Current and past medical conditions", Script: "Let's go over your medical history in more detail. Can you tell me about any current or past medical conditions you've had?"},
			{ID: "medications", Label: "Medications", Script: "Can you give me a complete list of all the medications you're currently taking, including over-the-counter and herbal remedies?"},
			{ID: "allergies", Label: "Allergies", Script: "Do you have any allergies to medications, foods, or anything in the environment?"},
			{ID: "surgeries", Label: "Surgeries", Script: "Have you ever had any surgeries? If so, can you tell me when they were and what they were for?"},
			{ID: "hospitalizations", Label: "Hospitalizations", Script: "Have you ever been hospitalized for any reason, either medical or psychiatric?"},
			{ID: "pregnancy", Label: "History of pregnancy", Script: "(If applicable) Have you ever been pregnant? What were the outcomes?"},
			{ID: "familyHistory", Label: "Relevant family medical history", Script: "Does anyone in your family have a history of medical conditions that might be relevant?"},
		},
	},
	{
		ID:    "physicalExam",
		Title: "II-F. Physical Examination (Expanded)",
		Fields: []AssessmentField{
			{ID: "mse", Label: "Mental Status Exam (detailed observations)", Script: "Detailed observations of: Appearance, Behavior, Speech, Mood, Affect, Thought process, Thought content, Perception, Cognition, Insight, Judgment."},
			{ID: "referral", Label: "Referral for physical examination (if needed)", Script: "If indicated, refer the client to a physician for a physical examination and any necessary laboratory tests."},
		},
	},
	{
		ID:    "homeAtmosphere",
		Title: "II-G. Home Atmosphere",
		Fields: []AssessmentField{
			{ID: "livingSituation", Label: "Living situation", Script: "Can you describe your current living situation? What type of housing do you live in?"},
			{ID: "relationships", Label: "Quality of relationships with household members", Script: "Who lives with you? How would you describe your relationships with them?"},
			{ID: "safety", Label: "Safety and stability of the environment", Script: "Do you feel safe in your home? Are there any weapons, substances, or violence present?"},
			{ID: "stressors", Label: "Stressors in the home environment", Script: "What are some of the biggest stressors in your home environment (financial, conflicts, etc.)?"},
		},
	},
	{
		ID:    "educationHistory",
		Title: "II-H. Educational History",
		Fields: []AssessmentField{
			{ID: "level", Label: "Highest level of education completed", Script: "What is the highest level of school you have finished?"},
			{ID: "disabilities", Label: "Learning disabilities", Script: "Have you ever been diagnosed with a learning disability or had any difficulties with learning in school?"},
			{ID: "performance", Label: "Academic performance", Script: "How would you describe your grades, attendance, and behavior in school?"},
			{ID: "experiences", Label: "Significant experiences in school", Script: "What were some of your positive and negative experiences in school? Relationships with teachers/peers? Bullying?"},
		},
	},
	{
		ID:    "employmentHistory",
		Title: "II-I. Employment History",
		Fields: []AssessmentField{
			{ID: "status", Label: "Current employment status", Script: "Are you currently working, a student, retired, or something else?"},
			{ID: "jobTypes", Label: "Types of jobs held", Script: "Can you tell me about the different jobs you've had?"},
			{ID: "duration", Label: "Duration of employment", Script: "How long did you work at each job?"},
			{ID: "reasonsForLeaving", Label: "Reasons for leaving jobs", Script: "Why did you leave each of those jobs?"},
			{ID: "stressors", Label: "Work-related stressors", Script: "What are some of the biggest stressors you've experienced in your work?"},
		},
	},
	{
		ID:    "militaryHistory",
		Title: "II-J. Military History",
		Fields: []AssessmentField{
			{ID: "branch", Label: "Branch of service", Script: "What branch of the military were you in?"},
			{ID: "dates", Label: "Dates of service", Script: "When did you serve?"},
			{ID: "combat", Label: "Combat experience", Script: "Did you see combat?"},
			{ID: "trauma", Label: "Trauma experienced during service", Script: "Did you experience any traumatic events during your service?"},
			{ID: "discharge", Label: "Discharge status", Script: "What was your discharge status?"},
		},
	},
	{
		ID:    "legalInvolvement",
		Title: "II-K. Legal Involvement",
		Fields: []AssessmentField{
			{ID: "arrests", Label: "Arrests", Script: "Have you ever been arrested? If so, can you tell me about the circumstances?"},
			{ID: "convictions", Label: "Convictions", Script: "Have you ever been convicted of a crime?"},
			{ID: "incarcerations", Label: "Incarcerations", Script: "Have you ever been incarcerated? If so, when and for how long?"},
			{ID: "probation", Label: "Probation/parole", Script: "Are you currently on probation or parole? What are the conditions?"},
		},
	},
	{
		ID:    "financial",
		Title: "II-L. Financial and Social Services",
		Fields: []AssessmentField{
			{ID: "income", Label: "Income", Script: "What are your sources and amount of income?"},
			{ID: "expenses", Label: "Expenses", Script: "What are your major monthly expenses?"},
			{ID: "debts", Label: "Debts", Script: "Do you have any debts (credit card, student loans, medical bills)?"},
			{ID: "resources", Label: "Access to resources", Script: "Do you feel like you have enough money to meet your basic needs (food, housing, healthcare)?"},
			{ID: "socialServices", Label: "Involvement with social services", Script: "Are you currently receiving any assistance from social service agencies (welfare, food stamps, etc.)?"},
		},
	},
	{
		ID:    "familyHistoryMH",
		Title: "II-M. Family History of Mental Illness/Substance Use",
		Fields: []AssessmentField{
			{ID: "mhSuInFamily", Label: "Mental illness/substance use in family members", Script: "Does anyone in your family have a history of mental health or substance use problems?"},
			{ID: "diagnoses", Label: "Specific diagnoses", Script: "Do you know the specific diagnoses of any family members?"},
			{ID: "dynamics", Label: "Family Dynamics", Script: "How would you describe the way your family communicates and resolves conflicts?"},
		},
	},
	{
		ID:    "traumaHistory",
		Title: "II-N. History of Trauma",
		Fields: []AssessmentField{
			{ID: "types", Label: "Types of trauma experienced", Script: "(Use a sensitive, trauma-informed approach). Many people have experienced difficult events like abuse, neglect, witnessing violence, accidents, etc. Have you ever experienced anything like that?"},
			{ID: "impact", Label: "Impact of trauma on current functioning", Script: "How do you think these experiences have affected you (e.g., flashbacks, nightmares, avoidance, relationships)?"},
		},
	},
	{
		ID:    "assets",
		Title: "II-O. Client's Assets, Vulnerabilities, and Supports",
		Fields: []AssessmentField{
			{ID: "strengths", Label: "Strengths", Script: "What are some things you're proud of about yourself? What are you good at?"},
			{ID: "resources", Label: "Resources", Script: "Do you have stable housing, transportation, education, employment?"},
			{ID: "copingSkills", Label: "Coping skills", Script: "What are some things you do to cope with stress or difficult emotions (both healthy and unhealthy)?"},
			{ID: "socialSupports", Label: "Social supports", Script: "Who are the important people in your life? Who can you rely on for support?"},
			{ID: "vulnerabilities", Label: "Vulnerabilities/challenges", Script: "What are some of the current biggest challenges you face?"},
		},
	},
	{
		ID:    "summary",
		Title: "II-P. Clinical Impression and Summary",
		Fields: []AssessmentField{
			{ID: "keyFindings", Label: "Key findings", Script: "(Clinician's summary of the most important findings from the assessment)."},
			{ID: "dxConsiderations", Label: "Diagnostic considerations", Script: "(List applicable diagnoses with justification, rule-outs, and differential diagnosis)."},
			{ID: "treatmentNeeds", Label: "Potential treatment needs", Script: "(Recommended level of care, specific interventions, and referrals)."},
			{ID: "prognosis", Label: "Prognosis", Script: "(Clinician's assessment of prognosis)."},
		},
	},
}
