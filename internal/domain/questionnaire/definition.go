package questionnaire

const (
	SectionGeneralEligibility     = "general_eligibility"
	SectionPhysicalCapability     = "physical_capability"
	SectionMedicalQualifications  = "medical_qualifications"
	SectionSecurityLawEnforcement = "security_law_enforcement"
	SectionCanineOutdoor          = "canine_outdoor"
	SectionAdministrativeOffice   = "administrative_office"
	SectionFoodService            = "food_service"
	SectionCleaningMaintenance    = "cleaning_maintenance"
	SectionTransportLogistics     = "transport_logistics"
	SectionEmergencyResponse      = "emergency_response"
	SectionSoftSkills             = "soft_skills"
	SectionJobPreferences         = "job_preferences"
	SectionShiftPreferences       = "shift_preferences"
	SectionTrainingWillingness    = "training_willingness"
)

// Question ids referenced by scoring rules.
const (
	QuestionLegalRightToWork     = "legal_right_to_work"
	QuestionBackgroundCheck      = "background_check"
	QuestionCriminalOffense      = "criminal_offense"
	QuestionSecureEnvironment    = "secure_environment"
	QuestionSecurityExperience   = "security_experience"
	QuestionMedicalQualification = "medical_qualification"
	QuestionJobInterests         = "job_interests"
)

var defaultQuestionnaire = MustNew(defaultSections())

// Default returns the process-wide questionnaire.
func Default() *Questionnaire {
	return defaultQuestionnaire
}

func yesNo(id, text string) Question {
	return Question{ID: id, Text: text, Kind: KindBoolean, Required: true}
}

func defaultSections() []Section {
	return []Section{
		{
			ID:          SectionGeneralEligibility,
			Title:       "General Eligibility",
			Description: "Basic eligibility questions for all positions",
			Questions: []Question{
				yesNo(QuestionLegalRightToWork, "Do you have the legal right to work in this country?"),
				yesNo(QuestionBackgroundCheck, "Are you willing to undergo a background check?"),
				yesNo(QuestionCriminalOffense, "Have you ever been convicted of a criminal offense?"),
				yesNo(QuestionSecureEnvironment, "Are you comfortable working in a secure or controlled environment?"),
				yesNo("drivers_license", "Do you have a valid driver's license?"),
			},
		},
		{
			ID:          SectionPhysicalCapability,
			Title:       "Physical & Medical Capability",
			Description: "Questions about your physical capabilities",
			Questions: []Question{
				yesNo("physically_demanding", "Can you perform physically demanding tasks (running, lifting, agility)?"),
				yesNo("lift_heavy", "Can you lift and carry heavy objects?"),
				yesNo("stand_long_periods", "Can you stand for long periods of time?"),
				yesNo("distressing_environments", "Are you comfortable in distressing environments (e.g., hospitals, prisons)?"),
			},
			AppliesTo: []string{"Security", "Medical", "Maintenance", "Custodial", "Logistics"},
		},
		{
			ID:          SectionMedicalQualifications,
			Title:       "Medical & Healthcare Qualifications",
			Description: "Questions about your medical training and experience",
			Questions: []Question{
				yesNo(QuestionMedicalQualification, "Do you have a medical qualification (e.g., doctor, nurse)?"),
				yesNo("first_aid", "Do you have first aid or emergency medical training?"),
				yesNo("patient_care", "Are you comfortable with bodily fluids or patient care?"),
				yesNo("transport_patients", "Are you willing to help transport patients?"),
			},
			AppliesTo: []string{"Medical", "Emergency Response"},
		},
		{
			ID:          SectionSecurityLawEnforcement,
			Title:       "Security & Law Enforcement",
			Description: "Questions about your security and law enforcement background",
			Questions: []Question{
				yesNo(QuestionSecurityExperience, "Do you have law enforcement, military, or security experience?"),
				yesNo("work_with_offenders", "Are you willing to work with offenders?"),
				yesNo("high_stress", "Can you remain calm in high-stress situations?"),
				yesNo("de_escalation", "Do you have training in de-escalation, self-defense, or physical intervention?"),
				yesNo("conducting_searches", "Are you comfortable conducting searches?"),
				yesNo("writing_reports", "Do you have experience writing incident/security reports?"),
			},
			AppliesTo: []string{"Security", "Crisis Response", "Canine"},
		},
		{
			ID:          SectionCanineOutdoor,
			Title:       "Canine & Outdoor Work",
			Description: "Questions about working with dogs and outdoors",
			Questions: []Question{
				yesNo("dog_handling", "Do you have a dog handling license or experience?"),
				yesNo("working_outdoors", "Are you comfortable working outdoors?"),
				yesNo("security_searches_dogs", "Are you willing to participate in security searches with dogs?"),
			},
			AppliesTo: []string{"Canine"},
		},
		{
			ID:          SectionAdministrativeOffice,
			Title:       "Administrative & Office Work",
			Description: "Questions about your administrative and office skills",
			Questions: []Question{
				yesNo("it_proficiency", "Do you have basic IT proficiency?"),
				yesNo("confidential_data", "Are you experienced in handling confidential data?"),
				yesNo("hr_payroll_finance", "Have you worked in HR, payroll, or finance?"),
				yesNo("staff_management", "Do you have scheduling/staff management experience?"),
				yesNo("record_keeping", "Do you have record-keeping or data entry experience?"),
			},
			AppliesTo: []string{"Administration", "Office", "HR"},
		},
		{
			ID:          SectionFoodService,
			Title:       "Food Service & Catering",
			Description: "Questions about your food service and catering experience",
			Questions: []Question{
				yesNo("food_hygiene", "Do you have kitchen experience and a food hygiene certificate?"),
				yesNo("large_scale_cooking", "Are you comfortable cooking in large-scale environments?"),
				yesNo("prep_serving_cleaning", "Are you willing to assist in prep, serving, and cleaning?"),
			},
			AppliesTo: []string{"Food Service"},
		},
		{
			ID:          SectionCleaningMaintenance,
			Title:       "Cleaning & Maintenance",
			Description: "Questions about your cleaning and maintenance experience",
			Questions: []Question{
				yesNo("janitorial_experience", "Do you have janitorial experience with cleaning chemicals?"),
				yesNo("high_risk_cleaning", "Are you comfortable cleaning high-risk areas?"),
				yesNo("waste_handling", "Are you okay with handling waste (hazardous or medical)?"),
				yesNo("repair_skills", "Do you have plumbing, electrical, or repair skills?"),
			},
			AppliesTo: []string{"Maintenance", "Custodial", "Facilities"},
		},
		{
			ID:          SectionTransportLogistics,
			Title:       "Transport & Logistics",
			Description: "Questions about your transportation and logistics experience",
			Questions: []Question{
				yesNo("commercial_license", "Do you have a commercial driver's license?"),
				yesNo("security_healthcare_driving", "Do you have experience driving for security or healthcare?"),
				yesNo("logistics_warehousing", "Have you worked in logistics or warehousing?"),
				yesNo("forklift_warehouse", "Can you operate forklifts or warehouse equipment?"),
				yesNo("inventory_management", "Do you have experience managing inventory?"),
			},
			AppliesTo: []string{"Logistics", "Warehouse"},
		},
		{
			ID:          SectionEmergencyResponse,
			Title:       "Emergency & Crisis Response",
			Description: "Questions about your emergency and crisis response experience",
			Questions: []Question{
				yesNo("paramedic_training", "Are you trained as a paramedic or emergency responder?"),
				yesNo("cpr_certified", "Are you CPR/emergency care certified?"),
				yesNo("fire_safety", "Do you have fire safety or evacuation training?"),
				yesNo("emergency_comfort", "Are you comfortable with violent/medical/fire emergencies?"),
			},
			AppliesTo: []string{"Emergency Response", "Fire Safety", "Crisis Response"},
		},
		{
			ID:          SectionSoftSkills,
			Title:       "Soft Skills & Work Style",
			Description: "Questions about your work preferences and style",
			Questions: []Question{
				{
					ID:       "team_independent",
					Text:     "Do you prefer working in a team or independently?",
					Kind:     KindSelect,
					Options:  []string{"Team", "Independently", "No preference"},
					Required: true,
				},
				yesNo("follow_protocols", "Are you comfortable following strict protocols and procedures?"),
				yesNo("adapt_unexpected", "Can you adapt to unexpected situations and think on your feet?"),
			},
			AppliesTo: []string{"All"},
		},
		{
			ID:          SectionJobPreferences,
			Title:       "Job Type Preferences",
			Description: "Select the types of work you are interested in",
			Questions: []Question{
				{
					ID:   QuestionJobInterests,
					Text: "Which types of work are you interested in?",
					Kind: KindMultiSelect,
					Options: []string{
						"Medical / Healthcare",
						"Security / Law Enforcement",
						"Cleaning / Maintenance",
						"Office / Administrative",
						"Food Service",
						"Logistics / Transport",
						"Rehabilitation / Social Support",
						"Emergency / Crisis Response",
					},
					Required: true,
				},
			},
		},
		{
			ID:          SectionShiftPreferences,
			Title:       "Shift Preferences",
			Description: "Select your preferred working hours",
			Questions: []Question{
				{
					ID:   "preferred_shifts",
					Text: "Which shifts are you available to work?",
					Kind: KindMultiSelect,
					Options: []string{
						"Standard hours (Mon-Fri, 9am–5pm)",
						"Standard hours with weekend availability",
						"Evening shifts (5pm–12am)",
						"Night shifts (12am–8am)",
						"Rotating shifts (all shifts)",
					},
					Required: true,
				},
			},
		},
		{
			ID:          SectionTrainingWillingness,
			Title:       "Training Willingness",
			Description: "Questions about your willingness to undertake training",
			Questions: []Question{
				yesNo("additional_training", "Are you willing to undertake additional training for a role (e.g., first aid, food hygiene, security protocols)?"),
				yesNo("career_development", "Are you interested in long-term career development within the prison system?"),
			},
		},
	}
}
