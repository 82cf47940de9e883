package templates

import "legalbrief-backend/models"

const (
	CivilRightsComplaintID = "civil-rights-complaint"
	MotionToDismissID      = "motion-to-dismiss"
	MotionToSuppressID     = "motion-to-suppress"
	CivilComplaintID       = "civil-complaint"
	MemorandumOfLawID      = "memorandum-of-law"
	AppellateBriefID       = "appellate-brief"
)

// DefaultRegistry builds the compiled-in template catalog
func DefaultRegistry() *Registry {
	return MustNewRegistry(DefaultTemplates()...)
}

// DefaultTemplates returns the compiled-in template definitions
func DefaultTemplates() []models.Template {
	return []models.Template{
		{
			ID:          CivilRightsComplaintID,
			Name:        "Civil Rights Complaint",
			Description: "Complaint for deprivation of constitutional rights under 42 U.S.C. § 1983.",
			CaseTypes:   []models.CaseType{models.CaseTypeCivilRights},
			Sections: []models.SectionDefinition{
				{Heading: "Caption", Required: true, Order: 1},
				{
					Heading:  "Introduction",
					Required: true,
					Order:    2,
					Content: "This is a civil rights action arising under the Constitution of the United States " +
						"and 42 U.S.C. § 1983. Plaintiff seeks redress for the deprivation, under color of state law, " +
						"of rights, privileges, and immunities secured by the Constitution and laws of the United States.",
					Citations: []string{"42 U.S.C. § 1983", "28 U.S.C. §§ 1331, 1343"},
				},
				{Heading: "Parties", Required: true, Order: 3},
				{Heading: "Factual Background", Required: true, Order: 4},
				{
					Heading:  "Claims for Relief",
					Required: true,
					Order:    5,
					Content: "COUNT I - Violation of Civil Rights (42 U.S.C. § 1983)\n\n" +
						"Plaintiff realleges and incorporates by reference each of the preceding paragraphs. " +
						"The conduct of Defendant described above deprived Plaintiff of rights secured by the " +
						"Fourth and Fourteenth Amendments to the United States Constitution.",
					Citations: []string{"Monell v. Department of Social Services, 436 U.S. 658 (1978)"},
				},
				{
					Heading:  "Prayer for Relief",
					Required: true,
					Order:    6,
					Content: "WHEREFORE, Plaintiff respectfully requests that this Court enter judgment in Plaintiff's favor " +
						"and award compensatory damages, punitive damages, reasonable attorney's fees and costs " +
						"pursuant to 42 U.S.C. § 1988, and such other relief as the Court deems just and proper.",
					Citations: []string{"42 U.S.C. § 1988"},
				},
			},
		},
		{
			ID:          MotionToDismissID,
			Name:        "Motion to Dismiss",
			Description: "Motion to dismiss for failure to state a claim or lack of jurisdiction.",
			CaseTypes:   []models.CaseType{models.CaseTypeCivil, models.CaseTypeCivilRights, models.CaseTypeCriminal, models.CaseTypeEmployment},
			Sections: []models.SectionDefinition{
				{Heading: "Caption", Required: true, Order: 1},
				{
					Heading:  "Introduction",
					Required: true,
					Order:    2,
					Content: "The moving party respectfully submits this memorandum in support of its motion to dismiss. " +
						"For the reasons set forth below, the motion should be granted.",
				},
				{Heading: "Statement of Facts", Required: true, Order: 3},
				{
					Heading:  "Legal Standard",
					Required: true,
					Order:    4,
					Content: "To survive a motion to dismiss, a complaint must contain sufficient factual matter, " +
						"accepted as true, to state a claim to relief that is plausible on its face.",
					Citations: []string{
						"Ashcroft v. Iqbal, 556 U.S. 662, 678 (2009)",
						"Bell Atlantic Corp. v. Twombly, 550 U.S. 544, 570 (2007)",
					},
				},
				{Heading: "Argument", Required: true, Order: 5},
				{
					Heading:  "Conclusion",
					Required: true,
					Order:    6,
					Content:  "For the foregoing reasons, the motion to dismiss should be granted.",
				},
			},
		},
		{
			ID:          MotionToSuppressID,
			Name:        "Motion to Suppress Evidence",
			Description: "Motion to suppress evidence obtained in violation of the Fourth Amendment.",
			CaseTypes:   []models.CaseType{models.CaseTypeCriminal},
			Sections: []models.SectionDefinition{
				{Heading: "Caption", Required: true, Order: 1},
				{Heading: "Parties", Required: false, Order: 2},
				{Heading: "Statement of Facts", Required: true, Order: 3},
				{
					Heading:  "Argument",
					Required: true,
					Order:    4,
					Content: "The evidence at issue was obtained through a search and seizure that violated the " +
						"Fourth Amendment. Evidence derived from an unlawful search must be excluded.",
					Citations: []string{
						"Mapp v. Ohio, 367 U.S. 643 (1961)",
						"Wong Sun v. United States, 371 U.S. 471 (1963)",
					},
				},
				{
					Heading:  "Conclusion",
					Required: true,
					Order:    5,
					Content:  "Defendant respectfully requests that the Court suppress all evidence obtained as a result of the unlawful search.",
				},
			},
		},
		{
			ID:          CivilComplaintID,
			Name:        "Civil Complaint",
			Description: "General civil complaint for damages.",
			CaseTypes: []models.CaseType{
				models.CaseTypeCivil,
				models.CaseTypeEmployment,
				models.CaseTypePersonalInjury,
			},
			Sections: []models.SectionDefinition{
				{Heading: "Caption", Required: true, Order: 1},
				{Heading: "Parties", Required: true, Order: 2},
				{
					Heading:   "Jurisdiction and Venue",
					Required:  true,
					Order:     3,
					Content:   "This Court has jurisdiction over the subject matter of this action, and venue is proper in this district.",
					Citations: []string{"28 U.S.C. § 1332", "28 U.S.C. § 1391"},
				},
				{Heading: "Factual Allegations", Required: true, Order: 4},
				{Heading: "Causes of Action", Required: true, Order: 5},
				{
					Heading:  "Prayer for Relief",
					Required: true,
					Order:    6,
					Content:  "WHEREFORE, Plaintiff demands judgment against Defendant for damages, costs, and such further relief as the Court deems just.",
				},
			},
		},
		{
			ID:          MemorandumOfLawID,
			Name:        "Memorandum of Law",
			Description: "Memorandum of points and authorities in support of a motion.",
			CaseTypes:   []models.CaseType{models.CaseTypeAll},
			Sections: []models.SectionDefinition{
				{Heading: "Caption", Required: true, Order: 10},
				{Heading: "Preliminary Statement", Required: false, Order: 20},
				{Heading: "Statement of Facts", Required: true, Order: 30},
				{Heading: "Argument", Required: true, Order: 40},
				{
					Heading:  "Conclusion",
					Required: true,
					Order:    50,
					Content:  "For the reasons stated above, the Court should grant the relief requested.",
				},
			},
		},
		{
			ID:          AppellateBriefID,
			Name:        "Appellate Brief",
			Description: "Opening brief on appeal.",
			CaseTypes:   []models.CaseType{models.CaseTypeAll},
			Sections: []models.SectionDefinition{
				{Heading: "Caption", Required: true, Order: 1},
				{Heading: "Statement of the Issues", Required: true, Order: 2},
				{Heading: "Statement of the Case", Required: true, Order: 3},
				{Heading: "Statement of Facts", Required: true, Order: 4},
				{Heading: "Summary of Argument", Required: true, Order: 5},
				{
					Heading:  "Standard of Review",
					Required: true,
					Order:    6,
					Content:  "Questions of law are reviewed de novo.",
				},
				{Heading: "Argument", Required: true, Order: 7},
				{
					Heading:  "Conclusion",
					Required: true,
					Order:    8,
					Content:  "The judgment below should be reversed.",
				},
			},
		},
	}
}
