// Package forms renders fill-in-the-blanks legal forms. Missing fields
// are printed as blanks with a concrete example hint so the form stays
// usable for people filling it in by hand.
package forms

import (
	"fmt"
	"strings"
	"time"
)

type field struct {
	Key   string
	Label string
}

type section struct {
	Name   string
	Fields []field
}

type template struct {
	Title    string
	Sections []section
}

var complainantDetails = section{
	Name: "Complainant Details",
	Fields: []field{
		{"name", "Full Name"},
		{"address", "Complete Address"},
		{"phone", "Phone Number"},
		{"email", "Email Address"},
		{"id_proof", "ID Proof Type and Number"},
	},
}

var templates = map[string]template{
	"FIR": {
		Title: "First Information Report",
		Sections: []section{
			complainantDetails,
			{
				Name: "Incident Details",
				Fields: []field{
					{"date_time", "Date and Time of Incident"},
					{"location", "Location of Incident"},
					{"description", "Detailed Description of Incident"},
					{"loss_damage", "Loss or Damage Suffered"},
				},
			},
			{
				Name: "Accused Details",
				Fields: []field{
					{"accused_name", "Name of Accused"},
					{"accused_address", "Address of Accused"},
					{"accused_description", "Description of Accused"},
				},
			},
			{
				Name: "Witness Details",
				Fields: []field{
					{"witness_names", "Names of Witnesses"},
					{"witness_addresses", "Addresses of Witnesses"},
					{"witness_phones", "Phone Numbers of Witnesses"},
				},
			},
			{
				Name: "Evidence Details",
				Fields: []field{
					{"documents", "Supporting Documents"},
					{"physical_evidence", "Physical Evidence"},
					{"digital_evidence", "Digital Evidence"},
				},
			},
		},
	},
	"RTI": {
		Title: "Right to Information Application",
		Sections: []section{
			{
				Name: "Applicant Details",
				Fields: []field{
					{"name", "Full Name"},
					{"address", "Complete Address"},
					{"phone", "Phone Number"},
					{"email", "Email Address"},
					{"citizenship", "Citizenship"},
				},
			},
			{
				Name: "Information Requested",
				Fields: []field{
					{"subject", "Subject of Information"},
					{"details", "Detailed Description of Information Required"},
					{"period", "Time Period for Information"},
					{"format", "Preferred Format of Information"},
				},
			},
			{
				Name: "Public Authority",
				Fields: []field{
					{"authority_name", "Name of Public Authority"},
					{"officer_name", "Name of Public Information Officer"},
					{"authority_address", "Address of Public Authority"},
				},
			},
			{
				Name: "Grounds for Request",
				Fields: []field{
					{"reason", "Reason for Requesting Information"},
					{"public_interest", "Public Interest Justification"},
				},
			},
		},
	},
	"COMPLAINT": {
		Title: "General Complaint Form",
		Sections: []section{
			complainantDetails,
			{
				Name: "Complaint Details",
				Fields: []field{
					{"subject", "Subject of Complaint"},
					{"description", "Detailed Description of Complaint"},
					{"date_occurred", "Date When Issue Occurred"},
					{"previous_actions", "Previous Actions Taken"},
				},
			},
			{
				Name: "Relief Sought",
				Fields: []field{
					{"compensation", "Compensation Sought"},
					{"action_required", "Action Required from Authority"},
					{"timeframe", "Expected Timeframe for Resolution"},
				},
			},
			{
				Name: "Supporting Documents",
				Fields: []field{
					{"documents", "List of Supporting Documents"},
					{"photographs", "Photographs (if any)"},
					{"correspondence", "Previous Correspondence"},
				},
			},
		},
	},
	"APPEAL": {
		Title: "Legal Appeal Application",
		Sections: []section{
			{
				Name: "Appellant Details",
				Fields: []field{
					{"name", "Full Name of Appellant"},
					{"address", "Complete Address"},
					{"phone", "Phone Number"},
					{"email", "Email Address"},
					{"representative", "Legal Representative (if any)"},
				},
			},
			{
				Name: "Original Order Details",
				Fields: []field{
					{"order_number", "Original Order Number"},
					{"order_date", "Date of Original Order"},
					{"issuing_authority", "Authority that Issued Order"},
					{"order_summary", "Summary of Original Order"},
				},
			},
			{
				Name: "Grounds for Appeal",
				Fields: []field{
					{"legal_grounds", "Legal Grounds for Appeal"},
					{"errors", "Errors in Original Order"},
					{"new_evidence", "New Evidence Available"},
				},
			},
			{
				Name: "Relief Sought",
				Fields: []field{
					{"compensation", "Compensation Sought"},
					{"action_required", "Action Required from Authority"},
					{"timeframe", "Expected Timeframe for Resolution"},
				},
			},
		},
	},
}

// fieldExamples guide users with low literacy when a field is left blank.
var fieldExamples = map[string]string{
	"name":                "e.g., Ramesh Kumar",
	"address":             "e.g., House No. 12, Ward 4, Jaipur, Rajasthan",
	"phone":               "e.g., 9876543210",
	"email":               "e.g., yourname@example.com",
	"id_proof":            "e.g., Aadhaar 1234-5678-9012",
	"date_time":           "e.g., 15 Aug 2025, 8:30 PM",
	"location":            "e.g., Near Bus Stand, Alwar",
	"description":         "e.g., Briefly describe what happened in simple words",
	"loss_damage":         "e.g., Broken phone, injury to hand",
	"witness_names":       "e.g., Sita Devi, Mohan Lal",
	"witness_addresses":   "e.g., Village Rampur, Tehsil Kotputli",
	"witness_phones":      "e.g., 9812345678, 9801234567",
	"documents":           "e.g., Bills, photos, FIR copy",
	"physical_evidence":   "e.g., Damaged item, clothes",
	"digital_evidence":    "e.g., WhatsApp chats, call recordings",
	"citizenship":         "e.g., Indian",
	"subject":             "e.g., Information about village road repair",
	"details":             "e.g., Copy of tender and progress reports",
	"period":              "e.g., Jan 2023 to Dec 2023",
	"format":              "e.g., Photocopy or PDF via email",
	"authority_name":      "e.g., Public Works Department, Jaipur",
	"officer_name":        "e.g., PIO Mr. Sharma",
	"reason":              "e.g., To ensure proper use of public money",
	"public_interest":     "e.g., Road is unsafe for villagers",
	"date_occurred":       "e.g., 10 July 2025",
	"previous_actions":    "e.g., Spoke to manager on 12 July 2025",
	"compensation":        "e.g., Refund of Rs. 1500",
	"action_required":     "e.g., Inspect shop and take action",
	"timeframe":           "e.g., Within 15 days",
	"photographs":         "e.g., Photo of the damaged road",
	"correspondence":      "e.g., Previous emails/letters to authority",
	"representative":      "e.g., Advocate Meena (optional)",
	"order_number":        "e.g., Order No. 123/2025",
	"order_date":          "e.g., 05 June 2025",
	"issuing_authority":   "e.g., SDM, Jaipur",
	"order_summary":       "e.g., Brief summary of the original order",
	"legal_grounds":       "e.g., Section 318 BNS not considered",
	"errors":              "e.g., Evidence was ignored",
	"new_evidence":        "e.g., New witness statement dated 01 Aug 2025",
	"accused_name":        "e.g., Name if known, else 'Unknown'",
	"accused_address":     "e.g., Address if known",
	"accused_description": "e.g., Physical description, vehicle number",
}

const lineWidth = 80

// Generate renders the named form with the supplied responses. Unknown
// form types are an error; everything else always renders.
func Generate(formType string, responses map[string]string, now time.Time) (string, error) {
	tmpl, ok := templates[strings.ToUpper(strings.TrimSpace(formType))]
	if !ok {
		return "", fmt.Errorf("unknown form type %q", formType)
	}

	var b strings.Builder
	rule := strings.Repeat("=", lineWidth)

	b.WriteString(rule + "\n")
	b.WriteString(center(tmpl.Title) + "\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Generated on: %s\n\n", now.Format("January 2, 2006 at 3:04 PM"))

	for _, sec := range tmpl.Sections {
		fmt.Fprintf(&b, "--- %s ---\n\n", sec.Name)
		for _, f := range sec.Fields {
			value := strings.TrimSpace(responses[f.Key])
			switch {
			case value != "":
				fmt.Fprintf(&b, "%s: %s\n\n", f.Label, value)
			case fieldExamples[f.Key] != "":
				fmt.Fprintf(&b, "%s: _________________ (%s)\n\n", f.Label, fieldExamples[f.Key])
			default:
				fmt.Fprintf(&b, "%s: _________________\n\n", f.Label)
			}
		}
	}

	b.WriteString("\n" + rule + "\n")
	b.WriteString("IMPORTANT NOTES:\n")
	b.WriteString("- This is a computer-generated form for reference purposes\n")
	b.WriteString("- Please verify all information before submission\n")
	b.WriteString("- Consult with a legal professional for final review\n")
	b.WriteString("- Keep copies of all supporting documents\n")
	b.WriteString(rule + "\n")

	return b.String(), nil
}

// Types lists the supported form types.
func Types() []string {
	return []string{"FIR", "RTI", "COMPLAINT", "APPEAL"}
}

// FieldsFor returns the section-grouped field keys for a form type, used
// by clients to build input screens.
func FieldsFor(formType string) map[string][]string {
	tmpl, ok := templates[strings.ToUpper(strings.TrimSpace(formType))]
	if !ok {
		return nil
	}
	out := make(map[string][]string, len(tmpl.Sections))
	for _, sec := range tmpl.Sections {
		keys := make([]string, 0, len(sec.Fields))
		for _, f := range sec.Fields {
			keys = append(keys, f.Key)
		}
		out[sec.Name] = keys
	}
	return out
}

func center(s string) string {
	if len(s) >= lineWidth {
		return s
	}
	pad := (lineWidth - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}
