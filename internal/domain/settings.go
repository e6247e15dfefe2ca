package domain

// InstitutionSettings is the singleton branding record read when composing
// outgoing mail. Nothing in this service writes it.
type InstitutionSettings struct {
	ShortTerm string `json:"shortTerm"`
}

// DefaultShortTerm is substituted when the settings row is absent or blank.
const DefaultShortTerm = "Institution"
