package domain

// RoleSchema maps a role onto the tables and columns that back it. The four
// roles run the same workflows over differently-shaped tables, so every query
// in the repository is composed from one of these instead of being written
// four times.
type RoleSchema struct {
	Role Role

	// Noun is the human word used in response messages ("Student not found").
	Noun string

	// PluralPath is the path segment of the roster route
	// (GET /superadmin-get-all-<PluralPath>).
	PluralPath string

	// From is the FROM clause including joins. Where is the role predicate
	// appended to every query; empty when the table holds a single role.
	From  string
	Where string

	// Column expressions, relative to the aliases used in From. BirthExpr is
	// empty for roles whose tables do not record a birth date.
	IdentExpr  string
	EmailExpr  string
	StatusExpr string
	BirthExpr  string
	FirstExpr  string
	MiddleExpr string
	LastExpr   string

	NameOrder NameOrder

	// MatchExprs are the expressions a fuzzy search term is substring-matched
	// against, case-insensitively.
	MatchExprs []string

	// OrderBy is the roster ordering, by the role's natural identifier or
	// first name.
	OrderBy string

	// ResetByEmail selects how a credential reset resolves its target:
	// true means the request carries an exact email, false means it carries
	// a fuzzy search term resolved with the lookup match policy.
	ResetByEmail bool

	// Write targets. Status and credential updates key on the exact email;
	// StatusWhere/CredWhere carry the full predicate with $2 as the email.
	StatusTable string
	StatusWhere string
	CredTable   string
	CredWhere   string
}

var roleSchemas = map[Role]*RoleSchema{
	RoleApplicant: {
		Role:       RoleApplicant,
		Noun:       "Applicant",
		PluralPath: "applicants",
		From: `FROM user_accounts ua
		JOIN person_table pt ON ua.person_id = pt.person_id
		LEFT JOIN applicant_numbering_table ant ON ant.person_id = pt.person_id`,
		Where:      `ua.role = 'applicant'`,
		IdentExpr:  "ant.applicant_number",
		EmailExpr:  "ua.email",
		StatusExpr: "ua.status",
		BirthExpr:  "pt.birth_date",
		FirstExpr:  "pt.first_name",
		MiddleExpr: "pt.middle_name",
		LastExpr:   "pt.last_name",
		NameOrder:  NameLastFirstMiddle,
		MatchExprs: []string{
			"pt.first_name", "pt.middle_name", "pt.last_name",
			"ua.email", "ant.applicant_number",
		},
		OrderBy:      "ant.applicant_number ASC",
		ResetByEmail: true,
		StatusTable:  "user_accounts",
		StatusWhere:  "email = $2 AND role = 'applicant'",
		CredTable:    "user_accounts",
		CredWhere:    "email = $2 AND role = 'applicant'",
	},
	RoleStudent: {
		Role:       RoleStudent,
		Noun:       "Student",
		PluralPath: "students",
		From: `FROM user_accounts ua
		JOIN person_table pt ON ua.person_id = pt.person_id
		LEFT JOIN student_numbering_table sn ON sn.person_id = pt.person_id`,
		Where:      `ua.role = 'student'`,
		IdentExpr:  "sn.student_number",
		EmailExpr:  "ua.email",
		StatusExpr: "ua.status",
		BirthExpr:  "pt.birth_date",
		FirstExpr:  "pt.first_name",
		MiddleExpr: "pt.middle_name",
		LastExpr:   "pt.last_name",
		NameOrder:  NameFirstMiddleLast,
		MatchExprs: []string{
			"sn.student_number", "ua.email",
			"pt.first_name", "pt.middle_name", "pt.last_name",
			"pt.first_name || ' ' || pt.last_name",
			"pt.last_name || ' ' || pt.first_name",
		},
		OrderBy:      "sn.student_number ASC",
		ResetByEmail: false,
		StatusTable:  "user_accounts",
		StatusWhere:  "email = $2 AND role = 'student'",
		CredTable:    "user_accounts",
		CredWhere:    "email = $2 AND role = 'student'",
	},
	RoleFaculty: {
		Role:       RoleFaculty,
		Noun:       "Faculty member",
		PluralPath: "faculty",
		From:       `FROM prof_table pr`,
		IdentExpr:  "pr.employee_id",
		EmailExpr:  "pr.email",
		StatusExpr: "pr.status",
		FirstExpr:  "pr.fname",
		MiddleExpr: "pr.mname",
		LastExpr:   "pr.lname",
		NameOrder:  NameFirstMiddleLast,
		MatchExprs: []string{
			"pr.employee_id", "pr.fname", "pr.mname", "pr.lname", "pr.email",
		},
		OrderBy:      "pr.fname ASC",
		ResetByEmail: true,
		StatusTable:  "prof_table",
		StatusWhere:  "email = $2",
		CredTable:    "prof_table",
		CredWhere:    "email = $2",
	},
	RoleRegistrar: {
		Role:       RoleRegistrar,
		Noun:       "Registrar",
		PluralPath: "registrars",
		From:       `FROM user_accounts ua`,
		Where:      `ua.role = 'registrar'`,
		IdentExpr:  "ua.employee_id",
		EmailExpr:  "ua.email",
		StatusExpr: "ua.status",
		FirstExpr:  "ua.first_name",
		MiddleExpr: "ua.middle_name",
		LastExpr:   "ua.last_name",
		NameOrder:  NameFirstMiddleLast,
		MatchExprs: []string{
			"ua.employee_id", "ua.first_name", "ua.middle_name",
			"ua.last_name", "ua.email",
		},
		OrderBy:      "ua.first_name ASC",
		ResetByEmail: true,
		StatusTable:  "user_accounts",
		StatusWhere:  "email = $2 AND role = 'registrar'",
		CredTable:    "user_accounts",
		CredWhere:    "email = $2 AND role = 'registrar'",
	},
}

// RoleSchemas returns the four role mappings in a stable order.
func RoleSchemas() []*RoleSchema {
	return []*RoleSchema{
		roleSchemas[RoleApplicant],
		roleSchemas[RoleStudent],
		roleSchemas[RoleFaculty],
		roleSchemas[RoleRegistrar],
	}
}

func SchemaFor(role Role) (*RoleSchema, bool) {
	rs, ok := roleSchemas[role]
	return rs, ok
}
