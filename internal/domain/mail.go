package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

const MailTypeTempPassword = "temp_password"

type TempPasswordMailData struct {
	Password  string `json:"password"`
	ShortTerm string `json:"shortTerm"`
}
