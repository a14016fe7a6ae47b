package mailer

type sendMailRequest struct {
	Recipients []string `json:"recipients"`
	Subject    string   `json:"subject"`
	Message    string   `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}
