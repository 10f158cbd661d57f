package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for asynchronous
// sending. Only non-critical mail (login notifications) goes through the
// queue; OTP delivery is synchronous so registration can report send
// failures.
type EmailJob struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}
