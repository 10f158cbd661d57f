package mailer

import (
	"context"
	"fmt"
)

// Notifier delivers a plain text message to an email address. Sends are
// fallible I/O and are never retried by callers; user-initiated resend is the
// only retry path.
type Notifier interface {
	Send(ctx context.Context, to, subject, text string) error
}

// OTPMessage builds the subject and body for an OTP delivery.
func OTPMessage(code string, resend bool) (subject, text string) {
	if resend {
		return "Your New Note App OTP",
			fmt.Sprintf("Your new One-Time Password is: %s", code)
	}
	return "Your OTP for Note App",
		fmt.Sprintf("Welcome to Note App! Your One-Time Password is: %s", code)
}

// LoginNotificationMessage builds the email sent asynchronously after every
// successful sign-in.
func LoginNotificationMessage(name string) (subject, text string) {
	return "New login to your Note App account",
		fmt.Sprintf("Hi %s, there was a new login to your Note App account. If this wasn't you, please contact support.", name)
}
