package email

// Message is a fully rendered email, ready to hand to the SMTP client.
// Templates in this package produce these; services never build them by hand.
type Message struct {
	To      []string
	CC      []string
	BCC     []string
	Subject string

	// TextBody is always set by our templates. HTMLBody is optional; when
	// both are present the message goes out as multipart/alternative.
	TextBody string
	HTMLBody string

	Headers map[string]string
}
