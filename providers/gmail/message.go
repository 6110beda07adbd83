package gmail

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// message mirrors the Gmail API message resource.
type message struct {
	ID           string   `json:"id"`
	ThreadID     string   `json:"threadId"`
	LabelIDs     []string `json:"labelIds"`
	Snippet      string   `json:"snippet"`
	HistoryID    string   `json:"historyId"`
	InternalDate string   `json:"internalDate"`
	Payload      *part    `json:"payload"`
}

// part is a node in the MIME tree of a message payload.
type part struct {
	MimeType string   `json:"mimeType"`
	Filename string   `json:"filename"`
	Headers  []header `json:"headers"`
	Body     partBody `json:"body"`
	Parts    []*part  `json:"parts"`
}

type header struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type partBody struct {
	AttachmentID string `json:"attachmentId"`
	Size         int    `json:"size"`
	Data         string `json:"data"`
}

// Attachment describes an attachment without its content.
type Attachment struct {
	Filename     string `json:"filename"`
	MimeType     string `json:"mimeType"`
	AttachmentID string `json:"attachmentId"`
	Size         int    `json:"size"`
}

// ParsedMessage is the flattened message shape returned to the
// assistant: common headers pulled up, text/plain content concatenated,
// and attachments inventoried by ID.
type ParsedMessage struct {
	ID           string       `json:"id"`
	ThreadID     string       `json:"threadId"`
	LabelIDs     []string     `json:"labelIds"`
	Snippet      string       `json:"snippet"`
	HistoryID    string       `json:"historyId"`
	InternalDate string       `json:"internalDate"`
	From         string       `json:"from"`
	To           string       `json:"to"`
	Subject      string       `json:"subject"`
	Cc           string       `json:"cc"`
	Bcc          string       `json:"bcc"`
	Date         string       `json:"date"`
	Content      string       `json:"content"`
	Attachments  []Attachment `json:"attachments"`
}

// parseMessage flattens a Gmail message into a ParsedMessage.
func parseMessage(m *message) ParsedMessage {
	parsed := ParsedMessage{
		ID:           m.ID,
		ThreadID:     m.ThreadID,
		LabelIDs:     m.LabelIDs,
		Snippet:      m.Snippet,
		HistoryID:    m.HistoryID,
		InternalDate: m.InternalDate,
		Attachments:  []Attachment{},
	}
	if m.Payload == nil {
		return parsed
	}

	headers := make(map[string]string, len(m.Payload.Headers))
	for _, h := range m.Payload.Headers {
		headers[strings.ToLower(h.Name)] = h.Value
	}
	parsed.From = headers["from"]
	parsed.To = headers["to"]
	parsed.Subject = headers["subject"]
	parsed.Cc = headers["cc"]
	parsed.Bcc = headers["bcc"]
	parsed.Date = headers["date"]

	// A single-part message carries its content on the payload itself.
	parts := m.Payload.Parts
	if len(parts) == 0 {
		parts = []*part{m.Payload}
	}

	for _, p := range parts {
		collectPart(p, &parsed)
	}
	return parsed
}

// collectPart walks a MIME subtree accumulating text/plain content and
// attachments.
func collectPart(p *part, parsed *ParsedMessage) {
	if p.Body.AttachmentID != "" {
		parsed.Attachments = append(parsed.Attachments, Attachment{
			Filename:     p.Filename,
			MimeType:     p.MimeType,
			AttachmentID: p.Body.AttachmentID,
			Size:         p.Body.Size,
		})
		return
	}

	if p.Body.Data != "" && strings.HasPrefix(p.MimeType, "text/plain") {
		if data, err := base64.URLEncoding.WithPadding(base64.NoPadding).DecodeString(strings.TrimRight(p.Body.Data, "=")); err == nil {
			parsed.Content += string(data)
		}
		return
	}

	for _, child := range p.Parts {
		collectPart(child, parsed)
	}
}

// buildRaw assembles an RFC 2822 message and encodes it for the Gmail
// API's raw field.
func buildRaw(to, subject, body, cc, bcc string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "To: %s\r\n", to)
	if cc != "" {
		fmt.Fprintf(&b, "Cc: %s\r\n", cc)
	}
	if bcc != "" {
		fmt.Fprintf(&b, "Bcc: %s\r\n", bcc)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)

	return base64.URLEncoding.EncodeToString([]byte(b.String()))
}
