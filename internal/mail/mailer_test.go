package mail

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSetsHeadersAndParts(t *testing.T) {
	gm := Build(Message{
		From:      "bookings@example.com",
		FromName:  "Cloudship Holidays",
		To:        "asha@example.com",
		Subject:   "Order Confirmation - #8c1a2b",
		Text:      "plain body",
		HTML:      "<p>html body</p>",
		MessageID: "<abc@example.com>",
		Attachments: []Attachment{
			{Filename: "invoice.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.3")},
		},
	})

	assert.Equal(t, []string{"Order Confirmation - #8c1a2b"}, gm.GetHeader("Subject"))
	assert.Equal(t, []string{"asha@example.com"}, gm.GetHeader("To"))
	assert.Equal(t, []string{"<abc@example.com>"}, gm.GetHeader("Message-ID"))

	var buf bytes.Buffer
	_, err := gm.WriteTo(&buf)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "plain body")
	assert.Contains(t, out, "text/html")
	assert.Contains(t, out, `filename="invoice.pdf"`)
}

func TestSendHonoursCancelledContext(t *testing.T) {
	m := NewSMTPMailer("127.0.0.1", 1, "", "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.Send(ctx, Message{}), context.Canceled)
}
