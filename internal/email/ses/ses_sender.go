// Package ses sends invoice documents through AWS SESv2. The PDF is
// attached to a multipart MIME message built by hand because the SESv2
// simple content type has no attachment support.
package ses

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"net/textproto"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"novabill/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	return &sesSender{
		client:      sesv2.NewFromConfig(cfg),
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendInvoice(ctx context.Context, toEmail, toName, invoiceNumber string, pdf []byte) error {
	raw, err := buildRawMessage(
		fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress),
		toEmail,
		fmt.Sprintf("Invoice %s from %s", invoiceNumber, s.fromName),
		fmt.Sprintf("Hi %s,\n\nPlease find invoice %s attached.\n\n%s", toName, invoiceNumber, s.fromName),
		invoiceNumber+".pdf",
		pdf,
	)
	if err != nil {
		return fmt.Errorf("building invoice email: %w", err)
	}

	_, err = s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		Content: &types.EmailContent{
			Raw: &types.RawMessage{Data: raw},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

// buildRawMessage assembles an RFC 5322 message with a text body and a
// single PDF attachment.
func buildRawMessage(from, to, subject, body, filename string, pdf []byte) ([]byte, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", mw.Boundary())

	textPart, err := mw.CreatePart(textproto.MIMEHeader{
		"Content-Type": {`text/plain; charset="utf-8"`},
	})
	if err != nil {
		return nil, err
	}
	if _, err := textPart.Write([]byte(body)); err != nil {
		return nil, err
	}

	pdfPart, err := mw.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {"application/pdf"},
		"Content-Transfer-Encoding": {"base64"},
		"Content-Disposition":       {fmt.Sprintf("attachment; filename=%q", filename)},
	})
	if err != nil {
		return nil, err
	}
	encoded := make([]byte, base64.StdEncoding.EncodedLen(len(pdf)))
	base64.StdEncoding.Encode(encoded, pdf)
	if _, err := pdfPart.Write(encoded); err != nil {
		return nil, err
	}

	if err := mw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
