// Package sms handles the SMS provider surface: parsing Twilio
// webhooks, rendering TwiML replies, and sending outbound messages.
package sms

import (
	"encoding/xml"
	"fmt"
)

// twimlResponse is the reply document Twilio turns back into an SMS.
type twimlResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

// RenderTwiML renders a message reply as a TwiML document. The body is
// XML-escaped, so farmer text with & or < is safe to echo.
func RenderTwiML(message string) (string, error) {
	body, err := xml.MarshalIndent(twimlResponse{Message: message}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("rendering twiml: %w", err)
	}
	return xml.Header + string(body), nil
}
