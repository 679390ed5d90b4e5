package export

import (
	"net/url"
	"regexp"
	"strings"

	"presubuild/internal/domain/entities"
)

const whatsAppBaseURL = "https://wa.me/"

var nonDigits = regexp.MustCompile(`\D`)

// RenderWhatsAppText is the short message shared with the client.
func RenderWhatsAppText(b entities.Budget, s entities.BusinessSettings) string {
	name := strings.TrimSpace(s.BusinessName)
	if name == "" {
		name = defaultBusinessName
	}
	lines := []string{
		"👷 *" + strings.ToUpper(name) + " - PresuBuild PRO*",
		"📋 *COTIZACIÓN DE OBRA*",
		"🏗️ *Proyecto:* " + strings.ToUpper(b.Client.Name),
		"📄 *Expediente:* " + b.ID,
		"💰 *TOTAL:* " + FormatMoney(s.CurrencySymbol, b.Total),
		"_Válido hasta el " + FormatDate(b.ValidUntil) + "._",
	}
	return strings.Join(lines, "\n")
}

// WhatsAppLink builds the click-to-chat URL for phone. Only the digits of
// the phone are kept; the text is percent-encoded.
func WhatsAppLink(phone, text string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return whatsAppBaseURL + nonDigits.ReplaceAllString(phone, "") + "?text=" + escaped
}
