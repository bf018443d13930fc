package bot

import (
	"regexp"
	"strings"
)

// DefaultStartKeywords mirror the storefront's greeting/menu triggers.
var DefaultStartKeywords = []string{
	"oi", "olá", "ola", "menu", "pedido", "cardápio", "cardapio",
}

// Stage reply patterns. Matching is substring based on the lowercased
// message, not token-strict.
var (
	pickupPattern   = regexp.MustCompile(`retirada`)
	deliveryPattern = regexp.MustCompile(`entrega`)
	pixPattern      = regexp.MustCompile(`pix`)
	cardPattern     = regexp.MustCompile(`cart[aã]o`)
	cashPattern     = regexp.MustCompile(`esp[eé]cie`)
)

// Classifier decides whether an inbound text opens a new order.
type Classifier struct {
	start *regexp.Regexp
}

func NewClassifier(keywords []string) *Classifier {
	if len(keywords) == 0 {
		keywords = DefaultStartKeywords
	}

	parts := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		parts = append(parts, regexp.QuoteMeta(k))
	}
	if len(parts) == 0 {
		for _, k := range DefaultStartKeywords {
			parts = append(parts, regexp.QuoteMeta(k))
		}
	}

	return &Classifier{
		start: regexp.MustCompile("(" + strings.Join(parts, "|") + ")"),
	}
}

func (c *Classifier) IsStartTrigger(text string) bool {
	return c.start.MatchString(strings.ToLower(text))
}

// ParseFulfillment interprets a reply at the pickup-or-delivery stage.
func ParseFulfillment(text string) (Fulfillment, bool) {
	lower := strings.ToLower(text)
	switch {
	case pickupPattern.MatchString(lower):
		return FulfillmentPickup, true
	case deliveryPattern.MatchString(lower):
		return FulfillmentDelivery, true
	}
	return "", false
}

// ParsePayment interprets a reply at the payment stage.
func ParsePayment(text string) (Payment, bool) {
	lower := strings.ToLower(text)
	switch {
	case pixPattern.MatchString(lower):
		return PaymentPix, true
	case cardPattern.MatchString(lower):
		return PaymentCard, true
	case cashPattern.MatchString(lower):
		return PaymentCash, true
	}
	return "", false
}
