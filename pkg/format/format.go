// Package format holds the display helpers shared by Jaguar Express
// UIs: Colombian peso amounts, phone numbers, delivery times and the
// Spanish display names of the domain enumerations.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fred1edm/jaguarexpress/internal/core/domain"
)

// Currency renders an amount as Colombian pesos, no decimals, dot
// thousand separators: 1250000 → "$ 1.250.000".
func Currency(amount decimal.Decimal) string {
	val := amount.Round(0)
	neg := val.IsNegative()
	digits := val.Abs().String()

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	if neg {
		return "-$ " + b.String()
	}
	return "$ " + b.String()
}

// Phone renders a Colombian phone number with spacing, keeping the +57
// prefix when present: "573001234567" → "+57 300 123 4567".
func Phone(phone string) string {
	var cleaned strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			cleaned.WriteRune(r)
		}
	}
	digits := cleaned.String()

	if strings.HasPrefix(digits, "57") && len(digits) == 12 {
		n := digits[2:]
		return fmt.Sprintf("+57 %s %s %s", n[:3], n[3:6], n[6:])
	}
	if len(digits) == 10 {
		return fmt.Sprintf("%s %s %s", digits[:3], digits[3:6], digits[6:])
	}
	return phone
}

// DeliveryTime renders an estimated delivery duration in minutes:
// 45 → "45 min", 90 → "1h 30min", 120 → "2 horas".
func DeliveryTime(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}

	hours := minutes / 60
	rem := minutes % 60
	if rem == 0 {
		if hours == 1 {
			return "1 hora"
		}
		return fmt.Sprintf("%d horas", hours)
	}
	return fmt.Sprintf("%dh %dmin", hours, rem)
}

// RelativeTime renders how long ago t was, in Spanish.
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "Hace un momento"
	case d < time.Hour:
		return plural("Hace %d minuto", int(d.Minutes()))
	case d < 24*time.Hour:
		return plural("Hace %d hora", int(d.Hours()))
	case d < 7*24*time.Hour:
		return plural("Hace %d día", int(d.Hours()/24))
	default:
		return t.Format("02/01/2006")
	}
}

func plural(f string, n int) string {
	s := fmt.Sprintf(f, n)
	if n > 1 {
		s += "s"
	}
	return s
}

// Truncate shortens text to maxLen runes, appending an ellipsis.
func Truncate(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return strings.TrimSpace(string(runes[:maxLen])) + "..."
}

// Capitalize upper-cases the first rune and lower-cases the rest.
func Capitalize(text string) string {
	if text == "" {
		return text
	}
	runes := []rune(strings.ToLower(text))
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}

// CapitalizeWords capitalizes every space-separated word.
func CapitalizeWords(text string) string {
	words := strings.Split(text, " ")
	for i, w := range words {
		words[i] = Capitalize(w)
	}
	return strings.Join(words, " ")
}

var slugReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
)

// Slug turns text into a lowercase URL-safe identifier.
func Slug(text string) string {
	s := slugReplacer.Replace(strings.ToLower(text))

	var b strings.Builder
	lastDash := true // suppress leading dashes
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

var statusTexts = map[domain.OrderStatus]string{
	domain.StatusPending:       "Pendiente",
	domain.StatusConfirmed:     "Confirmado",
	domain.StatusInPreparation: "En preparación",
	domain.StatusInTransit:     "En camino",
	domain.StatusDelivered:     "Entregado",
	domain.StatusCancelled:     "Cancelado",
}

// StatusText is the display name of an order status.
func StatusText(s domain.OrderStatus) string {
	if t, ok := statusTexts[s]; ok {
		return t
	}
	return string(s)
}

var paymentTexts = map[domain.PaymentMethod]string{
	domain.PaymentCash:     "Efectivo",
	domain.PaymentCard:     "Tarjeta",
	domain.PaymentTransfer: "Transferencia",
}

// PaymentMethodText is the display name of a payment method.
func PaymentMethodText(m domain.PaymentMethod) string {
	if t, ok := paymentTexts[m]; ok {
		return t
	}
	return string(m)
}

var merchantTypeTexts = map[domain.MerchantType]string{
	domain.TypeRestaurant:  "Restaurante",
	domain.TypePharmacy:    "Farmacia",
	domain.TypeSupermarket: "Supermercado",
	domain.TypeStore:       "Tienda",
}

// MerchantTypeText is the display name of a merchant type.
func MerchantTypeText(t domain.MerchantType) string {
	if s, ok := merchantTypeTexts[t]; ok {
		return s
	}
	return string(t)
}
