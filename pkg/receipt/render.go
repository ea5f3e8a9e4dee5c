package receipt

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Render produces the fixed-width text document for a receipt.
//
// Layout (widths per Layout, numeric columns right-aligned):
//
//	       ФОП Таранов Іван
//	==========================
//	  1.00 x        20.00
//	Хліб                        20.00
//	--------------------------
//	СУМА                        20.00
//	Готівка                     50.00
//	Решта                       30.00
//	==========================
//	30.08.2026 14:05
//	Дякуємо за покупку!
//
// Separator lines span the FOP column plus the issuer name, matching the
// header line above them.
func Render(r Receipt, l Layout) string {
	var b strings.Builder

	ruleWidth := l.FOPWidth + utf8.RuneCountInString(r.FOP) + 1

	fmt.Fprintf(&b, "%*s %s\n", l.FOPWidth, "ФОП", r.FOP)
	b.WriteString(strings.Repeat("=", ruleWidth))
	b.WriteByte('\n')

	for _, item := range r.Items {
		fmt.Fprintf(&b, "%*s x %*s\n",
			l.QtyWidth, formatQty(item.Quantity),
			l.PriceWidth, formatMoney(item.Price))
		fmt.Fprintf(&b, "%-*s %*s\n",
			l.NameWidth, truncate(item.Name, l.NameWidth),
			l.TotalWidth, formatMoney(item.Total))
	}

	b.WriteString(strings.Repeat("-", ruleWidth))
	b.WriteByte('\n')

	fmt.Fprintf(&b, "%-*s %*s\n", l.SumWidth, "СУМА", l.TotalWidth, formatMoney(r.Total))
	fmt.Fprintf(&b, "%-*s %*s\n", l.PaymentWidth, paymentLabel(r.PaymentType), l.TotalWidth, formatMoney(r.PaymentAmount))
	fmt.Fprintf(&b, "%-*s %*s\n", l.PaymentWidth, "Решта", l.TotalWidth, formatMoney(r.Rest))

	b.WriteString(strings.Repeat("=", ruleWidth))
	b.WriteByte('\n')

	fmt.Fprintf(&b, "%-*s\n", l.DateWidth, r.CreatedAt.Format("02.01.2006 15:04"))
	b.WriteString("Дякуємо за покупку!")

	return b.String()
}

// formatQty renders a quantity with two decimals, e.g. "2.00".
func formatQty(qty int) string {
	return fmt.Sprintf("%d.00", qty)
}

// formatMoney renders an amount with two decimals and comma thousands
// grouping, e.g. "1,234.50".
func formatMoney(amount float64) string {
	s := fmt.Sprintf("%.2f", amount)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s[:len(s)-3]
	fracPart := s[len(s)-3:]

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	out := grouped.String() + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// truncate cuts a string to at most width runes.
func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width])
}
