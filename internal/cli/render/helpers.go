package render

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/capitaldao/veto-cli/internal/domain"
	"github.com/capitaldao/veto-cli/internal/domain/models"
)

var (
	headerStyle  = color.New(color.FgCyan, color.Bold)
	sectionStyle = color.New(color.Bold, color.FgHiWhite)
	labelStyle   = color.New(color.Faint)
	addressStyle = color.New(color.FgWhite)
	idStyle      = color.New(color.FgBlue)
	warnStyle    = color.New(color.FgYellow)
)

var titleCaser = cases.Title(language.English)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	// Extract just the error message part (after the last colon if it's an error chain)
	parts := strings.Split(message, ": ")
	msg := parts[len(parts)-1]

	// Capitalize first letter
	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}

	return color.New(color.FgRed).Sprintf("❌ %s", msg)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// FormatStatus colors a proposal status
func FormatStatus(status models.ProposalStatus) string {
	var c *color.Color
	switch status {
	case models.ProposalStatusActive:
		c = color.New(color.FgYellow, color.Bold)
	case models.ProposalStatusSucceeded:
		c = color.New(color.FgGreen)
	case models.ProposalStatusExecuted:
		c = color.New(color.FgGreen, color.Bold)
	case models.ProposalStatusDefeated:
		c = color.New(color.FgRed)
	default:
		c = color.New(color.FgWhite, color.Faint)
	}
	return c.Sprint(string(status))
}

// FormatVote renders a ballot option as a capitalized, colored label
func FormatVote(v models.VoteValue) string {
	label := titleCaser.String(v.String())
	switch v {
	case models.VoteYes:
		return color.New(color.FgGreen).Sprint(label)
	case models.VoteNo:
		return color.New(color.FgRed).Sprint(label)
	default:
		return color.New(color.Faint).Sprint(label)
	}
}

// FormatPercent renders a ratio in [0, 1] as a percentage
func FormatPercent(ratio float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.4f", ratio*100), "0"), ".") + "%"
}

// FormatDuration renders a number of seconds as days, hours and minutes
func FormatDuration(seconds int64) string {
	d := time.Duration(seconds) * time.Second
	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	return strings.Join(parts, " ")
}

// FormatTime renders a timestamp in UTC
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format("2006-01-02 15:04 UTC")
}

// FormatWeight renders token units with the token's decimals when it has any
func FormatWeight(units *big.Int, token models.TokenDetails) string {
	if units == nil {
		return "0"
	}
	if erc20, ok := token.(*models.Erc20Token); ok {
		s := domain.FormatTokenAmount(units, erc20.Decimals)
		if erc20.Symbol != "" {
			s += " " + erc20.Symbol
		}
		return s
	}
	return units.String()
}

// FormatEther renders wei as ETH
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "-"
	}
	return domain.FormatTokenAmount(wei, 18) + " ETH"
}

// ShortAddress abbreviates a hex address as 0x1234…abcd
func ShortAddress(addr string) string {
	if len(addr) <= 12 {
		return addr
	}
	return addr[:6] + "…" + addr[len(addr)-4:]
}
