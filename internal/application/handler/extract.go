package handler

import (
	"regexp"
	"strconv"
	"strings"
)

// ---------------------------------------------------------------------------
// Message extraction – keyword and regex heuristics
// ---------------------------------------------------------------------------

// Extracted holds whatever loan-related details a message yielded. Zero
// values mean the field was not found.
type Extracted struct {
	Name    string
	Phone   string
	Amount  int64
	Tenure  int
	Purpose string
}

var loanKeywords = []string{
	"loan", "borrow", "credit", "money", "finance", "personal loan",
	"lakh", "lakhs", "amount", "emi", "interest",
}

// Amount patterns are tried in priority order: lakh, crore, Indian comma
// grouping, then plain 5-8 digit numbers.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:₹|rs\.?|inr)?\s*(\d+(?:,\d+)*)\s*(?:lakh|lac|l)\b`),
	regexp.MustCompile(`(?:₹|rs\.?|inr)?\s*(\d+(?:,\d+)*)\s*(?:crore|cr)\b`),
	regexp.MustCompile(`(?:₹|rs\.?|inr)?\s*(\d{1,3}(?:,\d{2,3})*(?:,\d{3})?)\b`),
	regexp.MustCompile(`(?:₹|rs\.?|inr)?\s*(\d{5,8})\b`),
}

var tenurePatterns = []struct {
	re         *regexp.Regexp
	multiplier int
}{
	{regexp.MustCompile(`(\d+)\s*(?:month|months|mo)\b`), 1},
	{regexp.MustCompile(`(\d+)\s*(?:year|years|yr|yrs)\b`), 12},
}

var phonePattern = regexp.MustCompile(`\b([6-9]\d{9})\b`)

// The lead-in phrase matches case-insensitively but the captured name must be
// properly capitalized, so trailing words like "and" never leak in.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i:i am|i'm|my name is|this is|call me)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
	regexp.MustCompile(`(?i:name|naam)[\s:]+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
}

// directNamePattern matches a bare 1-3 word capitalized reply, used only when
// no name has been captured yet.
var directNamePattern = regexp.MustCompile(`^([A-Z][a-z]+(?:\s+[A-Z][a-z]+){0,2})$`)

var nonNameWords = map[string]bool{
	"yes": true, "no": true, "ok": true, "okay": true,
	"hi": true, "hello": true, "thanks": true, "thank": true,
}

// Purpose keywords are checked in fixed order; the first bucket with a hit
// wins.
var purposeKeywords = []struct {
	purpose  string
	keywords []string
}{
	{"medical", []string{"medical", "hospital", "health", "treatment", "surgery"}},
	{"education", []string{"education", "study", "college", "university", "course", "degree"}},
	{"wedding", []string{"wedding", "marriage", "shaadi"}},
	{"home renovation", []string{"renovation", "home improvement", "repair", "construction"}},
	{"travel", []string{"travel", "vacation", "holiday", "trip"}},
	{"debt consolidation", []string{"debt", "consolidation", "pay off", "clear loan"}},
	{"personal expenses", []string{"personal", "expenses", "emergency"}},
	{"business", []string{"business", "startup", "venture"}},
}

// IsLoanInquiry reports whether the message mentions anything loan-shaped.
func IsLoanInquiry(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range loanKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// ExtractLoanInfo pulls amount, tenure, phone, name and purpose out of a free
// text message. hasExistingName suppresses the bare-name heuristic once a
// name is already on file.
func ExtractLoanInfo(message string, hasExistingName bool) Extracted {
	var out Extracted
	lower := strings.ToLower(message)

	out.Amount = extractAmount(lower)
	out.Tenure = extractTenure(lower)

	if m := phonePattern.FindStringSubmatch(message); m != nil {
		out.Phone = m[1]
	}

	out.Name = extractName(message, hasExistingName)

	for _, bucket := range purposeKeywords {
		for _, kw := range bucket.keywords {
			if strings.Contains(lower, kw) {
				out.Purpose = bucket.purpose
				break
			}
		}
		if out.Purpose != "" {
			break
		}
	}

	return out
}

func extractAmount(lower string) int64 {
	for _, re := range amountPatterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}

		raw := strings.ReplaceAll(m[1], ",", "")
		amount, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}

		// "2 lakh" means 200,000 but "200000 lakh" stays literal.
		if strings.Contains(lower, "lakh") || strings.Contains(lower, "lac") {
			if amount < 100 {
				amount *= 100_000
			}
		} else if strings.Contains(lower, "crore") || strings.Contains(lower, " cr") {
			if amount < 100 {
				amount *= 10_000_000
			}
		}

		if amount >= 10_000 && amount <= 10_000_000 {
			return amount
		}
	}
	return 0
}

// ExtractMonthlySalary reads a salary figure out of a message, reusing the
// amount patterns but with a wider floor since monthly pay sits well below
// loan principals.
func ExtractMonthlySalary(message string) int64 {
	lower := strings.ToLower(message)
	for _, re := range amountPatterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}

		raw := strings.ReplaceAll(m[1], ",", "")
		salary, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}

		if strings.Contains(lower, "lakh") || strings.Contains(lower, "lac") {
			if salary < 100 {
				salary *= 100_000
			}
		}

		if salary >= 5_000 && salary <= 10_000_000 {
			return salary
		}
	}
	return 0
}

func extractTenure(lower string) int {
	for _, p := range tenurePatterns {
		m := p.re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}

		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}

		tenure := n * p.multiplier
		if tenure >= 6 && tenure <= 84 {
			return tenure
		}
	}
	return 0
}

func extractName(message string, hasExistingName bool) string {
	for _, re := range namePatterns {
		if m := re.FindStringSubmatch(message); m != nil {
			name := strings.TrimSpace(m[1])
			if len(name) >= 2 && len(name) <= 50 {
				return titleCase(name)
			}
		}
	}

	if hasExistingName {
		return ""
	}

	if m := directNamePattern.FindStringSubmatch(strings.TrimSpace(message)); m != nil {
		name := strings.TrimSpace(m[1])
		if len(name) >= 2 && len(name) <= 50 && !nonNameWords[strings.ToLower(name)] {
			return titleCase(name)
		}
	}
	return ""
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
