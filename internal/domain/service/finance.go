package service

import (
	"math"
	"strconv"
	"strings"
)

// ---------------------------------------------------------------------------
// Financial calculations – shared across underwriting, pricing and messaging
// ---------------------------------------------------------------------------

// EMI calculates the equated monthly installment for a loan.
//
// Formula: EMI = P * r * (1+r)^n / ((1+r)^n - 1)
// where r is the monthly rate (annualRate / 12 / 100) and n is the tenure in
// months. The result is truncated to a whole rupee.
func EMI(principal int64, annualRate float64, months int) int64 {
	monthlyRate := annualRate / 12 / 100

	if monthlyRate == 0 {
		return int64(float64(principal) / float64(months))
	}

	factor := math.Pow(1+monthlyRate, float64(months))
	emi := float64(principal) * monthlyRate * factor / (factor - 1)

	return int64(emi)
}

// MaxLoan calculates the maximum principal serviceable by a given monthly
// installment capacity. It is the inverse of the EMI formula, rounded down to
// the nearest thousand.
func MaxLoan(maxEMI int64, annualRate float64, months int) int64 {
	monthlyRate := annualRate / 12 / 100

	if monthlyRate == 0 {
		return maxEMI * int64(months)
	}

	factor := math.Pow(1+monthlyRate, float64(months))
	principal := float64(maxEMI) * (factor - 1) / (monthlyRate * factor)

	return int64(principal/1000) * 1000
}

// LoanDetails returns the EMI, total payable and total interest for a loan.
func LoanDetails(principal int64, annualRate float64, months int) (emi, totalPayment, totalInterest int64) {
	emi = EMI(principal, annualRate, months)
	totalPayment = emi * int64(months)
	totalInterest = totalPayment - principal
	return emi, totalPayment, totalInterest
}

// InterestRateForScore adjusts the base annual rate by credit score tier.
// Better scores earn lower rates.
func InterestRateForScore(creditScore int, baseRate float64) float64 {
	switch {
	case creditScore >= 800:
		return baseRate - 2.0
	case creditScore >= 750:
		return baseRate - 1.0
	case creditScore >= 700:
		return baseRate
	default:
		return baseRate + 2.0
	}
}

// FormatINR renders an amount in rupees with Indian digit grouping, e.g.
// 1234567 -> "₹12,34,567". Negative amounts carry a leading minus sign.
func FormatINR(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString("₹")

	// Last group of three, then groups of two.
	n := len(digits)
	if n <= 3 {
		b.WriteString(digits)
		return b.String()
	}

	head := digits[:n-3]
	tail := digits[n-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}

	b.WriteString(strings.Join(groups, ","))
	b.WriteString(",")
	b.WriteString(tail)
	return b.String()
}
