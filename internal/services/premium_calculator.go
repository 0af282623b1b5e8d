package services

import (
	"fmt"
	"strings"

	"quotation-service/internal/models"

	"github.com/shopspring/decimal"
)

// Pure monetary arithmetic. All amounts are rounded to 2 decimal places with
// round-half-up semantics; decimal.Round rounds half away from zero, which is
// half-up for the non-negative amounts handled here.

const moneyPlaces = 2

func roundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}

// TotalPremium computes emission, tax and total from a net amount and the
// insurer's factors. Each intermediate value is rounded before it feeds the
// next one, so the total matches what a currency display would add up.
func TotalPremium(net, emissionFactor, taxFactor float64) (emission, tax, total float64) {
	netD := roundMoney(decimal.NewFromFloat(net))
	emissionD := roundMoney(netD.Mul(decimal.NewFromFloat(emissionFactor)))
	taxD := roundMoney(netD.Add(emissionD).Mul(decimal.NewFromFloat(taxFactor)))
	totalD := roundMoney(netD.Add(emissionD).Add(taxD))

	emission, _ = emissionD.Float64()
	tax, _ = taxD.Float64()
	total, _ = totalD.Float64()
	return emission, tax, total
}

// Installment divides a total across a catalog-supplied number of payments.
// A non-positive divisor is an input error.
func Installment(total float64, divisor int) (float64, error) {
	if divisor <= 0 {
		return 0, fmt.Errorf("installment divisor must be positive, got %d", divisor)
	}
	amount := roundMoney(decimal.NewFromFloat(total).Div(decimal.NewFromInt(int64(divisor))))
	result, _ := amount.Float64()
	return result, nil
}

// CommissionSplit divides a net commission amount between seller and company.
// The seller share is rounded first and the company share is the remainder,
// so the two parts always sum exactly to the rounded total.
func CommissionSplit(netCommission, sellerRate float64) (sellerShare, companyShare float64) {
	totalD := roundMoney(decimal.NewFromFloat(netCommission))
	sellerD := roundMoney(totalD.Mul(decimal.NewFromFloat(sellerRate)))
	companyD := totalD.Sub(sellerD)

	sellerShare, _ = sellerD.Float64()
	companyShare, _ = companyD.Float64()
	return sellerShare, companyShare
}

// NetCommission is the commission base earned on a premium's net amount at
// the issuance's plan rate.
func NetCommission(netAmount, planRate float64) float64 {
	amount := roundMoney(decimal.NewFromFloat(netAmount).Mul(decimal.NewFromFloat(planRate)))
	result, _ := amount.Float64()
	return result
}

// FormatPercent renders a ratio in [0,1] as a percentage: 0 decimals when the
// percentage is a whole number, otherwise 2, with a configurable decimal
// separator.
func FormatPercent(rate float64, separator string) string {
	percent := decimal.NewFromFloat(rate).Mul(decimal.NewFromInt(100)).Round(moneyPlaces)
	if percent.Equal(percent.Truncate(0)) {
		return percent.StringFixed(0) + "%"
	}
	formatted := percent.StringFixed(2)
	if separator != "." {
		formatted = strings.Replace(formatted, ".", separator, 1)
	}
	return formatted + "%"
}

// BuildPremiumQuote derives the display amounts for a stored premium row using
// its pinned ratio snapshot.
func BuildPremiumQuote(premium models.QuotationPremium, insurer models.InsuranceVehicle, ratio models.InsuranceVehicleRatio) (models.PremiumQuote, error) {
	emission, tax, total := TotalPremium(premium.NetAmount, ratio.EmissionRight, ratio.Tax)

	feeInstallment, err := Installment(total, ratio.Fee)
	if err != nil {
		return models.PremiumQuote{}, fmt.Errorf("insurer %s: %w", insurer.Name, err)
	}
	directDebit, err := Installment(total, ratio.DirectDebit)
	if err != nil {
		return models.PremiumQuote{}, fmt.Errorf("insurer %s: %w", insurer.Name, err)
	}

	return models.PremiumQuote{
		Premium:           premium,
		Insurer:           insurer,
		Ratio:             ratio,
		EmissionAmount:    emission,
		TaxAmount:         tax,
		TotalPremium:      total,
		FeeInstallment:    feeInstallment,
		DirectDebitAmount: directDebit,
	}, nil
}
