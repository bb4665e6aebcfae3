// Package seed provisions the default chart of accounts so the service
// is usable out of the box.
package seed

import (
	"errors"

	"github.com/munimji/munimji/internal/account/domain"
	"gorm.io/gorm"
)

type seedAccount struct {
	code           string
	name           string
	accountType    domain.Type
	subtype        string
	classification domain.Classification
	description    string
	inactive       bool
}

var chart = []seedAccount{
	{code: domain.CodeBankSBI, name: "SBI Current A/c", accountType: domain.TypeAsset, subtype: "cash_and_bank", classification: domain.ClassificationCurrent, description: "Primary bank account"},
	{code: domain.CodeBankICICI, name: "ICICI Current A/c", accountType: domain.TypeAsset, subtype: "cash_and_bank", classification: domain.ClassificationCurrent, description: "Secondary bank account"},
	{code: domain.CodeShreeCementLegacy, name: "Shree Cement A/c", accountType: domain.TypeAsset, subtype: "", classification: domain.ClassificationCurrent, description: "DEPRECATED - Split into A003-SD and A003-CR", inactive: true},
	{code: domain.CodeSecurityDeposit, name: "Shree Cement - Security Deposit", accountType: domain.TypeAsset, subtype: "security_deposit", classification: domain.ClassificationNonCurrent, description: "Security deposit with Shree Cement"},
	{code: domain.CodeCommissionReceivable, name: "Shree Cement - Commission Receivable", accountType: domain.TypeAsset, subtype: "sundry_debtors", classification: domain.ClassificationCurrent, description: "Commission receivable from Shree Cement"},
	{code: domain.CodeTDSReceivable, name: "TDS Receivable", accountType: domain.TypeAsset, subtype: "tax_receivable", classification: domain.ClassificationCurrent, description: "Tax deducted at source by payers"},
	{code: domain.CodeCGSTPayable, name: "CGST Payable", accountType: domain.TypeLiability, subtype: "tax_payable", classification: domain.ClassificationCurrent, description: "Central GST collected"},
	{code: domain.CodeSGSTPayable, name: "SGST Payable", accountType: domain.TypeLiability, subtype: "tax_payable", classification: domain.ClassificationCurrent, description: "State GST collected"},
	{code: domain.CodeCommissionIncome, name: "CFA Commission", accountType: domain.TypeIncome, subtype: "service_income", classification: domain.ClassificationCurrent, description: "Commission income from CFA services"},
	{code: domain.CodeSalaryExpense, name: "Salary Expense", accountType: domain.TypeExpense, subtype: "salary", classification: domain.ClassificationCurrent, description: "Employee salaries"},
	{code: domain.CodeRakeExpense, name: "Rake Expense", accountType: domain.TypeExpense, subtype: "operational", classification: domain.ClassificationCurrent, description: "Expenses related to rake operations and handling"},
	{code: domain.CodeGodownExpense, name: "Godown Expense", accountType: domain.TypeExpense, subtype: "operational", classification: domain.ClassificationCurrent, description: "Expenses related to godown/warehouse operations"},
	{code: domain.CodeMiscExpense, name: "Miscellaneous Expense", accountType: domain.TypeExpense, subtype: "other", classification: domain.ClassificationCurrent, description: "Other miscellaneous expenses not covered by specific categories"},
	{code: domain.CodeOwnersCapital, name: "Owner's Capital", accountType: domain.TypeEquity, subtype: "capital", classification: domain.ClassificationCurrent, description: "Capital contributed by owner"},
	{code: domain.CodeOwnersDrawings, name: "Owner's Drawings", accountType: domain.TypeEquity, subtype: "drawings", classification: domain.ClassificationCurrent, description: "Withdrawals by owner"},
}

// EnsureChartOfAccounts creates any missing default accounts. Existing
// rows keep their data except the deprecated legacy code, which is
// forced inactive on every boot.
func EnsureChartOfAccounts(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, a := range chart {
			var existing domain.Account
			err := tx.Where("code = ?", a.code).First(&existing).Error
			if err == nil {
				if a.inactive && existing.IsActive {
					existing.IsActive = false
					existing.Description = a.description
					if err := tx.Save(&existing).Error; err != nil {
						return err
					}
				}
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			account := domain.Account{
				Code:           a.code,
				Name:           a.name,
				Type:           a.accountType,
				Subtype:        a.subtype,
				Classification: a.classification,
				Description:    a.description,
				IsActive:       !a.inactive,
			}
			// Select("*") writes zero-valued fields past the column
			// defaults; a plain Create would flip the legacy code's
			// IsActive false back to the default true.
			if err := tx.Select("*").Create(&account).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
