package domain

// Well-known codes from the default chart of accounts. The GST repair
// and the seed refer to these directly.
const (
	CodeBankSBI              = "A001"
	CodeBankICICI            = "A002"
	CodeShreeCementLegacy    = "A003" // deprecated, kept inactive for history
	CodeSecurityDeposit      = "A003-SD"
	CodeCommissionReceivable = "A003-CR"
	CodeTDSReceivable        = "A004"
	CodeCGSTPayable          = "L001"
	CodeSGSTPayable          = "L002"
	CodeCommissionIncome     = "I001"
	CodeSalaryExpense        = "E001"
	CodeRakeExpense          = "E002"
	CodeGodownExpense        = "E003"
	CodeMiscExpense          = "E004"
	CodeOwnersCapital        = "EQ001"
	CodeOwnersDrawings       = "EQ002"
)
