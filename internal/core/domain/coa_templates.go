package domain

// AccountTemplate is one seed row of an industry chart of accounts.
type AccountTemplate struct {
	Code string
	Name string
	Type AccountType
}

// DefaultIndustry is used when a tenant's industry has no template.
const DefaultIndustry = "retail"

// IndustryChartTemplates holds the seed chart of accounts per industry.
var IndustryChartTemplates = map[string][]AccountTemplate{
	"retail": {
		{Code: "1000", Name: "Cash on Hand", Type: Asset},
		{Code: "1200", Name: "Inventory", Type: Asset},
		{Code: "4000", Name: "Retail Sales", Type: Revenue},
		{Code: "5000", Name: "Cost of Goods Sold", Type: Expense},
	},
	"service": {
		{Code: "1000", Name: "Bank Account", Type: Asset},
		{Code: "4000", Name: "Service Revenue", Type: Revenue},
		{Code: "5100", Name: "Labor Costs", Type: Expense},
	},
	"pharmacy": {
		{Code: "1000", Name: "Main Register", Type: Asset},
		{Code: "1200", Name: "Medical Supplies Inventory", Type: Asset},
		{Code: "4000", Name: "Prescription Sales", Type: Revenue},
		{Code: "5000", Name: "Procurement Costs", Type: Expense},
	},
}

// ChartTemplateFor returns the template for industry, falling back to retail.
func ChartTemplateFor(industry string) []AccountTemplate {
	if tpl, ok := IndustryChartTemplates[industry]; ok {
		return tpl
	}
	return IndustryChartTemplates[DefaultIndustry]
}
