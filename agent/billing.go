package agent

import "github.com/hupe1980/supportmesh/core"

// Refund policy windows, in days since purchase.
const (
	fullRefundDays = 30
	halfRefundDays = 60
)

const refundPolicy = "We offer a full refund up to 30 days after purchase for digital products. Between 31 and 60 days the refund is 50%. After 60 days no refund is available."

const refundPrompt = "If you need an exact amount, please tell us the purchase value and how many days ago the purchase was made."

// Ordered billing policy table. Refund and chargeback triggers precede the
// broader "charge"/"payment" triggers so disputes do not fall through to the
// payment-methods entry.
var billingPolicies = lookupTable{
	{
		keywords: []string{"refund", "money back", "chargeback"},
		response: refundPolicy + "\n\n" + refundPrompt,
	},
	{
		keywords: []string{"charge", "dispute", "statement"},
		response: "Credit card chargebacks are processed within 5 business days and may take up to two statements to appear.",
	},
	{
		keywords: []string{"payment", "pay", "card", "invoice"},
		response: "We accept credit cards (Visa, Mastercard, Amex), bank transfer and PayPal.",
	},
}

// billingMiss is returned when no policy entry matches.
const billingMiss = "I could not find a specific billing policy for your question. Could you rephrase it?"

// Billing answers charge, payment and refund questions from the billing
// policy table. It never escalates on its own: negative-sentiment cases are
// already escalated by the routing policy upstream.
type Billing struct{}

// NewBilling creates the billing support handler.
func NewBilling() *Billing { return &Billing{} }

// Kind identifies this handler in turn records.
func (a *Billing) Kind() core.AgentKind { return core.AgentBilling }

// Handle looks up the applicable billing policy. Refund questions get the
// policy text plus a prompt for the purchase amount and elapsed days; the
// amount itself is only computed by Refund once both figures are known.
func (a *Billing) Handle(query string, _ *core.ConversationState) core.HandlerResult {
	response, ok := billingPolicies.match(query)
	if !ok {
		response = billingMiss
	}
	return core.HandlerResult{Response: response}
}

// RefundDecision is the outcome of applying the refund policy windows to a
// concrete purchase.
type RefundDecision struct {
	Eligible bool
	Percent  int
	Amount   float64
}

// Refund applies the policy windows: up to 30 days a full refund, 31-60
// days half, afterwards nothing. Pure companion to the Billing handler.
func Refund(amount float64, daysSincePurchase int) RefundDecision {
	var percent int
	switch {
	case daysSincePurchase <= fullRefundDays:
		percent = 100
	case daysSincePurchase <= halfRefundDays:
		percent = 50
	default:
		percent = 0
	}
	return RefundDecision{
		Eligible: percent > 0,
		Percent:  percent,
		Amount:   amount * float64(percent) / 100,
	}
}
