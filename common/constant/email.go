package constant

const (
	EmailTemplateTransactionConfirmed     = "transaction-confirmed"
	EmailTemplateTransactionRejected      = "transaction-rejected"
	EmailTemplateTransactionCancelled     = "transaction-cancelled"
	EmailTemplateTransactionAutoCancelled = "transaction-auto-cancelled"
)

const (
	EmailSubjectTransactionConfirmed     = "Transaction Confirmed - Event Ticket"
	EmailSubjectTransactionRejected      = "Transaction Rejected - Event Ticket"
	EmailSubjectTransactionCancelled     = "Transaction Cancelled by User"
	EmailSubjectTransactionAutoCancelled = "Transaction Cancelled - Event Ticket"
)

// EmailTemplates are parsed with html/template; the idr func formats rupiah amounts.
var EmailTemplates = map[string]string{
	EmailTemplateTransactionConfirmed: `<h1>Transaction Confirmed</h1>
<p>Dear {{.user_name}},</p>
<p>Your transaction for event <strong>{{.event_title}}</strong> has been confirmed.</p>
<p>Transaction ID: {{.transaction_id}}</p>
<p>Ticket Type: {{.ticket_type_name}}</p>
<p>Quantity: {{.ticket_qty}}</p>
<p>Total Paid: {{idr .final_price}}</p>
<p>Have a great time!</p>
`,
	EmailTemplateTransactionRejected: `<h1>Transaction Rejected</h1>
<p>Dear {{.user_name}},</p>
<p>Your transaction for event <strong>{{.event_title}}</strong> has been rejected by the organizer.</p>
<p>Transaction ID: {{.transaction_id}}</p>
<p>If you have used any points or vouchers, they have been restored to your account.</p>
`,
	EmailTemplateTransactionCancelled: `<h1>Transaction Cancelled</h1>
<p>A transaction for your event <strong>{{.event_title}}</strong> has been cancelled by the user.</p>
<p>Transaction ID: {{.transaction_id}}</p>
<p>Ticket Type: {{.ticket_type_name}}</p>
<p>Quantity: {{.ticket_qty}}</p>
`,
	EmailTemplateTransactionAutoCancelled: `<h1>Transaction Cancelled</h1>
<p>Dear {{.user_name}},</p>
<p>Your transaction for event <strong>{{.event_title}}</strong> was not confirmed by the organizer in time and has been cancelled.</p>
<p>Transaction ID: {{.transaction_id}}</p>
<p>Your seats, points, vouchers and coupons have been restored.</p>
`,
}
