package domain

// DocumentKind tags the source document type of a ledger entry.
type DocumentKind string

const (
	KindInvoice    DocumentKind = "invoice"
	KindDebitNote  DocumentKind = "debit_note"
	KindReceipt    DocumentKind = "receipt"
	KindCreditNote DocumentKind = "credit_note"
)

// SortPriority fixes the order of same-day entries: charges before settlements.
func (k DocumentKind) SortPriority() int {
	switch k {
	case KindInvoice:
		return 0
	case KindDebitNote:
		return 1
	case KindReceipt:
		return 2
	case KindCreditNote:
		return 3
	default:
		return 4
	}
}

// IsDebit reports whether documents of this kind increase what the client owes.
func (k DocumentKind) IsDebit() bool {
	return k == KindInvoice || k == KindDebitNote
}

// Label is the human-readable document type printed on statements.
func (k DocumentKind) Label() string {
	switch k {
	case KindInvoice:
		return "Invoice"
	case KindDebitNote:
		return "Debit Note"
	case KindReceipt:
		return "Receipt"
	case KindCreditNote:
		return "Credit Note"
	default:
		return string(k)
	}
}
