package booking

import (
	"strings"
	"time"

	"hotel-booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUnknownMethod          = errs.Payment("unknown payment method")
	ErrUnknownTransactionType = errs.Payment("unknown payment transaction type")
	ErrInvalidAmount          = errs.Validation("payment amount must be positive")
	ErrOverpayment            = errs.Payment("payment exceeds outstanding balance")
	ErrRefundExceedsPaid      = errs.Payment("refund exceeds amount paid")
)

// Method is the closed set of payment methods the engine records.
type Method string

const (
	MethodCash         Method = "cash"
	MethodCard         Method = "card"
	MethodBankTransfer Method = "bank_transfer"
	MethodEWallet      Method = "ewallet"
)

var gatewayCodes = map[Method]string{
	MethodCash:         "CASH",
	MethodCard:         "CARD",
	MethodBankTransfer: "BANK_TRANSFER",
	MethodEWallet:      "EWALLET",
}

// accepted spellings, including the labels front-desk clients historically sent
var methodAliases = map[string]Method{
	"cash":          MethodCash,
	"card":          MethodCard,
	"credit_card":   MethodCard,
	"bank":          MethodBankTransfer,
	"bank_transfer": MethodBankTransfer,
	"banktransfer":  MethodBankTransfer,
	"transfer":      MethodBankTransfer,
	"ewallet":       MethodEWallet,
	"e_wallet":      MethodEWallet,
	"e-wallet":      MethodEWallet,
}

func ParseMethod(s string) (Method, error) {
	m, ok := methodAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", ErrUnknownMethod
	}
	return m, nil
}

// MethodFromGatewayCode maps a gateway evidence code back to a Method.
func MethodFromGatewayCode(code string) (Method, error) {
	c := strings.ToUpper(strings.TrimSpace(code))
	for m, gc := range gatewayCodes {
		if gc == c {
			return m, nil
		}
	}
	return "", ErrUnknownMethod
}

func (m Method) String() string {
	return string(m)
}

func (m Method) IsValid() bool {
	_, ok := gatewayCodes[m]
	return ok
}

func (m Method) GatewayCode() string {
	return gatewayCodes[m]
}

type TransactionType string

const (
	TransactionDeposit TransactionType = "deposit"
	TransactionBalance TransactionType = "balance"
	TransactionRefund  TransactionType = "refund"
)

func (t TransactionType) String() string {
	return string(t)
}

func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case TransactionDeposit, TransactionBalance, TransactionRefund:
		return t, nil
	default:
		return "", ErrUnknownTransactionType
	}
}

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
)

func (s TransactionStatus) String() string {
	return string(s)
}

// Transaction is an append-only record of money moving for a booking. Pending
// refunds are obligations still to be disbursed.
type Transaction struct {
	ID          uuid.UUID
	BookingID   uuid.UUID
	Amount      int64
	Method      Method
	Type        TransactionType
	Status      TransactionStatus
	Reference   string
	Note        string
	ProcessedAt time.Time
	ProcessedBy string
}

// Delta is the signed effect of a completed transaction on paidAmount.
func (t Transaction) Delta() int64 {
	if t.Status != TransactionCompleted {
		return 0
	}
	if t.Type == TransactionRefund {
		return -t.Amount
	}
	return t.Amount
}

// DepositFor is round(total * 0.3), half away from zero, in whole currency units.
func DepositFor(total int64) int64 {
	if total <= 0 {
		return 0
	}
	return (total*3 + 5) / 10
}

func DerivePaymentStatus(paid, deposit, total int64) PaymentStatus {
	switch {
	case paid >= total && total > 0:
		return PaymentFullyPaid
	case paid >= deposit && paid > 0:
		return PaymentDepositPaid
	default:
		return PaymentUnpaid
	}
}
