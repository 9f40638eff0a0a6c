package gateway

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"hotel-booking-engine/internal/pkg/config"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

// ISO 4217 numeric code for VND.
const currencyVND = "704"

var errMissingAccount = errs.New("gateway account number is not configured")

// QRGateway produces bank transfer instructions: an image URL served by the QR
// provider and an EMVCo payload for apps that render the code themselves.
type QRGateway struct {
	cfg config.GatewayConfig
}

func NewQRGateway(cfg config.GatewayConfig) *QRGateway {
	return &QRGateway{cfg: cfg}
}

func (g *QRGateway) PaymentInstruction(reference string, amount int64, description string, bookingID uuid.UUID) (commands.PaymentInstruction, error) {
	if g.cfg.AccountNumber == "" {
		return commands.PaymentInstruction{}, errMissingAccount
	}
	if amount <= 0 {
		return commands.PaymentInstruction{}, errs.Newf("payment amount for booking %s must be positive", bookingID)
	}

	// banks strip punctuation from transfer notes; the reference must survive
	note := sanitizeNote(description)
	if !strings.Contains(note, reference) {
		note = reference
	}

	q := url.Values{}
	q.Set("acc", g.cfg.AccountNumber)
	q.Set("bank", g.cfg.BankCode)
	q.Set("amount", strconv.FormatInt(amount, 10))
	q.Set("des", note)
	if g.cfg.AccountName != "" {
		q.Set("name", g.cfg.AccountName)
	}

	return commands.PaymentInstruction{
		Reference:   reference,
		Amount:      amount,
		Description: note,
		PaymentURL:  g.cfg.PaymentURL + "?" + q.Encode(),
		QRPayload:   g.emvPayload(amount, note),
	}, nil
}

// emvPayload follows the EMVCo merchant-presented QR layout used by NAPAS.
func (g *QRGateway) emvPayload(amount int64, note string) string {
	beneficiary := tlv("00", g.cfg.BankCode) + tlv("01", g.cfg.AccountNumber)
	merchant := tlv("00", "A000000727") + tlv("01", beneficiary) + tlv("02", "QRIBFTTA")

	var b strings.Builder
	b.WriteString(tlv("00", "01"))
	b.WriteString(tlv("01", "12")) // dynamic: amount is fixed
	b.WriteString(tlv("38", merchant))
	b.WriteString(tlv("53", currencyVND))
	b.WriteString(tlv("54", strconv.FormatInt(amount, 10)))
	b.WriteString(tlv("58", "VN"))
	b.WriteString(tlv("62", tlv("08", note)))
	b.WriteString("6304")
	return b.String() + fmt.Sprintf("%04X", crc16CCITT([]byte(b.String())))
}

func tlv(id, value string) string {
	return fmt.Sprintf("%s%02d%s", id, len(value), value)
}

// crc16CCITT is CRC-16/CCITT-FALSE (poly 0x1021, init 0xFFFF).
func crc16CCITT(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		crc ^= uint16(b) << 8
		for range 8 {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

func sanitizeNote(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == ' ' {
			b.WriteRune(r)
		}
	}
	note := strings.Join(strings.Fields(b.String()), " ")
	if len(note) > 25 {
		note = note[:25]
	}
	return note
}
