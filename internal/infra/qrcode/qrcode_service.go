package qrcode

import (
	"fmt"
	"strings"

	"encontro/config"
	"encontro/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const pixGUI = "br.gov.bcb.pix"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	pixKey               string
	merchantName         string
	merchantCity         string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := 256
	ecLevel := "M"
	svc := &qrcodeService{
		pixKey:       "",
		merchantName: "ENCONTRO FAMILIA",
		merchantCity: "SAO PAULO",
	}
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		if cfg.QRCode.ErrorCorrectionLevel != "" {
			ecLevel = cfg.QRCode.ErrorCorrectionLevel
		}
		svc.pixKey = cfg.QRCode.PixKey
		if cfg.QRCode.MerchantName != "" {
			svc.merchantName = cfg.QRCode.MerchantName
		}
		if cfg.QRCode.MerchantCity != "" {
			svc.merchantCity = cfg.QRCode.MerchantCity
		}
	}

	// Set error correction level
	var level qrcode.RecoveryLevel
	switch ecLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	svc.size = size
	svc.errorCorrectionLevel = level

	return svc
}

// GeneratePaymentQR builds the PIX copia-e-cola payload for a payment and
// renders it as a PNG image.
func (s *qrcodeService) GeneratePaymentQR(paymentID uuid.UUID, amount float64) ([]byte, error) {
	payload := s.PaymentPayload(paymentID, amount)

	qrCode, err := qrcode.New(payload, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// PaymentPayload assembles the EMV "BR Code" payload defined by the Banco
// Central PIX specification. Field layout: each data object is
// ID(2) + length(2) + value, with a CRC16-CCITT over the whole payload
// appended as field 63.
func (s *qrcodeService) PaymentPayload(paymentID uuid.UUID, amount float64) string {
	// Transaction IDs are limited to 25 characters; a compacted UUID fits.
	txid := strings.ToUpper(strings.ReplaceAll(paymentID.String(), "-", ""))[:25]

	merchantAccount := emvField("00", pixGUI) + emvField("01", s.pixKey)

	var builder strings.Builder
	builder.WriteString(emvField("00", "01"))            // payload format indicator
	builder.WriteString(emvField("26", merchantAccount)) // merchant account information
	builder.WriteString(emvField("52", "0000"))          // merchant category code
	builder.WriteString(emvField("53", "986"))           // currency: BRL
	builder.WriteString(emvField("54", fmt.Sprintf("%.2f", amount)))
	builder.WriteString(emvField("58", "BR"))
	builder.WriteString(emvField("59", truncate(s.merchantName, 25)))
	builder.WriteString(emvField("60", truncate(s.merchantCity, 15)))
	builder.WriteString(emvField("62", emvField("05", txid)))
	builder.WriteString("6304") // CRC placeholder: ID + length precede the checksum

	payload := builder.String()

	return payload + fmt.Sprintf("%04X", crc16CCITT(payload))
}

func emvField(id, value string) string {
	return fmt.Sprintf("%s%02d%s", id, len(value), value)
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}

	return s
}

// crc16CCITT computes the CRC-16/CCITT-FALSE checksum required by the PIX
// payload specification (polynomial 0x1021, initial value 0xFFFF).
func crc16CCITT(data string) uint16 {
	crc := uint16(0xFFFF)
	for i := 0; i < len(data); i++ {
		crc ^= uint16(data[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}

	return crc
}
