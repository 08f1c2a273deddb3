package controllers

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"reconciliation/internal/repository/mongo/structs"
	"reconciliation/models"

	"github.com/jhillyerd/enmime"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// MailboxController ingests broker contract notes: .eml files dropped into a
// directory, each carrying one or more .xlsx attachments. A bad email or row
// is logged and skipped, never aborting the batch.
type MailboxController struct {
	dir    string
	logger *logrus.Logger
}

func NewMailboxController(
	dir string,
	logger *logrus.Logger,
) *MailboxController {
	return &MailboxController{
		dir:    dir,
		logger: logger,
	}
}

func (c *MailboxController) Extract(profile *structs.MappingProfile) ([]models.Execution, error) {
	files, err := filepath.Glob(filepath.Join(c.dir, "*.eml"))
	if err != nil {
		return nil, err
	}

	var out []models.Execution

	for _, name := range files {
		executions, err := c.extractFile(name, profile)
		if err != nil {
			c.logger.
				WithError(err).
				Errorf("mailbox: %s", name)

			continue
		}

		out = append(out, executions...)
	}

	c.logger.Infof("mailbox: extracted %d executions from %d emails", len(out), len(files))

	return out, nil
}

func (c *MailboxController) extractFile(name string, profile *structs.MappingProfile) ([]models.Execution, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = f.Close()
	}()

	env, err := enmime.ReadEnvelope(f)
	if err != nil {
		return nil, errors.Wrap(err, "read envelope")
	}

	var out []models.Execution

	for _, att := range env.Attachments {
		if !strings.HasSuffix(strings.ToLower(att.FileName), ".xlsx") {
			continue
		}

		rows, err := readSheet(att.Content)
		if err != nil {
			return nil, errors.Wrap(err, att.FileName)
		}

		out = append(out, c.convertRows(rows, profile)...)
	}

	return out, nil
}

func readSheet(content []byte) ([][]string, error) {
	book, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = book.Close()
	}()

	return book.GetRows(book.GetSheetName(0))
}

// convertRows applies the header mapping table to one sheet. The first row
// carries headers; unmapped columns are ignored.
func (c *MailboxController) convertRows(rows [][]string, profile *structs.MappingProfile) []models.Execution {
	if len(rows) < 2 {
		return nil
	}

	fields := make(map[int]string, len(rows[0]))
	for i, header := range rows[0] {
		if field, ok := profile.FieldFor(normalizeHeader(header)); ok {
			fields[i] = field
		}
	}

	out := make([]models.Execution, 0, len(rows)-1)

	for _, row := range rows[1:] {
		execution, err := convertRow(row, fields)
		if err != nil {
			c.logger.
				WithError(err).
				Warnf("mailbox: skipping row %v", row)

			continue
		}

		out = append(out, *execution)
	}

	return out
}

func normalizeHeader(header string) string {
	return strings.ToLower(strings.TrimSpace(header))
}

func convertRow(row []string, fields map[int]string) (*models.Execution, error) {
	var m models.Execution

	for i, field := range fields {
		if i >= len(row) {
			continue
		}

		value := strings.TrimSpace(row[i])

		switch field {
		case structs.FieldSymbol:
			m.Symbol = value
		case structs.FieldBrokerID:
			m.BrokerID = value
		case structs.FieldBuySellFlag:
			m.BuySellFlag = value
		case structs.FieldTradeDate:
			m.TradeDate = value
		case structs.FieldSettlementDate:
			m.SettlementDate = value
		case structs.FieldExchangeCode:
			m.ExchangeCode = value
		case structs.FieldDepositoryCode:
			m.DepositoryCode = value
		case structs.FieldQuantity:
			quantity, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return nil, errors.Wrap(err, "quantity")
			}
			m.Quantity = quantity
		case structs.FieldTradePrice:
			price, err := parseDecimal(value)
			if err != nil {
				return nil, errors.Wrap(err, "trade_price")
			}
			m.TradePrice = price
		case structs.FieldNetAmount:
			amount, err := parseDecimal(value)
			if err != nil {
				return nil, errors.Wrap(err, "net_amount")
			}
			m.NetAmount = amount
		case structs.FieldBrokerageAmount:
			amount, err := parseDecimal(value)
			if err != nil {
				return nil, errors.Wrap(err, "brokerage_amount")
			}
			m.BrokerageAmount = amount
		case structs.FieldSTT:
			amount, err := parseDecimal(value)
			if err != nil {
				return nil, errors.Wrap(err, "stt")
			}
			m.STT = amount
		}
	}

	if m.Symbol == "" {
		return nil, errors.New("missing symbol")
	}

	return &m, nil
}

func parseDecimal(value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}

	return decimal.NewFromString(value)
}
