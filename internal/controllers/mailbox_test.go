package controllers

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"reconciliation/internal/repository/mongo/structs"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func testProfile() *structs.MappingProfile {
	return &structs.MappingProfile{
		Name: "broker_xlsx",
		Columns: []structs.ColumnRule{
			{Header: "instrument isin", Field: structs.FieldSymbol},
			{Header: "qty", Field: structs.FieldQuantity},
			{Header: "cost", Field: structs.FieldTradePrice},
			{Header: "net amount", Field: structs.FieldNetAmount},
			{Header: "brokerage amount", Field: structs.FieldBrokerageAmount},
			{Header: "stt", Field: structs.FieldSTT},
			{Header: "deal date", Field: structs.FieldTradeDate},
			{Header: "party code/sebi regn code of party", Field: structs.FieldBrokerID},
			{Header: "buy/sell flag", Field: structs.FieldBuySellFlag},
			{Header: "settlement date", Field: structs.FieldSettlementDate},
		},
	}
}

func buildSheet(t *testing.T, rows [][]interface{}) []byte {
	book := excelize.NewFile()
	sheet := book.GetSheetName(0)

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		assert.NoError(t, err)
		assert.NoError(t, book.SetSheetRow(sheet, cell, &rows[i]))
	}

	buf, err := book.WriteToBuffer()
	assert.NoError(t, err)

	return buf.Bytes()
}

func writeEml(t *testing.T, path string, attachment []byte) {
	raw := "From: broker@example.com\r\n" +
		"To: ops@example.com\r\n" +
		"Subject: Contract note\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: multipart/mixed; boundary=XYZZY\r\n" +
		"\r\n" +
		"--XYZZY\r\n" +
		"Content-Type: text/plain\r\n" +
		"\r\n" +
		"Trades attached.\r\n" +
		"--XYZZY\r\n" +
		"Content-Type: application/vnd.openxmlformats-officedocument.spreadsheetml.sheet; name=\"trades.xlsx\"\r\n" +
		"Content-Disposition: attachment; filename=\"trades.xlsx\"\r\n" +
		"Content-Transfer-Encoding: base64\r\n" +
		"\r\n" +
		base64.StdEncoding.EncodeToString(attachment) + "\r\n" +
		"--XYZZY--\r\n"

	assert.NoError(t, os.WriteFile(path, []byte(raw), 0o644))
}

func Test_Extract(t *testing.T) {
	dir := t.TempDir()

	sheet := buildSheet(t, [][]interface{}{
		{"Instrument ISIN", "QTY", "Cost", "Net Amount", "Brokerage Amount", "STT", "Deal Date", "Party Code/SEBI Regn Code of Party", "Buy/Sell Flag", "Settlement Date"},
		{"INE738I01010", 680, "3598.00", "2446640.00", "122.00", "244.50", "2024-06-12", "BRK1", "B", "2024-06-14"},
		{"INE457L01029", 5358, "981.20", "5257269.60", "263.00", "525.70", "2024-06-12", "BRK1", "B", "2024-06-14"},
	})
	writeEml(t, filepath.Join(dir, "note1.eml"), sheet)

	// Not an email, must be ignored by the glob.
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("ignore"), 0o644))

	// Corrupt email, must be skipped without failing the batch.
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "broken.eml"), []byte("not a mime message"), 0o644))

	ctrl := NewMailboxController(dir, logrus.New())

	executions, err := ctrl.Extract(testProfile())
	assert.NoError(t, err)
	assert.Len(t, executions, 2)

	first := executions[0]
	assert.Equal(t, "INE738I01010", first.Symbol)
	assert.Equal(t, int64(680), first.Quantity)
	assert.Equal(t, "BRK1", first.BrokerID)
	assert.Equal(t, "B", first.BuySellFlag)
	assert.Equal(t, "2024-06-12", first.TradeDate)
	assert.Equal(t, "2024-06-14", first.SettlementDate)
	assert.True(t, first.TradePrice.Equal(decimal.NewFromFloat(3598.0)), fmt.Sprintf("trade price %s", first.TradePrice))
	assert.True(t, first.NetAmount.Equal(decimal.NewFromFloat(2446640.0)))
	assert.True(t, first.BrokerageAmount.Equal(decimal.NewFromFloat(122.0)))
	assert.True(t, first.STT.Equal(decimal.NewFromFloat(244.5)))
}

func Test_ConvertRows(t *testing.T) {
	ctrl := NewMailboxController(t.TempDir(), logrus.New())

	t.Run("skips unparseable rows", func(t *testing.T) {
		rows := [][]string{
			{"Instrument ISIN", "QTY", "Cost"},
			{"INE738I01010", "680", "3598.00"},
			{"INE457L01029", "not-a-number", "981.20"},
			{"", "100", "50.00"},
		}

		out := ctrl.convertRows(rows, testProfile())
		assert.Len(t, out, 1)
		assert.Equal(t, "INE738I01010", out[0].Symbol)
	})

	t.Run("header-only sheet yields nothing", func(t *testing.T) {
		rows := [][]string{{"Instrument ISIN", "QTY"}}
		assert.Empty(t, ctrl.convertRows(rows, testProfile()))
	})

	t.Run("header normalization", func(t *testing.T) {
		assert.Equal(t, "instrument isin", normalizeHeader("  Instrument ISIN "))
	})
}
