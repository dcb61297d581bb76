package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/tanaymit/Personal-Finance/internal/categorize"
	"github.com/tanaymit/Personal-Finance/internal/types"
)

var requiredColumns = []string{"Date", "Type", "Category", "Description", "Amount"}

// merchantPrefixes are noise prefixes stripped before extracting the
// merchant from a statement description.
var merchantPrefixes = []string{
	"Debit Card Purchase ",
	"Payroll Direct Deposit - ",
	"ATM Withdrawal",
}

// ParseStatement reads a bank-statement CSV and produces transactions with
// normalized ISO dates, signed amounts (deposits negative per the app's
// sign convention), mapped categories, and extracted merchant names.
// Progress is advanced once per row; pass a NoopProgress to disable.
func ParseStatement(r io.Reader, progress Progress) ([]types.Transaction, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(name, "\uFEFF"))] = i
	}
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("CSV missing columns: %v", missing)
	}

	var txns []types.Transaction
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		field := func(name string) string {
			i := cols[name]
			if i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		dateISO, err := parseStatementDate(field("Date"))
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", field("Date"), err)
		}

		txType := field("Type")
		description := field("Description")

		amount, err := parseAmountUSD(field("Amount"))
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q: %w", field("Amount"), err)
		}
		if strings.EqualFold(txType, "deposit") {
			// Income and refunds are stored negative.
			amount = -math.Abs(amount)
		} else {
			amount = math.Abs(amount)
		}

		category := categorize.MapToFixedCategory(txType, field("Category"), description)
		if !types.IsFixedCategory(category) {
			category = "Other"
		}

		txns = append(txns, types.Transaction{
			Date:        dateISO,
			Merchant:    ExtractMerchant(description),
			Amount:      amount,
			Category:    category,
			Description: description,
		})

		if err := progress.Add(1); err != nil {
			return nil, err
		}
	}

	return txns, nil
}

func parseStatementDate(value string) (string, error) {
	d, err := time.Parse("01/02/2006", strings.TrimSpace(value))
	if err != nil {
		return "", err
	}
	return d.Format("2006-01-02"), nil
}

func parseAmountUSD(value string) (float64, error) {
	v := strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(value))
	return strconv.ParseFloat(v, 64)
}

// ExtractMerchant pulls a merchant name out of a statement description by
// stripping known prefixes and keeping the head of "X - Monthly Payment"
// style strings.
func ExtractMerchant(description string) string {
	d := strings.TrimSpace(description)

	for _, prefix := range merchantPrefixes {
		if len(d) >= len(prefix) && strings.EqualFold(d[:len(prefix)], prefix) {
			d = strings.TrimSpace(d[len(prefix):])
			break
		}
	}

	if head, _, ok := strings.Cut(d, " - "); ok {
		head = strings.TrimSpace(head)
		if head != "" {
			return head
		}
	}

	if d == "" {
		return "Unknown"
	}
	return d
}
