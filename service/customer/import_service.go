package customer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gorm.io/gorm"

	crmEntity "crm.GO/model/entity/crm"
	customerRepo "crm.GO/model/repository/customer"
)

// ImportOptions configures a customer import run.
type ImportOptions struct {
	BatchSize int
}

// ImportResult holds counters and timing from an import run.
type ImportResult struct {
	TotalRows   int
	Created     int
	Skipped     int
	Errors      []string
	ProcessTime time.Duration
	DBTime      time.Duration
	TotalTime   time.Duration
}

// CustomerRow is one record from a CSV or JSON batch.
type CustomerRow struct {
	Name  string  `json:"name" mapstructure:"name"`
	Email string  `json:"email" mapstructure:"email"`
	Phone *string `json:"phone" mapstructure:"phone"`
}

// ImportCustomers reads CSV data from r (header row: name,email,phone) and
// inserts valid rows. Same validation as the bulkCreateCustomers mutation.
func ImportCustomers(db *gorm.DB, r io.Reader, opts ImportOptions) (*ImportResult, error) {
	startTotal := time.Now()

	if opts.BatchSize <= 0 {
		opts.BatchSize = 500
	}

	reader := csv.NewReader(r)
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}
	for i := range headers {
		headers[i] = strings.TrimSpace(strings.ToLower(headers[i]))
	}
	colIndex := make(map[string]int, len(headers))
	for i, h := range headers {
		colIndex[h] = i
	}
	if _, ok := colIndex["email"]; !ok {
		return nil, fmt.Errorf("CSV must contain an 'email' column")
	}
	if _, ok := colIndex["name"]; !ok {
		return nil, fmt.Errorf("CSV must contain a 'name' column")
	}

	startProcess := time.Now()
	var rows []CustomerRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV row: %w", err)
		}
		raw := make(map[string]interface{}, len(headers))
		for h, i := range colIndex {
			if i < len(record) && strings.TrimSpace(record[i]) != "" {
				raw[h] = strings.TrimSpace(record[i])
			}
		}
		var row CustomerRow
		if err := mapstructure.Decode(raw, &row); err != nil {
			return nil, fmt.Errorf("decode CSV row: %w", err)
		}
		rows = append(rows, row)
	}

	result, err := importRows(db, rows, opts.BatchSize)
	if err != nil {
		return nil, err
	}
	result.ProcessTime = time.Since(startProcess) - result.DBTime
	result.TotalTime = time.Since(startTotal)
	return result, nil
}

// ImportCustomersJSON inserts a pre-decoded batch (REST import endpoint).
func ImportCustomersJSON(db *gorm.DB, rows []CustomerRow, batchSize int) (*ImportResult, error) {
	startTotal := time.Now()
	if batchSize <= 0 {
		batchSize = 500
	}
	result, err := importRows(db, rows, batchSize)
	if err != nil {
		return nil, err
	}
	result.TotalTime = time.Since(startTotal)
	return result, nil
}

func importRows(db *gorm.DB, rows []CustomerRow, batchSize int) (*ImportResult, error) {
	repo := customerRepo.GetCustomerRepository(db)
	result := &ImportResult{TotalRows: len(rows)}

	emails := make([]string, len(rows))
	for i, row := range rows {
		emails[i] = row.Email
	}
	existing, err := repo.ExistingEmails(emails)
	if err != nil {
		return nil, fmt.Errorf("pre-check emails: %w", err)
	}

	seen := make(map[string]bool, len(rows))
	var toCreate []*crmEntity.Customer
	for _, row := range rows {
		var errMsg string
		if ValidateEmail(row.Email) != nil {
			errMsg = fmt.Sprintf("Record for '%s' failed: %s", row.Name, ErrInvalidEmail.Error())
		} else {
			switch {
			case existing[row.Email]:
				errMsg = fmt.Sprintf("Record for '%s' failed: Email '%s' already exists.", row.Name, row.Email)
			case seen[row.Email]:
				errMsg = fmt.Sprintf("Record for '%s' failed: Email '%s' duplicated in batch.", row.Name, row.Email)
			}
			// A bad phone replaces the duplicate message, matching the bulk
			// mutation's precedence.
			if row.Phone != nil && *row.Phone != "" && ValidatePhone(*row.Phone) != nil {
				errMsg = fmt.Sprintf("Record for '%s' failed: %s", row.Name, ErrInvalidPhone.Error())
			}
		}
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			result.Skipped++
			continue
		}
		seen[row.Email] = true
		toCreate = append(toCreate, &crmEntity.Customer{Name: row.Name, Email: row.Email, Phone: row.Phone})
	}

	if len(toCreate) > 0 {
		startDB := time.Now()
		err := db.Transaction(func(tx *gorm.DB) error {
			return tx.CreateInBatches(toCreate, batchSize).Error
		})
		result.DBTime = time.Since(startDB)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Database error during bulk creation: %v", err))
			result.Skipped += len(toCreate)
		} else {
			result.Created = len(toCreate)
		}
	}
	return result, nil
}
