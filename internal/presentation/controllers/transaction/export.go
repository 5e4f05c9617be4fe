package transaction

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ailefin/finance-backend/internal/domain/models"
	"github.com/ailefin/finance-backend/internal/domain/usecase"
	"github.com/ailefin/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ailefin/finance-backend/internal/presentation/protocols"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportTransactionsController renders a month of transactions as an XLSX
// workbook. Rendered workbooks are cached per user and month so repeated
// downloads skip the rebuild.
type ExportTransactionsController struct {
	FindTransactionsRepository usecase.FindTransactionsRepository
	ExportCacheRepository      usecase.ExportCacheRepository
	Clock                      usecase.Clock
}

// NewExportTransactionsController initializes an ExportTransactionsController
func NewExportTransactionsController(
	findTransactionsRepository usecase.FindTransactionsRepository,
	exportCacheRepository usecase.ExportCacheRepository,
	clock usecase.Clock,
) *ExportTransactionsController {
	return &ExportTransactionsController{
		FindTransactionsRepository: findTransactionsRepository,
		ExportCacheRepository:      exportCacheRepository,
		Clock:                      clock,
	}
}

// Handle processes the HTTP request for exporting transactions
func (c *ExportTransactionsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid user ID format",
		}, http.StatusBadRequest)
	}

	now := c.Clock.Now()
	month := int(now.Month())
	year := now.Year()

	if m := r.UrlParams.Get("month"); m != "" {
		month, err = strconv.Atoi(m)
		if err != nil || month < 1 || month > 12 {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "invalid month",
			}, http.StatusBadRequest)
		}
	}
	if y := r.UrlParams.Get("year"); y != "" {
		year, err = strconv.Atoi(y)
		if err != nil || year < 1970 {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "invalid year",
			}, http.StatusBadRequest)
		}
	}

	fileName := fmt.Sprintf("transactions_%04d_%02d.xlsx", year, month)
	cacheKey := fmt.Sprintf("export:%s:%04d-%02d", userId.Hex(), year, month)

	if cached, err := c.ExportCacheRepository.Find(cacheKey); err == nil && cached != nil {
		return helpers.CreateFileResponse(cached, xlsxContentType, fileName, http.StatusOK)
	}

	transactions, _, err := c.FindTransactionsRepository.Find(&usecase.FindTransactionsInputRepository{
		UserId: userId,
		Month:  month,
		Year:   year,
		Page:   1,
		Limit:  10000,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving transactions",
		}, http.StatusInternalServerError)
	}

	data, err := renderWorkbook(transactions)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when rendering export",
		}, http.StatusInternalServerError)
	}

	// a failed cache write only costs the next request a rebuild
	c.ExportCacheRepository.Save(cacheKey, data, 10*time.Minute) //nolint:errcheck

	return helpers.CreateFileResponse(data, xlsxContentType, fileName, http.StatusOK)
}

func renderWorkbook(transactions []models.Transaction) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Transactions"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1") //nolint:errcheck

	headers := []string{"Date", "Type", "Category", "Description", "Amount", "Payment Method", "Recurring"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, tx := range transactions {
		recurring := ""
		if tx.IsRecurring {
			recurring = tx.RecurringInterval
		}
		values := []any{
			tx.Date.Format("2006-01-02"),
			tx.Type,
			tx.Category,
			tx.Description,
			tx.Amount,
			tx.PaymentMethod,
			recurring,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
