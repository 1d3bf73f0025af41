// Package sheets uploads the partitioned datasets to Google Sheets. It
// handles spreadsheet lookup/creation through the Drive API and
// worksheet-level overwrite through the Sheets API. Zero-row datasets are
// skipped and reported as not uploaded, never treated as an error.
package sheets

import (
	"context"
	"fmt"

	"banksheets/internal/logging"
	"banksheets/internal/models"
	"banksheets/internal/partitioner"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Uploader wraps the Sheets and Drive services.
type Uploader struct {
	sheetsService *sheets.Service
	driveService  *drive.Service
	logger        logging.Logger
}

// NewUploader builds an Uploader authenticated with the given Google
// credentials file.
func NewUploader(ctx context.Context, credentialsFile string, logger logging.Logger) (*Uploader, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	sheetsService, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("error creating Sheets service: %w", err)
	}
	driveService, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("error creating Drive service: %w", err)
	}

	return &Uploader{
		sheetsService: sheetsService,
		driveService:  driveService,
		logger:        logger,
	}, nil
}

// FindSpreadsheetByName returns the ID of the first spreadsheet with an
// exact name match, or an empty string if none exists.
func (u *Uploader) FindSpreadsheetByName(ctx context.Context, name string) (string, error) {
	query := fmt.Sprintf("name = '%s' and mimeType = 'application/vnd.google-apps.spreadsheet' and trashed = false", name)
	response, err := u.driveService.Files.List().
		Q(query).
		Spaces("drive").
		Fields("files(id, name, modifiedTime)").
		Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("error searching for spreadsheet: %w", err)
	}
	if len(response.Files) == 0 {
		return "", nil
	}
	return response.Files[0].Id, nil
}

// VerifySpreadsheet checks that a spreadsheet ID is accessible and returns
// its name.
func (u *Uploader) VerifySpreadsheet(ctx context.Context, spreadsheetID string) (string, error) {
	file, err := u.driveService.Files.Get(spreadsheetID).
		Fields("id, name").
		Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("error accessing spreadsheet %s: %w", spreadsheetID, err)
	}
	return file.Name, nil
}

// GetOrCreateSpreadsheet finds a spreadsheet by name or creates it.
func (u *Uploader) GetOrCreateSpreadsheet(ctx context.Context, name string) (string, error) {
	id, err := u.FindSpreadsheetByName(ctx, name)
	if err != nil {
		return "", err
	}
	if id != "" {
		u.logger.WithFields(
			logging.Field{Key: "name", Value: name},
			logging.Field{Key: "id", Value: id},
		).Info("Found existing spreadsheet")
		return id, nil
	}

	created, err := u.sheetsService.Spreadsheets.Create(&sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{Title: name},
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("error creating spreadsheet: %w", err)
	}
	u.logger.WithFields(
		logging.Field{Key: "name", Value: name},
		logging.Field{Key: "id", Value: created.SpreadsheetId},
	).Info("Created new spreadsheet")
	return created.SpreadsheetId, nil
}

// UploadDatasets uploads all four datasets, one worksheet each, overwriting
// existing contents. It returns per-dataset upload status; false means the
// dataset was empty and skipped.
func (u *Uploader) UploadDatasets(ctx context.Context, spreadsheetID string, datasets partitioner.Datasets) (map[string]bool, error) {
	uploads := []struct {
		name       string
		set        models.TransactionSet
		withSource bool
	}{
		{models.DatasetMaster, datasets.Master, false},
		{models.DatasetIncoming, datasets.Incoming, true},
		{models.DatasetOutgoing, datasets.Outgoing, true},
		{models.DatasetEbayOutgoing, datasets.EbayOutgoing, true},
	}

	results := make(map[string]bool, len(uploads))
	for _, upload := range uploads {
		uploaded, err := u.UploadDataset(ctx, spreadsheetID, upload.name, upload.set, upload.withSource)
		if err != nil {
			return results, fmt.Errorf("error uploading dataset %s: %w", upload.name, err)
		}
		results[upload.name] = uploaded
	}
	return results, nil
}

// UploadDataset overwrites one worksheet with a dataset. Empty datasets are
// skipped and reported as not uploaded.
func (u *Uploader) UploadDataset(ctx context.Context, spreadsheetID, title string, set models.TransactionSet, withSource bool) (bool, error) {
	if len(set) == 0 {
		u.logger.WithField("dataset", title).Info("Dataset is empty, skipping upload")
		return false, nil
	}

	sheetID, err := u.ensureWorksheet(ctx, spreadsheetID, title)
	if err != nil {
		return false, err
	}

	if _, err := u.sheetsService.Spreadsheets.Values.Clear(spreadsheetID, title, &sheets.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return false, fmt.Errorf("error clearing worksheet %s: %w", title, err)
	}

	values := DatasetValues(set, withSource)
	// USER_ENTERED so the Source column is interpreted as a formula linking
	// back to the Master row.
	_, err = u.sheetsService.Spreadsheets.Values.Update(spreadsheetID, title+"!A1", &sheets.ValueRange{
		Values: values,
	}).ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return false, fmt.Errorf("error writing values to worksheet %s: %w", title, err)
	}

	if err := u.formatHeader(ctx, spreadsheetID, sheetID); err != nil {
		// Formatting is cosmetic; the data landed, so report and move on.
		u.logger.WithError(err).WithField("dataset", title).Warn("Failed to format worksheet header")
	}

	u.logger.WithFields(
		logging.Field{Key: "dataset", Value: title},
		logging.Field{Key: "rows", Value: len(set)},
	).Info("Uploaded dataset to Google Sheets")
	return true, nil
}

// ensureWorksheet returns the sheet ID for title, creating the worksheet if
// it does not exist.
func (u *Uploader) ensureWorksheet(ctx context.Context, spreadsheetID, title string) (int64, error) {
	spreadsheet, err := u.sheetsService.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("error reading spreadsheet %s: %w", spreadsheetID, err)
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties.Title == title {
			return sheet.Properties.SheetId, nil
		}
	}

	response, err := u.sheetsService.Spreadsheets.BatchUpdate(spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: title},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("error creating worksheet %s: %w", title, err)
	}

	u.logger.WithField("worksheet", title).Info("Created new worksheet")
	return response.Replies[0].AddSheet.Properties.SheetId, nil
}

// formatHeader bolds the header row and freezes it.
func (u *Uploader) formatHeader(ctx context.Context, spreadsheetID string, sheetID int64) error {
	_, err := u.sheetsService.Spreadsheets.BatchUpdate(spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				RepeatCell: &sheets.RepeatCellRequest{
					Range: &sheets.GridRange{
						SheetId:       sheetID,
						StartRowIndex: 0,
						EndRowIndex:   1,
					},
					Cell: &sheets.CellData{
						UserEnteredFormat: &sheets.CellFormat{
							TextFormat: &sheets.TextFormat{Bold: true},
						},
					},
					Fields: "userEnteredFormat.textFormat.bold",
				},
			},
			{
				UpdateSheetProperties: &sheets.UpdateSheetPropertiesRequest{
					Properties: &sheets.SheetProperties{
						SheetId: sheetID,
						GridProperties: &sheets.GridProperties{
							FrozenRowCount: 1,
						},
					},
					Fields: "gridProperties.frozenRowCount",
				},
			},
		},
	}).Context(ctx).Do()
	return err
}

// SpreadsheetURL returns the browser URL of a spreadsheet.
func SpreadsheetURL(spreadsheetID string) string {
	return "https://docs.google.com/spreadsheets/d/" + spreadsheetID
}

// DatasetValues renders a dataset as the cell grid sent to the Sheets API:
// a header row followed by one row per transaction. The internal Master row
// number is never included; withSource appends the Source reference column
// carried by filtered views.
func DatasetValues(set models.TransactionSet, withSource bool) [][]interface{} {
	header := []interface{}{"Date", "Amount", "Details", "Category"}
	if withSource {
		header = append(header, "Source")
	}

	values := make([][]interface{}, 0, len(set)+1)
	values = append(values, header)
	for _, tx := range set {
		row := []interface{}{
			tx.Date.Format("2006-01-02"),
			tx.Amount.StringFixed(2),
			tx.Details,
			tx.Category,
		}
		if withSource {
			row = append(row, tx.SourceRef)
		}
		values = append(values, row)
	}
	return values
}
