package services

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/leadflow-simple/models"
	"github.com/xuri/excelize/v2"
)

const (
	contentTypeCSV  = "text/csv"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var leadColumns = []string{"id", "full_name", "phone", "course", "status", "owner_id", "owner_name", "created_at", "updated_at"}

func leadRecord(l models.Lead) []string {
	return []string{
		l.ID,
		l.FullName,
		l.Phone,
		l.Course,
		l.Status,
		l.OwnerID,
		l.OwnerName,
		l.CreatedAt.UTC().Format(time.RFC3339),
		l.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// buildLeadsCSV flattens leads into UTF-8 CSV. The byte-order mark up
// front keeps spreadsheet applications from misreading the encoding.
func buildLeadsCSV(leads []models.Lead) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("\uFEFF")

	w := csv.NewWriter(&buf)
	if err := w.Write(leadColumns); err != nil {
		return nil, err
	}
	for _, l := range leads {
		if err := w.Write(leadRecord(l)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeSheet fills one worksheet with a header row plus string records
func writeSheet(f *excelize.File, sheet string, columns []string, records [][]string) error {
	if err := f.SetSheetRow(sheet, "A1", &columns); err != nil {
		return err
	}
	for i, record := range records {
		cell := "A" + strconv.Itoa(i+2)
		if err := f.SetSheetRow(sheet, cell, &record); err != nil {
			return err
		}
	}
	return nil
}

// buildLeadsWorkbook flattens leads into a single-sheet xlsx workbook
func buildLeadsWorkbook(leads []models.Lead) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Leads"); err != nil {
		return nil, err
	}

	records := make([][]string, len(leads))
	for i, l := range leads {
		records[i] = leadRecord(l)
	}
	if err := writeSheet(f, "Leads", leadColumns, records); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// buildBackupWorkbook dumps the four collections into one workbook,
// one sheet per collection
func buildBackupWorkbook(users []models.User, leads []models.Lead, courses []models.Course, statuses []models.LeadStatus) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Users"); err != nil {
		return nil, err
	}
	for _, sheet := range []string{"Leads", "Courses", "Statuses"} {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}

	userColumns := []string{"id", "email", "name", "role", "active", "created_at"}
	userRecords := make([][]string, len(users))
	for i, u := range users {
		userRecords[i] = []string{
			u.ID, u.Email, u.Name, string(u.Role),
			strconv.FormatBool(u.Active),
			u.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	if err := writeSheet(f, "Users", userColumns, userRecords); err != nil {
		return nil, err
	}

	leadRecords := make([][]string, len(leads))
	for i, l := range leads {
		leadRecords[i] = leadRecord(l)
	}
	if err := writeSheet(f, "Leads", leadColumns, leadRecords); err != nil {
		return nil, err
	}

	courseColumns := []string{"id", "name", "active"}
	courseRecords := make([][]string, len(courses))
	for i, c := range courses {
		courseRecords[i] = []string{c.ID, c.Name, strconv.FormatBool(c.Active)}
	}
	if err := writeSheet(f, "Courses", courseColumns, courseRecords); err != nil {
		return nil, err
	}

	statusColumns := []string{"id", "name", "color"}
	statusRecords := make([][]string, len(statuses))
	for i, st := range statuses {
		statusRecords[i] = []string{st.ID, st.Name, st.Color}
	}
	if err := writeSheet(f, "Statuses", statusColumns, statusRecords); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
