package usecase

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/xuri/excelize/v2"
)

const applicantSheet = "Applicants"

// Column order of the applicant export
var applicantColumns = []string{
	"rank", "full_name", "match_score", "status", "city", "province",
	"major", "education", "experience", "skills", "applied_at",
}

var applicantHeaders = map[string]string{
	"rank":        "RANK",
	"full_name":   "FULL NAME",
	"match_score": "MATCH SCORE",
	"status":      "STATUS",
	"city":        "CITY",
	"province":    "PROVINCE",
	"major":       "MAJOR",
	"education":   "EDUCATION",
	"experience":  "EXPERIENCE",
	"skills":      "SKILLS",
	"applied_at":  "APPLIED AT",
}

// applicantFieldValue extracts one export column from an applicant
func applicantFieldValue(a domain.Applicant, rank int, field string) interface{} {
	p := a.Candidate
	if p == nil {
		p = &domain.CandidateProfile{}
	}
	switch field {
	case "rank":
		return rank
	case "full_name":
		return p.FullName
	case "match_score":
		return a.MatchScore
	case "status":
		return a.Status
	case "city":
		return p.City
	case "province":
		return p.Province
	case "major":
		return p.Major
	case "education":
		return p.Education
	case "experience":
		return p.Experience
	case "skills":
		return strings.Join(p.Skills, ", ")
	case "applied_at":
		return a.CreatedAt.Format("2006-01-02 15:04")
	default:
		return ""
	}
}

func exportFilename(jobID int64, ext string) string {
	return fmt.Sprintf("job_%d_applicants_%s.%s", jobID, time.Now().Format("20060102_150405"), ext)
}

// exportApplicantsExcel generates an Excel file from ranked applicants
func exportApplicantsExcel(jobID int64, applicants []domain.Applicant) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", applicantSheet); err != nil {
		return nil, "", fmt.Errorf("failed to prepare sheet: %w", err)
	}

	for i, col := range applicantColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(applicantSheet, cell, applicantHeaders[col])
	}

	// Dark blue header with white text
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(applicantColumns), 1)
	f.SetCellStyle(applicantSheet, "A1", endCell, headerStyle)

	for rowIdx, a := range applicants {
		for colIdx, col := range applicantColumns {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(applicantSheet, cell, applicantFieldValue(a, rowIdx+1, col))
		}
	}

	for i := range applicantColumns {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(applicantSheet, colName, colName, 20)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), exportFilename(jobID, "xlsx"), nil
}

// exportApplicantsCSV generates a CSV file from ranked applicants
func exportApplicantsCSV(jobID int64, applicants []domain.Applicant) ([]byte, string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(applicantColumns); err != nil {
		return nil, "", fmt.Errorf("failed to write CSV header: %w", err)
	}
	for i, a := range applicants {
		record := make([]string, 0, len(applicantColumns))
		for _, col := range applicantColumns {
			record = append(record, fmt.Sprintf("%v", applicantFieldValue(a, i+1, col)))
		}
		if err := w.Write(record); err != nil {
			return nil, "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("failed to write CSV file: %w", err)
	}
	return buf.Bytes(), exportFilename(jobID, "csv"), nil
}
